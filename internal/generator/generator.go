// Package generator produces randomized valid inputs for the test suite:
// emails, names, passwords matching the backend password policy, and movie
// payloads. All functions are stateless; uniqueness relies on the size of
// the random space, not on any registry.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/coconutqa/cinescope-e2e/internal/models"
)

const (
	emailPrefix = "kek"
	emailDomain = "gmail.com"

	lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"
	letters    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits     = "0123456789"

	// PasswordSpecials is the punctuation set the backend accepts in
	// passwords.
	PasswordSpecials = "?@#$%^&*|:"

	defaultGenreID = 3
)

// Email returns a fixed-prefix random address, e.g. kek3f9a81xq@gmail.com.
func Email() string {
	return fmt.Sprintf("%s%s@%s", emailPrefix, randomString(lowerAlnum, 8), emailDomain)
}

// FullName returns a random "first last" pair.
func FullName() string {
	return fmt.Sprintf("%s %s", gofakeit.FirstName(), gofakeit.LastName())
}

// Password generates a password satisfying the backend policy: at least one
// letter and one digit, only letters/digits/PasswordSpecials, length 8-20.
// One letter and one digit are always present; 6-18 further characters are
// drawn from the full alphabet and the result is shuffled.
func Password() string {
	all := letters + digits + PasswordSpecials

	chars := []byte{
		letters[rand.Intn(len(letters))],
		digits[rand.Intn(len(digits))],
	}
	chars = append(chars, randomString(all, 6+rand.Intn(13))...)

	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars)
}

// User builds a registration payload with matching password fields and the
// USER role.
func User() models.UserData {
	password := Password()

	return models.UserData{
		Email:          Email(),
		FullName:       FullName(),
		Password:       password,
		PasswordRepeat: password,
		Roles:          []models.Role{models.RoleUser},
	}
}

// Movie builds a full movie creation payload: catchphrase-style name, price
// in [100,1000], rating in [1,10], random MSK/SPB location, published.
func Movie() models.MovieData {
	location := models.LocationMSK
	if rand.Intn(2) == 1 {
		location = models.LocationSPB
	}

	return models.MovieData{
		Name:        gofakeit.MovieName(),
		ImageURL:    models.Ptr("https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9G"),
		Price:       gofakeit.Number(100, 1000),
		Description: gofakeit.Sentence(12),
		Location:    location,
		Published:   true,
		Rating:      models.Ptr(gofakeit.Number(1, 10)),
		GenreID:     defaultGenreID,
	}
}

func randomString(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
