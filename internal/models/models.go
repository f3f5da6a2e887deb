package models

import (
	"net/url"
	"strconv"
)

// Role is the closed set of user roles known to the Cinescope backend.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Location is the cinema location enum used by the movies service.
type Location string

const (
	LocationMSK Location = "MSK"
	LocationSPB Location = "SPB"
)

// Credentials is an (email, password) pair used for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserData is the request payload for registration and admin user creation.
// Verified and Banned are pointers so that unset fields are omitted from the
// serialized body.
type UserData struct {
	Email          string `json:"email" validate:"required,contains=@"`
	FullName       string `json:"fullName" validate:"required"`
	Password       string `json:"password" validate:"required,min=8"`
	PasswordRepeat string `json:"passwordRepeat" validate:"required,eqfield=Password"`
	Roles          []Role `json:"roles" validate:"required,min=1,dive,role"`
	Verified       *bool  `json:"verified,omitempty"`
	Banned         *bool  `json:"banned,omitempty"`
}

// WithFlags returns a copy of the user data with verified/banned set.
func (u UserData) WithFlags(verified, banned bool) UserData {
	u.Verified = &verified
	u.Banned = &banned
	return u
}

// RegisterUserResponse is the user representation returned by the auth
// service from registration, creation and lookup endpoints.
type RegisterUserResponse struct {
	ID        string `json:"id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FullName  string `json:"fullName" validate:"required,min=1,max=100"`
	Verified  bool   `json:"verified"`
	Banned    bool   `json:"banned"`
	Roles     []Role `json:"roles" validate:"required,dive,role"`
	CreatedAt string `json:"createdAt" validate:"required,iso8601"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string               `json:"accessToken" validate:"required"`
	RefreshToken string               `json:"refreshToken"`
	User         RegisterUserResponse `json:"user"`
}

// MovieData is the request payload for movie creation and update. ImageURL
// and Rating are optional; the minimal valid payload omits both.
type MovieData struct {
	Name        string   `json:"name" validate:"required"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Price       int      `json:"price" validate:"required,gt=0"`
	Description string   `json:"description" validate:"required"`
	Location    Location `json:"location" validate:"required,location"`
	Published   bool     `json:"published"`
	Rating      *int     `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	GenreID     int      `json:"genreId" validate:"required"`
}

// Minimal strips the optional fields, leaving only what the movies service
// requires for creation.
func (m MovieData) Minimal() MovieData {
	m.ImageURL = nil
	m.Rating = nil
	return m
}

// Movie is the movie representation returned by the movies service.
type Movie struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	ImageURL    string   `json:"imageUrl"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Published   bool     `json:"published"`
	Rating      float64  `json:"rating"`
	GenreID     int      `json:"genreId"`
	CreatedAt   string   `json:"createdAt"`
}

// MovieList is the paginated movie listing response.
type MovieList struct {
	Movies   []Movie `json:"movies"`
	Count    int     `json:"count"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// MovieFilter holds the supported query parameters of GET /movies. Nil
// fields are left out of the query string.
type MovieFilter struct {
	MinPrice  *int
	MaxPrice  *int
	Locations []Location
	Published *bool
	GenreID   *int
	Page      *int
	PageSize  *int
}

// Query serializes the filter into URL query parameters.
func (f MovieFilter) Query() url.Values {
	q := url.Values{}
	setInt := func(key string, v *int) {
		if v != nil {
			q.Set(key, strconv.Itoa(*v))
		}
	}

	setInt("minPrice", f.MinPrice)
	setInt("maxPrice", f.MaxPrice)
	setInt("genreId", f.GenreID)
	setInt("page", f.Page)
	setInt("pageSize", f.PageSize)

	for _, loc := range f.Locations {
		q.Add("locations", string(loc))
	}
	if f.Published != nil {
		q.Set("published", strconv.FormatBool(*f.Published))
	}

	return q
}

// Ptr is a shorthand for taking the address of a literal in test payloads.
func Ptr[T any](v T) *T {
	return &v
}
