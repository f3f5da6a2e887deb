// Package dbcheck is the read/verify/cleanup interface to the backing
// database. Tests use it to cross-validate API-observed state against the
// users and movies tables and to remove rows the suite itself created. The
// suite never owns schema migration.
package dbcheck

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("user already exists with this email")
)

// UserRecord mirrors one row of the users table.
type UserRecord struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Verified     bool
	Banned       bool
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MovieRecord mirrors one row of the movies table. Price is NUMERIC in the
// product schema.
type MovieRecord struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Description string
	Location    string
	Published   bool
	Rating      float64
	GenreID     int
	CreatedAt   time.Time
}

// Checker wraps a connection pool scoped to one test module; the owner
// closes it at module end.
type Checker struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Checker, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Checker{db: pool}, nil
}

func (c *Checker) Close() {
	c.db.Close()
}

func (c *Checker) UserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	return c.scanUser(ctx, `SELECT id, email, full_name, password, verified, banned, roles, created_at, updated_at
		FROM users WHERE email = $1`, email)
}

func (c *Checker) UserByID(ctx context.Context, id string) (*UserRecord, error) {
	return c.scanUser(ctx, `SELECT id, email, full_name, password, verified, banned, roles, created_at, updated_at
		FROM users WHERE id = $1`, id)
}

func (c *Checker) scanUser(ctx context.Context, query string, arg any) (*UserRecord, error) {
	var user UserRecord

	err := c.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.Verified,
		&user.Banned,
		&user.Roles,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (c *Checker) MovieByName(ctx context.Context, name string) (*MovieRecord, error) {
	var movie MovieRecord

	err := c.db.QueryRow(ctx, `SELECT id, name, price, description, location, published, rating, genre_id, created_at
		FROM movies WHERE name = $1`, name).Scan(
		&movie.ID,
		&movie.Name,
		&movie.Price,
		&movie.Description,
		&movie.Location,
		&movie.Published,
		&movie.Rating,
		&movie.GenreID,
		&movie.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// CountMoviesByName reports how many rows carry the given name; the
// create/delete consistency scenario expects exactly one, then zero.
func (c *Checker) CountMoviesByName(ctx context.Context, name string) (int, error) {
	var count int
	err := c.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies WHERE name = $1`, name).Scan(&count)
	return count, err
}

// DeleteMovieByName removes fixture-created movie rows. Best-effort
// teardown helper; reports rows removed.
func (c *Checker) DeleteMovieByName(ctx context.Context, name string) (int64, error) {
	tag, err := c.db.Exec(ctx, `DELETE FROM movies WHERE name = $1`, name)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteUserByEmail removes fixture-created user rows.
func (c *Checker) DeleteUserByEmail(ctx context.Context, email string) (int64, error) {
	tag, err := c.db.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SeedUserParams describes a user row inserted directly, bypassing the API.
type SeedUserParams struct {
	Email    string
	FullName string
	Password string
	Verified bool
	Banned   bool
	Roles    []string
}

// SeedUser inserts a user row with a bcrypt password hash and returns its
// id. Duplicate emails map to ErrDuplicateEmail.
func (c *Checker) SeedUser(ctx context.Context, params SeedUserParams) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), 12)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	_, err = c.db.Exec(ctx, `INSERT INTO users (id, email, full_name, password, verified, banned, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		id, params.Email, params.FullName, string(hash), params.Verified, params.Banned, params.Roles, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", ErrDuplicateEmail
		}
		return "", err
	}

	return id, nil
}
