package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(ctx context.Context, creationData domain.UserCreationData) (domain.User, error) {
	id := "user-" + uuid.NewString()

	var user domain.User
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, creationData.Username, creationData.Password, creationData.Fullname).Scan(
		&user.Id, &user.Username, &user.Fullname,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, internal_errors.BadRequest("username tidak tersedia")
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// UserByUsername returns the user and their stored password hash.
func (s *Storage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, string, error) {
	var user domain.User
	var passwordHash string
	err := s.db.QueryRowContext(ctx, `
        SELECT id, username, fullname, password
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Fullname, &passwordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, "", internal_errors.Unauthorized("kredensial yang anda masukkan salah")
		}
		return domain.User{}, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, passwordHash, nil
}

func (s *Storage) UsernameById(ctx context.Context, id domain.UserId) (domain.Username, error) {
	var username domain.Username
	err := s.db.QueryRowContext(ctx,
		"SELECT username FROM users WHERE id = $1",
		id,
	).Scan(&username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NotFound("user id tidak ditemukan di database")
		}
		return "", fmt.Errorf("failed to resolve username: %w", err)
	}
	return username, nil
}
