package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/user1094629480/tours-backend/internal/auth"
	"github.com/user1094629480/tours-backend/internal/mongodb"
)

// Store is the slice of the database this service needs.
type Store interface {
	AddUser(ctx context.Context, user mongodb.UserDb) (mongodb.UserDb, error)
	GetUserByEmail(ctx context.Context, email string) (mongodb.UserDb, error)
}

func SignUp(db Store, ctx context.Context, req NewUserRequest) (User, error) {
	if err := validateNewUser(req); err != nil {
		return User{}, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, mongodb.ErrDuplicateRecord) {
			return User{}, ErrUserAlreadyExists
		}
		return User{}, err
	}

	return mapDbUserToUser(userDb), nil
}

// Authenticate checks the credentials and returns the matching user. A
// missing user and a wrong password are indistinguishable to the caller.
func Authenticate(db Store, ctx context.Context, email, password string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.UserDb{}, auth.ErrInvalidCredentials
		}
		return mongodb.UserDb{}, err
	}

	if err := auth.CheckPasswordHash(userDb.PasswordHash, password); err != nil {
		return mongodb.UserDb{}, err
	}

	return userDb, nil
}
