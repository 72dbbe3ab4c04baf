package users

import (
	"time"

	"github.com/user1094629480/tours-backend/internal/mongodb"
)

type User struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func mapDbUserToUser(userDb mongodb.UserDb) User {
	return User{
		Id:        userDb.Id,
		Name:      userDb.Name,
		Email:     userDb.Email,
		IsActive:  userDb.IsActive,
		CreatedAt: userDb.CreatedAt,
	}
}
