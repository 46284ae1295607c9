package users

import (
	"time"

	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	"github.com/angelmondragon/lojavirtual-backend/pkg/enums"
)

// UserDTO is the transport shape; the password hash never leaves the service.
type UserDTO struct {
	ID        int64          `json:"id"`
	Name      string         `json:"nome"`
	Email     string         `json:"email"`
	UserType  enums.UserType `json:"tipo_usuario"`
	CreatedAt time.Time      `json:"criado_em"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name         string
	Email        string
	PasswordHash string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		UserType:     enums.UserTypeCustomer,
	}
}
