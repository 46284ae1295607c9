package models

import (
	"time"

	"github.com/angelmondragon/lojavirtual-backend/pkg/enums"
)

// User represents a registered account.
type User struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string         `gorm:"column:nome;not null"`
	Email        string         `gorm:"column:email;not null;uniqueIndex:usuarios_email_key"`
	PasswordHash string         `gorm:"column:senha;not null"`
	UserType     enums.UserType `gorm:"column:tipo_usuario;not null;default:cliente"`
	CreatedAt    time.Time      `gorm:"column:criado_em;autoCreateTime"`
}

func (User) TableName() string { return "usuarios" }
