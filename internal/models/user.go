package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"unique;not null"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string
	LastName     string
	Role         string `gorm:"not null;default:'user'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}

func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

func (user *User) FullName() string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}
