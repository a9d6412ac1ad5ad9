package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme is a display preference carried on the user profile.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeBlue  Theme = "blue"
	ThemeGreen Theme = "green"
)

// ValidTheme reports whether t is one of the selectable themes.
func ValidTheme(t Theme) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeBlue, ThemeGreen:
		return true
	}
	return false
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // никогда не отдаем хеш наружу
	Avatar       string    `db:"avatar" json:"avatar"`
	Theme        Theme     `db:"theme" json:"theme"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
