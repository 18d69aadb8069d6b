package entities

import (
	"strings"
	"time"
)

// User is an account in the budget manager. Usernames are stored
// normalized (lower-cased and trimmed) and must be unique.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Expenses     []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}

// NormalizeUsername applies the canonical form used for storage and
// duplicate checks: trimmed and lower-cased.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
