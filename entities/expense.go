package entities

import (
	"strings"
	"time"
)

// Expense categories. Values are persisted in this canonical casing;
// incoming values are matched case-insensitively.
const (
	CategoryFood          = "Food"
	CategoryEducation     = "Education"
	CategoryEntertainment = "Entertainment"
)

// Categories returns every valid expense category in canonical casing.
func Categories() []string {
	return []string{
		CategoryFood,
		CategoryEducation,
		CategoryEntertainment,
	}
}

// NormalizeCategory matches value against the known categories ignoring
// case and surrounding whitespace. It returns the canonical casing and
// whether the value was valid.
func NormalizeCategory(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	for _, c := range Categories() {
		if strings.EqualFold(trimmed, c) {
			return c, true
		}
	}
	return "", false
}

// Expense is a single spending record owned by a user. UserID is kept as
// a plain integer reference: the owning user is not required to exist.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        Date      `gorm:"type:date;not null" json:"date"`
	Category    string    `gorm:"not null" json:"category"`
	UserID      uint      `gorm:"index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
