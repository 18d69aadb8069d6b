package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Food", "Food", true},
		{"FOOD", "Food", true},
		{"food", "Food", true},
		{" education ", "Education", true},
		{"eNtErTaInMeNt", "Entertainment", true},
		{"Travel", "", false},
		{"", "", false},
		{"Foodie", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeCategory(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Food", "Education", "Entertainment"}, Categories())
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "bob", NormalizeUsername("Bob "))
	assert.Equal(t, "bob", NormalizeUsername(" BOB"))
	assert.Equal(t, "bob", NormalizeUsername("bob"))
	assert.Equal(t, "", NormalizeUsername("   "))
}
