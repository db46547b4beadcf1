package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "SecurePass12!@", false},
		{"Exactly Min Length", "Abcdefghij1!", false},
		{"Exactly Max Length", "A" + strings.Repeat("b", 125) + "1!", false},
		{"Too Short", "Small1!", true},
		{"Too Long", "A" + strings.Repeat("b", 126) + "1!", true},
		{"No Upper", "securepass12!", true},
		{"No Lower", "SECUREPASS12!", true},
		{"No Digit", "SecurePass!!", true},
		{"No Special", "SecurePass123", true},
		{"Digits And Special Only", "1234567890!@", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "ada@example.com", false},
		{"Valid With Plus", "ada+tag@example.com", false},
		{"Missing At", "ada.example.com", true},
		{"Missing TLD", "ada@example", true},
		{"Empty", "", true},
		{"Too Long", strings.Repeat("a", 250) + "@e.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "Ada Lovelace", false},
		{"Exactly Min", "Al", false},
		{"Too Short", "A", true},
		{"Whitespace Only", "   ", true},
		{"Too Long", strings.Repeat("a", 121), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSkill(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		skill   string
		wantErr bool
	}{
		{"Valid", "Guitar", false},
		{"With Spaces", "Sign Language", false},
		{"Empty", "", true},
		{"Whitespace Only", "  ", true},
		{"Too Long", strings.Repeat("x", 61), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSkill(tt.skill)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSwapMessage(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateSwapMessage("I'd love to trade guitar lessons for Spanish."))
	assert.Error(t, ValidateSwapMessage(""))
	assert.Error(t, ValidateSwapMessage("   "))
	assert.Error(t, ValidateSwapMessage(strings.Repeat("m", 501)))
}

func TestValidateScore(t *testing.T) {
	t.Parallel()
	for score := 1; score <= 5; score++ {
		assert.NoError(t, ValidateScore(score))
	}
	assert.Error(t, ValidateScore(0))
	assert.Error(t, ValidateScore(6))
	assert.Error(t, ValidateScore(-1))
}

func TestValidateFeedback(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateFeedback(""))
	assert.NoError(t, ValidateFeedback("great teacher"))
	assert.Error(t, ValidateFeedback(strings.Repeat("f", 1001)))
}
