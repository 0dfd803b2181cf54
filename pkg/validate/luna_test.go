package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLuna(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid number", input: "79927398713", expected: true},
		{name: "Wrong check digit", input: "79927398710", expected: false},
		{name: "Letters", input: "ACC10017", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLuna(tt.input))
		})
	}
}

func TestWithLunaDigit(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      string
		expectedError error
	}{
		{name: "Digits", input: "7992739871", expected: "79927398713"},
		{name: "Sequence", input: "1001", expected: "10017"},
		{name: "Letters", input: "12a4", expectedError: ErrNotDigits},
		{name: "Negative", input: "-4", expectedError: ErrNotDigits},
		{name: "Empty", input: "", expectedError: ErrNotDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full, err := WithLunaDigit(tt.input)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, full)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, full)
			assert.True(t, IsLuna(full))
		})
	}
}
