package emailvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		email   string
		isValid bool
	}{
		{email: "test@test.test", isValid: true},
		{email: "first.last@example.com", isValid: true},
		{email: "user+tag@example.co.uk", isValid: true},
		{email: "UPPER@EXAMPLE.COM", isValid: true},
		{email: "", isValid: false},
		{email: "test", isValid: false},
		{email: "test@", isValid: false},
		{email: "@test.test", isValid: false},
		{email: "test test@test.test", isValid: false},
	}

	validator := NewOzzo()
	for _, testcase := range cases {
		t.Run(testcase.email, func(t *testing.T) {
			isValid, err := validator.IsValid(testcase.email)

			require.NoError(t, err)
			assert.Equal(t, testcase.isValid, isValid)
		})
	}
}
