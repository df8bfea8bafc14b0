package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Email("test@test.test"), NewEmail("test@test.test"))
	assert.Equal(Email("test@test.test"), NewEmail("Test@Test.Test"))
	assert.Equal(Email("test@test.test"), NewEmail("  test@test.test  "))
	assert.Equal(Email(""), NewEmail(""))
}
