package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/divinasnails/salon-manager/internal/validators"
)

func TestIsEmailFormatValid(t *testing.T) {
	assert.True(t, validators.IsEmailFormatValid("maria.gonzalez@email.com"))
	assert.True(t, validators.IsEmailFormatValid("claled@gmail.com"))

	assert.False(t, validators.IsEmailFormatValid(""))
	assert.False(t, validators.IsEmailFormatValid("maria"))
	assert.False(t, validators.IsEmailFormatValid("maria@"))
	assert.False(t, validators.IsEmailFormatValid("@email.com"))
}
