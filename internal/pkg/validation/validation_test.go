package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("maria@example.com"))
	assert.False(t, IsValidEmail("maria@"))
	assert.False(t, IsValidEmail("no-at-sign"))
}

func TestIsValidTaxNumber(t *testing.T) {
	assert.True(t, IsValidTaxNumber("12345678"))
	assert.True(t, IsValidTaxNumber("12345678K"))
	assert.False(t, IsValidTaxNumber("123"))
	assert.False(t, IsValidTaxNumber("12K45678"))
	assert.False(t, IsValidTaxNumber("1234567890123"))
}

func TestIsValidContractNumber(t *testing.T) {
	assert.True(t, IsValidContractNumber("CTR-000001"))
	assert.True(t, IsValidContractNumber("FUN-999999"))
	assert.False(t, IsValidContractNumber("CTR-1"))
	assert.False(t, IsValidContractNumber("ctr-000001"))
	assert.False(t, IsValidContractNumber("CTR000001"))
}
