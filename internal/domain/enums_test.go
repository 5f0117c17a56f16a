package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractType_RoundTrip(t *testing.T) {
	for _, typ := range []ContractType{TypeImmediateNeed, TypeFutureNeed} {
		parsed, err := ParseContractType(typ.Label())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)

		parsed, err = ParseContractType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
}

func TestContractStatus_RoundTrip(t *testing.T) {
	for _, st := range []ContractStatus{StatusQuote, StatusContract, StatusCompleted, StatusCancelled} {
		parsed, err := ParseContractStatus(st.Label())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)

		parsed, err = ParseContractStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
}

func TestPaymentMethod_RoundTrip(t *testing.T) {
	for _, m := range []PaymentMethod{MethodCash, MethodCredit} {
		parsed, err := ParsePaymentMethod(m.Label())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParse_UnknownLabels(t *testing.T) {
	_, err := ParseContractType("Cremación")
	assert.Error(t, err)
	_, err = ParseContractStatus("Pendiente")
	assert.Error(t, err)
	_, err = ParsePaymentMethod("Cheque")
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, TypeImmediateNeed.Valid())
	assert.False(t, ContractType("cremation").Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, ContractStatus("archived").Valid())
	assert.True(t, MethodCredit.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
}
