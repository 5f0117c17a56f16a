package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ExactSplit(t *testing.T) {
	from := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	out, err := Build(360000, 60000, 3, from)
	require.NoError(t, err)
	require.Len(t, out, 3)

	var sum int64
	for i, inst := range out {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, int64(100000), inst.Amount)
		assert.Equal(t, from.AddDate(0, i+1, 0), inst.DueDate)
		sum += inst.Amount
	}
	assert.Equal(t, int64(300000), sum)
}

func TestBuild_RemainderOnLast(t *testing.T) {
	out, err := Build(100000, 0, 3, time.Now())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, int64(33333), out[0].Amount)
	assert.Equal(t, int64(33333), out[1].Amount)
	assert.Equal(t, int64(33334), out[2].Amount)
}

func TestBuild_SumLaw(t *testing.T) {
	// Σ amount == total - down_payment exactly, across awkward divisions
	cases := []struct {
		total, down int64
		count       int
	}{
		{360000, 60000, 3},
		{100001, 0, 7},
		{999999, 123456, 11},
		{50000, 50000, 2},
		{1, 0, 12},
	}
	for _, tc := range cases {
		out, err := Build(tc.total, tc.down, tc.count, time.Now())
		require.NoError(t, err)
		var sum int64
		for _, inst := range out {
			sum += inst.Amount
		}
		assert.Equal(t, tc.total-tc.down, sum, "total=%d down=%d count=%d", tc.total, tc.down, tc.count)
	}
}

func TestBuild_InvalidCount(t *testing.T) {
	_, err := Build(100000, 0, 0, time.Now())
	assert.ErrorIs(t, err, ErrInstallmentCount)
	_, err = Build(100000, 0, 13, time.Now())
	assert.ErrorIs(t, err, ErrInstallmentCount)
}

func TestBuild_InvalidDownPayment(t *testing.T) {
	_, err := Build(100000, -1, 3, time.Now())
	assert.ErrorIs(t, err, ErrDownPayment)
	_, err = Build(100000, 100001, 3, time.Now())
	assert.ErrorIs(t, err, ErrDownPayment)
}
