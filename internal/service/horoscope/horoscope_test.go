package horoscope

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sandevgo/fakenews/internal/catalog"
	"github.com/sandevgo/fakenews/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(predictions ...string) *Service {
	return NewService(Config{
		Signs:       catalog.Signs,
		Predictions: predictions,
		Attempts:    DefaultAttempts,
		Now:         func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	}, rand.New(rand.NewPCG(5, 6)))
}

func TestService_PerSignHistory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService("one", "two")

	for _, want := range []int{1, 0} {
		_, err := svc.Next(ctx, "Leo")
		require.NoError(t, err)
		assert.Equal(t, want, svc.Remaining("Leo"))
	}

	_, err := svc.Next(ctx, "Leo")
	assert.ErrorIs(t, err, core.ErrExhausted)

	// Other signs are untouched.
	r, err := svc.Next(ctx, "Virgo")
	require.NoError(t, err)
	assert.Equal(t, "Virgo", r.Sign)
	assert.Equal(t, 1, svc.Remaining("Virgo"))
}

func TestService_UnknownSign(t *testing.T) {
	svc := newTestService("one")

	_, err := svc.Next(context.Background(), "Ophiuchus")
	assert.ErrorIs(t, err, core.ErrInvalidSelection)
	assert.Equal(t, 0, svc.Remaining("Ophiuchus"))
}

func TestService_SignByIndex(t *testing.T) {
	svc := newTestService("one")

	tests := []struct {
		index   int
		want    string
		wantErr bool
	}{
		{index: 1, want: "Aries"},
		{index: 12, want: "Pisces"},
		{index: 0, wantErr: true},
		{index: 13, wantErr: true},
		{index: -3, wantErr: true},
	}

	for _, tt := range tests {
		got, err := svc.SignByIndex(tt.index)
		if tt.wantErr {
			assert.ErrorIs(t, err, core.ErrInvalidSelection, "index %d", tt.index)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestService_SignByName(t *testing.T) {
	svc := newTestService("one")

	got, err := svc.SignByName("  sagittarius ")
	require.NoError(t, err)
	assert.Equal(t, "Sagittarius", got)

	_, err = svc.SignByName("dragon")
	assert.ErrorIs(t, err, core.ErrInvalidSelection)
}

func TestReading_Text(t *testing.T) {
	r := Reading{Sign: "Aries", Prediction: "Beware of ducks."}
	assert.Equal(t, "Aries: Beware of ducks.", r.Text())
}
