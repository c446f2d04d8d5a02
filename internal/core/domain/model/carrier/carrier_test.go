package carrier_test

import (
	"testing"
	"time"

	"transport/internal/core/domain/model/carrier"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredAt() time.Time {
	return time.Date(2021, 3, 20, 0, 0, 0, 0, time.UTC)
}

func newTestCarrier(t *testing.T, status carrier.Status) *carrier.Carrier {
	t.Helper()

	c, err := carrier.NewCarrier(
		kernel.NewUUID(),
		"XYZ789",
		"Mercedes Sprinter",
		carrier.TypeBox,
		registeredAt(),
		status,
		35.75,
	)
	require.NoError(t, err)
	return c
}

func TestNewCarrier(t *testing.T) {
	t.Run("valid carrier", func(t *testing.T) {
		c := newTestCarrier(t, carrier.StatusAvailable)

		assert.Equal(t, "XYZ789", c.LicensePlate())
		assert.Equal(t, "Mercedes Sprinter", c.Model())
		assert.Equal(t, carrier.TypeBox, c.Type())
		assert.Equal(t, carrier.StatusAvailable, c.Status())
		assert.Equal(t, 35.75, c.Rate())
		assert.True(t, c.IsAvailable())
		require.NoError(t, c.Validate())
	})

	t.Run("status is persisted as given", func(t *testing.T) {
		c := newTestCarrier(t, carrier.StatusBusy)

		assert.Equal(t, carrier.StatusBusy, c.Status())
		assert.False(t, c.IsAvailable())
	})

	tests := []struct {
		name    string
		plate   string
		model   string
		ctype   carrier.Type
		regDate time.Time
		status  carrier.Status
		rate    float64
	}{
		{"empty license plate", "", "Scania R450", carrier.TypeTanker, registeredAt(), carrier.StatusAvailable, 40},
		{"empty model", "GHI789", "", carrier.TypeTanker, registeredAt(), carrier.StatusAvailable, 40},
		{"unknown type", "GHI789", "Scania R450", carrier.TypeUnknown, registeredAt(), carrier.StatusAvailable, 40},
		{"zero registration date", "GHI789", "Scania R450", carrier.TypeTanker, time.Time{}, carrier.StatusAvailable, 40},
		{"unknown status", "GHI789", "Scania R450", carrier.TypeTanker, registeredAt(), carrier.StatusUnknown, 40},
		{"zero rate", "GHI789", "Scania R450", carrier.TypeTanker, registeredAt(), carrier.StatusAvailable, 0},
		{"negative rate", "GHI789", "Scania R450", carrier.TypeTanker, registeredAt(), carrier.StatusAvailable, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := carrier.NewCarrier(
				kernel.NewUUID(), tt.plate, tt.model, tt.ctype, tt.regDate, tt.status, tt.rate)

			require.Error(t, err)
		})
	}
}

func TestCarrier_Validate_ZeroValue(t *testing.T) {
	var c carrier.Carrier

	require.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
}

func TestCarrier_Apply(t *testing.T) {
	t.Run("available carrier accepts a field patch", func(t *testing.T) {
		c := newTestCarrier(t, carrier.StatusAvailable)
		model := "Volvo FH16"
		rate := 45.0

		err := c.Apply(carrier.Patch{Model: &model, Rate: &rate})

		require.NoError(t, err)
		assert.Equal(t, "Volvo FH16", c.Model())
		assert.Equal(t, 45.0, c.Rate())
	})

	t.Run("busy carrier rejects patch without target status", func(t *testing.T) {
		c := newTestCarrier(t, carrier.StatusBusy)
		model := "Volvo FH16"

		err := c.Apply(carrier.Patch{Model: &model})

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "Mercedes Sprinter", c.Model())
	})

	t.Run("busy carrier rejects patch keeping it busy", func(t *testing.T) {
		c := newTestCarrier(t, carrier.StatusBusy)
		status := carrier.StatusBusy

		err := c.Apply(carrier.Patch{Status: &status})

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("busy carrier accepts release to available", func(t *testing.T) {
		c := newTestCarrier(t, carrier.StatusBusy)
		status := carrier.StatusAvailable

		err := c.Apply(carrier.Patch{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, carrier.StatusAvailable, c.Status())
	})

	t.Run("invalid patched value is rejected", func(t *testing.T) {
		c := newTestCarrier(t, carrier.StatusAvailable)
		empty := ""

		err := c.Apply(carrier.Patch{LicensePlate: &empty})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCarrier_MarkBusyAndRelease(t *testing.T) {
	c := newTestCarrier(t, carrier.StatusAvailable)

	require.NoError(t, c.MarkBusy())
	assert.Equal(t, carrier.StatusBusy, c.Status())

	// Busy carrier can not be dispatched again.
	require.ErrorIs(t, c.MarkBusy(), errs.ErrInvalidTransition)

	require.NoError(t, c.Release())
	assert.Equal(t, carrier.StatusAvailable, c.Status())

	// Available carrier has nothing to release.
	require.ErrorIs(t, c.Release(), errs.ErrInvalidTransition)
}

func TestTypeFromString(t *testing.T) {
	for _, s := range []string{"MINI", "BOX", "FLAT", "REFRIGERATED", "TANKER"} {
		parsed, err := carrier.TypeFromString(s)

		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}

	_, err := carrier.TypeFromString("SEMI")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []string{"AVAILABLE", "BUSY"} {
		parsed, err := carrier.StatusFromString(s)

		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}

	_, err := carrier.StatusFromString("IDLE")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "UNKNOWN", carrier.StatusUnknown.String())
}
