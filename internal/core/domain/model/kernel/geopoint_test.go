package kernel_test

import (
	"testing"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"warsaw", 52.2297, 21.0122, false},
		{"equator meridian", 0, 0, false},
		{"latitude too high", 91, 0, true},
		{"latitude too low", -90.5, 0, true},
		{"longitude too high", 0, 180.1, true},
		{"longitude too low", 0, -181, true},
		{"bounds are inclusive", 90, -180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.latitude, p.Latitude())
			assert.Equal(t, tt.longitude, p.Longitude())
		})
	}
}

func TestGeoPointFromString(t *testing.T) {
	t.Run("round trips through text form", func(t *testing.T) {
		p, err := kernel.GeoPointFromString("50.4504,30.5245")

		require.NoError(t, err)
		assert.Equal(t, "50.4504,30.5245", p.String())
	})

	t.Run("tolerates spaces", func(t *testing.T) {
		p, err := kernel.GeoPointFromString("52.52, 13.405")

		require.NoError(t, err)
		assert.Equal(t, 52.52, p.Latitude())
		assert.Equal(t, 13.405, p.Longitude())
	})

	t.Run("rejects missing component", func(t *testing.T) {
		_, err := kernel.GeoPointFromString("52.52")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non numeric input", func(t *testing.T) {
		_, err := kernel.GeoPointFromString("lat,long")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var p kernel.GeoPoint

	require.Error(t, p.Validate())
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	b, err := kernel.GeoPointFromString("52.52,13.405")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
}

func TestCurrencyCodeFromString(t *testing.T) {
	t.Run("supported code", func(t *testing.T) {
		code, err := kernel.CurrencyCodeFromString("PLN")

		require.NoError(t, err)
		assert.Equal(t, kernel.CurrencyPLN, code)
	})

	t.Run("unsupported code", func(t *testing.T) {
		_, err := kernel.CurrencyCodeFromString("BTC")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := kernel.CurrencyCodeFromString("")

		require.Error(t, err)
	})
}
