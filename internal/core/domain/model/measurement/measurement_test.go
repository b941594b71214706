package measurement_test

import (
	"math"
	"testing"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/measurement"
	"tailor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestNewMeasurement(t *testing.T) {
	t.Run("accepts partial values", func(t *testing.T) {
		m, err := measurement.NewMeasurement(1, measurement.Values{
			Chest: f(98.5),
			Other: map[string]float64{" hip ": 101, "inseam": 0},
		})

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		v := m.Values()
		assert.InDelta(t, 98.5, *v.Chest, 0.0001)
		assert.Nil(t, v.Shoulder)
		assert.Equal(t, map[string]float64{"hip": 101, "inseam": 0}, v.Other)
	})

	t.Run("accepts no values at all", func(t *testing.T) {
		m, err := measurement.NewMeasurement(1, measurement.Values{})

		require.NoError(t, err)
		assert.Nil(t, m.Values().Other)
	})

	t.Run("rejects negative and non-finite values", func(t *testing.T) {
		_, err := measurement.NewMeasurement(1, measurement.Values{
			Shoulder: f(-1),
			Waist:    f(math.NaN()),
			Other:    map[string]float64{"hip": math.Inf(1)},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "shoulder")
		assert.Contains(t, err.Error(), "waist")
		assert.Contains(t, err.Error(), "other_measurements.hip")
	})

	t.Run("rejects blank extra names", func(t *testing.T) {
		_, err := measurement.NewMeasurement(1, measurement.Values{Other: map[string]float64{" ": 3}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a customer", func(t *testing.T) {
		_, err := measurement.NewMeasurement(0, measurement.Values{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMeasurement_Replace(t *testing.T) {
	m, err := measurement.NewMeasurement(1, measurement.Values{Chest: f(90)})
	require.NoError(t, err)

	require.Error(t, m.Replace(measurement.Values{Chest: f(-5)}))
	assert.InDelta(t, 90, *m.Values().Chest, 0.0001)

	require.NoError(t, m.Replace(measurement.Values{Chest: f(92), Sleeve: f(60)}))
	assert.InDelta(t, 92, *m.Values().Chest, 0.0001)
	assert.InDelta(t, 60, *m.Values().Sleeve, 0.0001)
}

func TestMeasurement_ValuesIsACopy(t *testing.T) {
	m, err := measurement.NewMeasurement(1, measurement.Values{Other: map[string]float64{"hip": 100}})
	require.NoError(t, err)

	v := m.Values()
	v.Other["hip"] = 1

	assert.InDelta(t, 100, m.Values().Other["hip"], 0.0001)
}

func TestRestoreMeasurement(t *testing.T) {
	now := time.Now()
	m, err := measurement.RestoreMeasurement(3, 1, measurement.Values{}, now, now)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), m.ID())
	assert.Equal(t, kernel.ID(1), m.CustomerID())
}
