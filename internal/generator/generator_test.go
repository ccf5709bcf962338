package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/givihq/deliverytime/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() models.DatasetConfig {
	return models.DatasetConfig{
		Seed:      42,
		Samples:   200,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SpanDays:  300,
	}
}

func TestGenerateRowInvariants(t *testing.T) {
	gen := New(testConfig())

	for i := 0; i < 500; i++ {
		row := gen.Generate()

		assert.NotEmpty(t, row.OrderID)
		assert.Contains(t, Restaurants, row.RestaurantName)
		assert.Contains(t, Cities, row.City)
		assert.Contains(t, Cuisines, row.CuisineType)
		assert.Contains(t, WeatherConditions, row.WeatherCondition)
		assert.Contains(t, TrafficLevels, row.TrafficLevel)

		assert.GreaterOrEqual(t, row.OrderHour, int32(6))
		assert.LessOrEqual(t, row.OrderHour, int32(23))
		assert.Equal(t, models.MealTypeForHour(int(row.OrderHour)), row.MealType)

		assert.GreaterOrEqual(t, row.DistanceKm, 0.0)
		assert.LessOrEqual(t, row.DistanceKm, 15.0)

		assert.GreaterOrEqual(t, row.OrderValueInr, int32(150))
		assert.LessOrEqual(t, row.OrderValueInr, int32(1500))
		assert.GreaterOrEqual(t, row.NumItems, int32(1))
		assert.LessOrEqual(t, row.NumItems, int32(6))

		assert.GreaterOrEqual(t, row.RestaurantRating, 3.5)
		assert.LessOrEqual(t, row.RestaurantRating, 4.9)
		assert.GreaterOrEqual(t, row.PartnerExperienceMonths, int32(1))
		assert.LessOrEqual(t, row.PartnerExperienceMonths, int32(48))

		assert.GreaterOrEqual(t, row.ActualDeliveryTimeMin, int32(15))
		assert.NotEmpty(t, row.PartnerName)

		date, err := time.Parse("2006-01-02", row.OrderDate)
		require.NoError(t, err)
		assert.Equal(t, models.DayTypeFor(date), row.DayType)
	}
}

func TestGenerateReproducible(t *testing.T) {
	a := New(testConfig())
	b := New(testConfig())

	for i := 0; i < 50; i++ {
		rowA := a.Generate()
		rowB := b.Generate()
		// cuids are unique per call, everything else must match
		rowA.OrderID = ""
		rowB.OrderID = ""
		assert.Equal(t, rowA, rowB)
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	cfg := testConfig()
	a := New(cfg)
	cfg.Seed = 1234
	b := New(cfg)

	same := 0
	for i := 0; i < 20; i++ {
		if a.Generate().DistanceKm == b.Generate().DistanceKm {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestDeliveryTimeRespondsToConditions(t *testing.T) {
	gen := New(testConfig())

	avg := func(traffic, weather string) float64 {
		total := 0
		const n = 300
		for i := 0; i < n; i++ {
			total += gen.deliveryTime(5.0, traffic, weather, 10, false, 12, 20)
		}
		return float64(total) / n
	}

	calm := avg(models.TrafficLow, models.WeatherClear)
	rushed := avg(models.TrafficVeryHigh, models.WeatherHeavyRain)
	assert.Greater(t, rushed, calm)
}

func TestGamma2StaysPositive(t *testing.T) {
	gen := New(testConfig())
	for i := 0; i < 1000; i++ {
		assert.Greater(t, gen.gamma2(1.5), 0.0)
	}
}

func TestWeightedChoiceDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[weightedChoice(rng, TrafficLevels, busyTrafficWeights)]++
	}

	// busy weights: Low 0.1, Medium 0.2, High 0.4, Very High 0.3
	assert.Greater(t, counts["High"], counts["Low"])
	assert.Greater(t, counts["Very High"], counts["Medium"])
	for _, level := range TrafficLevels {
		assert.Greater(t, counts[level], 0)
	}
}

func TestDatasetWriterRejectsUnknownFormat(t *testing.T) {
	_, err := NewDatasetWriter(models.DatasetConfig{OutputFormat: "xml"})
	assert.ErrorContains(t, err, "unsupported output format")
}
