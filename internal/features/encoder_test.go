package features

import (
	"testing"

	"github.com/givihq/deliverytime/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocabs() Vocabularies {
	return Vocabularies{
		FieldRestaurant: {"Faasos": 5, "Box8": 1},
		FieldCity:       {"Mumbai": 5, "Delhi": 2},
		FieldCuisine:    {"North Indian": 5, "Chinese": 1},
		FieldDayType:    {"Weekday": 0, "Weekend": 1},
		FieldMealType:   {"Breakfast": 0, "Dinner": 1, "Lunch": 2, "Snacks": 3},
		FieldWeather:    {"Clear": 0, "Cloudy": 1, "Heavy Rain": 2, "Hot": 3, "Rain": 4},
		FieldTraffic:    {"High": 0, "Low": 1, "Medium": 2, "Very High": 3},
	}
}

func testColumns() []string {
	return []string{
		ColDistanceKm, ColOrderHour, ColNumItems, ColPrepTime,
		ColRestaurantRating, ColPartnerExperience, ColOrderValue,
		ColRestaurantCode, ColCityCode, ColCuisineCode, ColDayTypeCode,
		ColMealTypeCode, ColWeatherCode, ColTrafficCode,
		ColIsPeakHour, ColIsNight,
	}
}

func testRequest() models.DeliveryRequest {
	return models.DeliveryRequest{
		Restaurant:              "Faasos",
		City:                    "Mumbai",
		Cuisine:                 "North Indian",
		DistanceKm:              5.2,
		OrderHour:               13,
		NumItems:                3,
		PrepTimeMin:             20,
		RestaurantRating:        4.3,
		PartnerExperienceMonths: 18,
		OrderValue:              600,
		Weather:                 "Rain",
		Traffic:                 "High",
		DayType:                 "Weekend",
		MealType:                "Lunch",
	}
}

func TestEncodeFollowsColumnOrder(t *testing.T) {
	vector, err := Encode(testRequest(), testVocabs(), testColumns())
	require.NoError(t, err)
	require.Len(t, vector, 16)

	want := []float64{
		5.2, 13, 3, 20, 4.3, 18, 600, // numeric passthrough
		5, 5, 5, 1, 2, 4, 0, // categorical codes
		1, 0, // 13:00 is peak, not night
	}
	assert.Equal(t, want, vector)
}

func TestEncodeRespectsArbitraryColumnOrder(t *testing.T) {
	columns := []string{ColTrafficCode, ColDistanceKm, ColIsNight}
	vector, err := Encode(testRequest(), testVocabs(), columns)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5.2, 0}, vector)
}

func TestEncodeDerivedFlagsAcrossAllHours(t *testing.T) {
	peak := map[int]bool{13: true, 14: true, 20: true, 21: true}
	for hour := 0; hour < 24; hour++ {
		req := testRequest()
		req.OrderHour = hour

		vector, err := Encode(req, testVocabs(), testColumns())
		require.NoError(t, err)

		wantPeak := 0.0
		if peak[hour] {
			wantPeak = 1.0
		}
		wantNight := 0.0
		if hour >= 22 || hour <= 6 {
			wantNight = 1.0
		}
		assert.Equal(t, wantPeak, vector[14], "is_peak_hour at hour %d", hour)
		assert.Equal(t, wantNight, vector[15], "is_night at hour %d", hour)
	}
}

func TestEncodeUnknownCategory(t *testing.T) {
	req := testRequest()
	req.Weather = "Snow"

	_, err := Encode(req, testVocabs(), testColumns())
	require.Error(t, err)

	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, FieldWeather, unknown.Field)
	assert.Equal(t, "Snow", unknown.Value)
}

func TestEncodeSchemaMismatch(t *testing.T) {
	columns := append(testColumns(), "surge_multiplier")

	_, err := Encode(testRequest(), testVocabs(), columns)
	require.Error(t, err)

	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "surge_multiplier", mismatch.Column)
}

func TestVocabulariesCode(t *testing.T) {
	vocabs := testVocabs()

	code, err := vocabs.Code(FieldTraffic, "Very High")
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	_, err = vocabs.Code("surge", "2x")
	var mismatch *SchemaMismatchError
	assert.ErrorAs(t, err, &mismatch)
}
