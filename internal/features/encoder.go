package features

import (
	"github.com/givihq/deliverytime/internal/models"
)

// Feature column names as they appear in the trained column order artifact.
const (
	ColDistanceKm        = "distance_km"
	ColOrderHour         = "order_hour"
	ColNumItems          = "num_items"
	ColPrepTime          = "preparation_time_min"
	ColRestaurantRating  = "restaurant_rating"
	ColPartnerExperience = "delivery_partner_experience_months"
	ColOrderValue        = "order_value_inr"
	ColRestaurantCode    = "restaurant_encoded"
	ColCityCode          = "city_encoded"
	ColCuisineCode       = "cuisine_encoded"
	ColDayTypeCode       = "day_type_encoded"
	ColMealTypeCode      = "meal_type_encoded"
	ColWeatherCode       = "weather_encoded"
	ColTrafficCode       = "traffic_encoded"
	ColIsPeakHour        = "is_peak_hour"
	ColIsNight           = "is_night"
)

// Encode assembles the numeric feature vector for a delivery request in
// exactly the trained column order. Pure function of its inputs.
func Encode(req models.DeliveryRequest, vocabs Vocabularies, columns []string) ([]float64, error) {
	categorical := []struct {
		field string
		value string
		col   string
	}{
		{FieldRestaurant, req.Restaurant, ColRestaurantCode},
		{FieldCity, req.City, ColCityCode},
		{FieldCuisine, req.Cuisine, ColCuisineCode},
		{FieldDayType, req.DayType, ColDayTypeCode},
		{FieldMealType, req.MealType, ColMealTypeCode},
		{FieldWeather, req.Weather, ColWeatherCode},
		{FieldTraffic, req.Traffic, ColTrafficCode},
	}

	values := map[string]float64{
		ColDistanceKm:        req.DistanceKm,
		ColOrderHour:         float64(req.OrderHour),
		ColNumItems:          float64(req.NumItems),
		ColPrepTime:          float64(req.PrepTimeMin),
		ColRestaurantRating:  req.RestaurantRating,
		ColPartnerExperience: float64(req.PartnerExperienceMonths),
		ColOrderValue:        float64(req.OrderValue),
		ColIsPeakHour:        boolToFloat(models.IsPeakHour(req.OrderHour)),
		ColIsNight:           boolToFloat(models.IsNight(req.OrderHour)),
	}

	for _, c := range categorical {
		code, err := vocabs.Code(c.field, c.value)
		if err != nil {
			return nil, err
		}
		values[c.col] = float64(code)
	}

	vector := make([]float64, len(columns))
	for i, col := range columns {
		value, ok := values[col]
		if !ok {
			return nil, &SchemaMismatchError{Column: col}
		}
		vector[i] = value
	}
	return vector, nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
