package models

import "time"

const (
	WeatherClear     = "Clear"
	WeatherCloudy    = "Cloudy"
	WeatherHot       = "Hot"
	WeatherRain      = "Rain"
	WeatherHeavyRain = "Heavy Rain"

	TrafficLow      = "Low"
	TrafficMedium   = "Medium"
	TrafficHigh     = "High"
	TrafficVeryHigh = "Very High"

	DayTypeWeekday = "Weekday"
	DayTypeWeekend = "Weekend"

	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeSnacks    = "Snacks"
	MealTypeDinner    = "Dinner"
)

// DeliveryRequest is the fully resolved input to the prediction pipeline:
// addresses have already been geocoded and the road distance resolved.
type DeliveryRequest struct {
	Restaurant              string  `json:"restaurant"`
	City                    string  `json:"city"`
	Cuisine                 string  `json:"cuisine"`
	DistanceKm              float64 `json:"distance_km"`
	OrderHour               int     `json:"order_hour"`
	NumItems                int     `json:"num_items"`
	PrepTimeMin             int     `json:"prep_time_min"`
	RestaurantRating        float64 `json:"restaurant_rating"`
	PartnerExperienceMonths int     `json:"partner_experience_months"`
	OrderValue              int     `json:"order_value"`
	Weather                 string  `json:"weather"`
	Traffic                 string  `json:"traffic"`
	DayType                 string  `json:"day_type"`
	MealType                string  `json:"meal_type"`
}

// MealTypeForHour derives the meal type from the order hour:
// 6-10 Breakfast, 11-15 Lunch, 16-18 Snacks, everything else Dinner.
func MealTypeForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return MealTypeBreakfast
	case hour >= 11 && hour < 16:
		return MealTypeLunch
	case hour >= 16 && hour < 19:
		return MealTypeSnacks
	default:
		return MealTypeDinner
	}
}

func DayTypeFor(t time.Time) string {
	day := t.Weekday()
	if day == time.Saturday || day == time.Sunday {
		return DayTypeWeekend
	}
	return DayTypeWeekday
}

// IsPeakHour reports whether the hour falls in the lunch or dinner rush.
func IsPeakHour(hour int) bool {
	return hour == 13 || hour == 14 || hour == 20 || hour == 21
}

func IsNight(hour int) bool {
	return hour >= 22 || hour <= 6
}
