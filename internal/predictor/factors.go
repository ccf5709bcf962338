package predictor

import "github.com/givihq/deliverytime/internal/models"

// Factors are the qualitative impact labels returned alongside the estimate.
type Factors struct {
	WeatherImpact  string `json:"weather_impact"`
	TrafficImpact  string `json:"traffic_impact"`
	DistanceFactor string `json:"distance_factor"`
	PeakHour       string `json:"peak_hour"`
}

var weatherImpacts = map[string]string{
	models.WeatherClear:     "Minimal",
	models.WeatherCloudy:    "Low",
	models.WeatherHot:       "Low",
	models.WeatherRain:      "Moderate",
	models.WeatherHeavyRain: "High",
}

var trafficImpacts = map[string]string{
	models.TrafficLow:      "Minimal",
	models.TrafficMedium:   "Moderate",
	models.TrafficHigh:     "Significant",
	models.TrafficVeryHigh: "Very High",
}

func AssessFactors(weather, traffic string, roadKm float64, orderHour int) Factors {
	distanceFactor := "Low"
	if roadKm > 7 {
		distanceFactor = "High"
	} else if roadKm > 4 {
		distanceFactor = "Medium"
	}

	peakHour := "No"
	if models.IsPeakHour(orderHour) {
		peakHour = "Yes (+15%)"
	}

	return Factors{
		WeatherImpact:  weatherImpacts[weather],
		TrafficImpact:  trafficImpacts[traffic],
		DistanceFactor: distanceFactor,
		PeakHour:       peakHour,
	}
}
