package generator

// Catalogs for the synthetic dataset. Cities and cloud kitchens mirror the
// markets the service operates in.
var (
	Cities = []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Pune", "Chennai", "Kolkata"}

	Restaurants = []string{
		"Biryani Blues", "Faasos", "Behrouz Biryani", "Oven Story Pizza",
		"The Bowl Company", "Lunch Box", "Mandarin Oak", "Firangi Bake",
		"Slay Coffee", "EatFit", "WarmOven", "Box8", "Freshmenu",
	}

	Cuisines = []string{"North Indian", "South Indian", "Chinese", "Italian", "Biryani", "Fast Food", "Healthy"}

	WeatherConditions = []string{"Clear", "Rain", "Heavy Rain", "Cloudy", "Hot"}

	TrafficLevels = []string{"Low", "Medium", "High", "Very High"}
)

var trafficMultipliers = map[string]float64{
	"Low":       1.0,
	"Medium":    1.2,
	"High":      1.5,
	"Very High": 1.8,
}

var weatherMultipliers = map[string]float64{
	"Clear":      1.0,
	"Cloudy":     1.05,
	"Hot":        1.1,
	"Rain":       1.3,
	"Heavy Rain": 1.6,
}

// Traffic level weights. Lunch and dinner rushes and weekends skew heavy.
var (
	busyTrafficWeights  = []float64{0.1, 0.2, 0.4, 0.3}
	quietTrafficWeights = []float64{0.4, 0.4, 0.15, 0.05}
)
