package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/givihq/deliverytime/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// Generator produces synthetic delivery orders with delivery times that
// respond to distance, traffic, weather, peak hours and partner experience
// the way real orders do. Seeded, so runs are reproducible.
type Generator struct {
	cfg  models.DatasetConfig
	rng  *rand.Rand
	fake faker.Faker
}

func New(cfg models.DatasetConfig) *Generator {
	if cfg.StartDate.IsZero() {
		cfg.StartDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if cfg.SpanDays <= 0 {
		cfg.SpanDays = 90
	}
	return &Generator{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		fake: faker.NewWithSeed(rand.NewSource(cfg.Seed)),
	}
}

// Generate produces a single order.
func (g *Generator) Generate() Row {
	city := Cities[g.rng.Intn(len(Cities))]
	restaurant := Restaurants[g.rng.Intn(len(Restaurants))]
	cuisine := Cuisines[g.rng.Intn(len(Cuisines))]

	orderDate := g.cfg.StartDate.AddDate(0, 0, g.rng.Intn(g.cfg.SpanDays))
	hour := 6 + g.rng.Intn(18) // orders run 06:00 through 23:00
	dayType := models.DayTypeFor(orderDate)
	isWeekend := dayType == models.DayTypeWeekend

	distance := math.Min(g.gamma2(1.5), 15)
	distance = math.Round(distance*100) / 100

	orderValue := 150 + g.rng.Intn(1351)
	numItems := 1 + g.rng.Intn(6)
	weather := WeatherConditions[g.rng.Intn(len(WeatherConditions))]
	traffic := g.trafficFor(hour, isWeekend)

	basePrep := 8 + g.rng.Intn(18)
	prepTime := basePrep + numItems*(1+g.rng.Intn(3))

	rating := math.Round((3.5+g.rng.Float64()*1.4)*10) / 10
	experience := 1 + g.rng.Intn(48)

	total := g.deliveryTime(distance, traffic, weather, hour, isWeekend, experience, prepTime)

	return Row{
		OrderID:                 cuid.New(),
		RestaurantName:          restaurant,
		City:                    city,
		CuisineType:             cuisine,
		OrderDate:               orderDate.Format("2006-01-02"),
		OrderHour:               int32(hour),
		DayType:                 dayType,
		MealType:                models.MealTypeForHour(hour),
		DistanceKm:              distance,
		OrderValueInr:           int32(orderValue),
		NumItems:                int32(numItems),
		WeatherCondition:        weather,
		TrafficLevel:            traffic,
		PreparationTimeMin:      int32(prepTime),
		RestaurantRating:        rating,
		PartnerName:             g.fake.Person().Name(),
		PartnerExperienceMonths: int32(experience),
		ActualDeliveryTimeMin:   int32(total),
	}
}

func (g *Generator) trafficFor(hour int, weekend bool) string {
	weights := quietTrafficWeights
	if weekend || hour == 12 || hour == 13 || hour == 19 || hour == 20 || hour == 21 {
		weights = busyTrafficWeights
	}
	return weightedChoice(g.rng, TrafficLevels, weights)
}

func (g *Generator) deliveryTime(distance float64, traffic, weather string, hour int, weekend bool, experience, prepTime int) int {
	base := distance * (3 + g.rng.Float64()*2) // 3-5 min per km
	base *= trafficMultipliers[traffic]
	base *= weatherMultipliers[weather]
	if models.IsPeakHour(hour) {
		base *= 1.15
	}
	if weekend {
		base *= 1.1
	}
	base *= 1 - float64(experience)/500

	total := float64(prepTime) + base
	total += -5 + g.rng.Float64()*10
	if total < 15 {
		return 15
	}
	return int(math.Round(total))
}

// gamma2 samples Gamma(shape=2, scale) as the sum of two exponentials. Keeps
// most distances in the 2-5 km range with a long tail.
func (g *Generator) gamma2(scale float64) float64 {
	u1 := g.rng.Float64()
	u2 := g.rng.Float64()
	return -scale * (math.Log(1-u1) + math.Log(1-u2))
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target <= 0 {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
