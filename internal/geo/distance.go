package geo

import (
	"math"

	"github.com/givihq/deliverytime/internal/models"
)

const earthRadiusKm = 6371.0 // Earth's radius in kilometers

// Urban road distance is typically 1.3-1.5x the straight line.
const roadDistanceMultiplier = 1.35

// Haversine returns the great-circle distance between two points in
// kilometers, assuming a spherical Earth.
func Haversine(loc1, loc2 models.Location) float64 {
	lat1 := degreesToRadians(loc1.Lat)
	lon1 := degreesToRadians(loc1.Lon)
	lat2 := degreesToRadians(loc2.Lat)
	lon2 := degreesToRadians(loc2.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EstimateRoadDistance approximates the road distance from the straight-line
// distance. Used when the routing service is unavailable; never fails.
func EstimateRoadDistance(straightKm float64) float64 {
	return Round2(straightKm * roadDistanceMultiplier)
}

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
