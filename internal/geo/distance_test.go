package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/givihq/deliverytime/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	bandra  = models.Location{Lat: 19.0596, Lon: 72.8295}
	andheri = models.Location{Lat: 19.1136, Lon: 72.8697}
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name  string
		from  models.Location
		to    models.Location
		want  float64
		delta float64
	}{
		{"same point", bandra, bandra, 0, 0.001},
		{"bandra to andheri", bandra, andheri, 7.33, 0.1},
		{"mumbai to delhi", models.Location{Lat: 19.076, Lon: 72.8777}, models.Location{Lat: 28.7041, Lon: 77.1025}, 1153, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Haversine(tt.from, tt.to), tt.delta)
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	assert.InDelta(t, Haversine(bandra, andheri), Haversine(andheri, bandra), 1e-9)
}

func TestEstimateRoadDistance(t *testing.T) {
	assert.Equal(t, 13.5, EstimateRoadDistance(10))
	assert.Equal(t, 0.0, EstimateRoadDistance(0))
	assert.Equal(t, 4.05, EstimateRoadDistance(3))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 3.46, Round2(3.456))
	assert.Equal(t, 3.5, Round1(3.456))
}

type failingRouter struct{}

func (failingRouter) Route(ctx context.Context, from, to models.Location) (*Route, error) {
	return nil, errors.New("connection refused")
}

type fixedRouter struct {
	route Route
}

func (f fixedRouter) Route(ctx context.Context, from, to models.Location) (*Route, error) {
	return &f.route, nil
}

func TestResolverUsesRoute(t *testing.T) {
	resolver := NewResolver(fixedRouter{route: Route{DistanceKm: 9.6, DurationMin: 22.3}})

	road := resolver.Resolve(context.Background(), bandra, andheri)
	assert.Equal(t, MethodRouted, road.Method)
	assert.Equal(t, 9.6, road.RoadKm)
	assert.Equal(t, 22.3, road.DurationMin)
	assert.InDelta(t, 7.33, road.StraightKm, 0.1)
}

func TestResolverFallsBackOnRoutingError(t *testing.T) {
	resolver := NewResolver(failingRouter{})

	road := resolver.Resolve(context.Background(), bandra, andheri)
	assert.Equal(t, MethodEstimated, road.Method)
	assert.Equal(t, EstimateRoadDistance(road.StraightKm), road.RoadKm)
	assert.Zero(t, road.DurationMin)
	assert.Empty(t, road.Geometry)
}

func TestResolverWithoutRouter(t *testing.T) {
	resolver := NewResolver(nil)

	road := resolver.Resolve(context.Background(), bandra, andheri)
	assert.Equal(t, MethodEstimated, road.Method)
}
