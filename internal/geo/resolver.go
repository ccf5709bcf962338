package geo

import (
	"context"
	"encoding/json"
	"log"

	"github.com/givihq/deliverytime/internal/models"
)

// Calculation methods reported in the distance block.
const (
	MethodRouted    = "OSRM"
	MethodEstimated = "Estimated"
)

// RoadDistance is the resolver's answer: the Haversine baseline is always
// present, the road figures come either from routing or from the estimation
// fallback.
type RoadDistance struct {
	StraightKm  float64
	RoadKm      float64
	DurationMin float64
	Geometry    json.RawMessage
	Method      string
}

// Resolver turns a coordinate pair into a road distance. Routing failures
// of any kind degrade silently to the multiplier estimate; Resolve never
// fails.
type Resolver struct {
	router Router
}

func NewResolver(router Router) *Resolver {
	return &Resolver{router: router}
}

func (r *Resolver) Resolve(ctx context.Context, from, to models.Location) RoadDistance {
	straight := Haversine(from, to)

	if r.router != nil {
		route, err := r.router.Route(ctx, from, to)
		if err == nil {
			return RoadDistance{
				StraightKm:  straight,
				RoadKm:      route.DistanceKm,
				DurationMin: route.DurationMin,
				Geometry:    route.Geometry,
				Method:      MethodRouted,
			}
		}
		log.Printf("routing failed, falling back to estimate: %v", err)
	}

	return RoadDistance{
		StraightKm: straight,
		RoadKm:     EstimateRoadDistance(straight),
		Method:     MethodEstimated,
	}
}
