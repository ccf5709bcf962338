package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/givihq/deliverytime/internal/models"
)

// Route is a successful routing response.
type Route struct {
	DistanceKm  float64
	DurationMin float64
	Geometry    json.RawMessage
}

// Router computes a driving route between two coordinates.
type Router interface {
	Route(ctx context.Context, from, to models.Location) (*Route, error)
}

// OSRMRouter queries an OSRM instance. The public demo server works without
// an API key.
type OSRMRouter struct {
	baseURL string
	client  *http.Client
}

func NewOSRMRouter(cfg models.RoutingConfig) *OSRMRouter {
	return &OSRMRouter{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (r *OSRMRouter) Route(ctx context.Context, from, to models.Location) (*Route, error) {
	// OSRM takes lon,lat pairs
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		r.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var payload struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64         `json:"distance"` // meters
			Duration float64         `json:"duration"` // seconds
			Geometry json.RawMessage `json:"geometry"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding routing response: %w", err)
	}
	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return nil, fmt.Errorf("routing service returned code %q", payload.Code)
	}

	route := payload.Routes[0]
	return &Route{
		DistanceKm:  Round2(route.Distance / 1000),
		DurationMin: Round1(route.Duration / 60),
		Geometry:    route.Geometry,
	}, nil
}
