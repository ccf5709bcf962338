package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/givihq/deliverytime/internal/features"
	"github.com/givihq/deliverytime/internal/geo"
	"github.com/givihq/deliverytime/internal/ml"
	"github.com/givihq/deliverytime/internal/models"
	"github.com/givihq/deliverytime/internal/output"
	"github.com/lucsky/cuid"
)

// ErrInvalidOrderHour is returned for hours outside [0,23].
var ErrInvalidOrderHour = errors.New("order_hour must be between 0 and 23")

// Request is a prediction request before resolution. Only the two addresses
// are required; every other field has a sensible default. The numeric fields
// are pointers so an explicit zero in the payload is kept rather than
// mistaken for an omitted field.
type Request struct {
	Restaurant        string   `json:"restaurant"`
	RestaurantAddress string   `json:"restaurant_address"`
	DeliveryAddress   string   `json:"delivery_address"`
	City              string   `json:"city"`
	Cuisine           string   `json:"cuisine"`
	NumItems          *int     `json:"num_items"`
	PrepTime          *int     `json:"prep_time"`
	RestaurantRating  *float64 `json:"restaurant_rating"`
	PartnerExperience *int     `json:"partner_experience"`
	OrderValue        *int     `json:"order_value"`
	Weather           string   `json:"weather"`
	Traffic           string   `json:"traffic"`
	OrderHour         *int     `json:"order_hour"`
}

type Endpoint struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}

type DistanceInfo struct {
	StraightLineKm    float64 `json:"straight_line_km"`
	RoadDistanceKm    float64 `json:"road_distance_km"`
	CalculationMethod string  `json:"calculation_method"`
}

type Coordinates struct {
	Restaurant Endpoint `json:"restaurant"`
	Delivery   Endpoint `json:"delivery"`
}

// DistanceReport is the response of the standalone distance endpoint.
type DistanceReport struct {
	Restaurant    Endpoint        `json:"restaurant"`
	Delivery      Endpoint        `json:"delivery"`
	Distance      DistanceInfo    `json:"distance"`
	RouteGeometry json.RawMessage `json:"route_geometry,omitempty"`
}

type Result struct {
	EstimatedTime      int             `json:"estimated_time"`
	Confidence         int             `json:"confidence"`
	TreePrediction     int             `json:"gbr_prediction"`
	SequencePrediction int             `json:"lstm_prediction"`
	Distance           DistanceInfo    `json:"distance"`
	Coordinates        Coordinates     `json:"coordinates"`
	RouteGeometry      json.RawMessage `json:"route_geometry,omitempty"`
	Factors            Factors         `json:"factors"`
	Timestamp          string          `json:"timestamp"`
}

// Service sequences geocoding, distance resolution, feature encoding,
// ensemble prediction and response assembly. The loaded artifacts are
// immutable, so a single Service is safe for concurrent requests.
type Service struct {
	geocoder geo.Geocoder
	resolver *geo.Resolver
	ensemble *ml.Ensemble
	vocabs   features.Vocabularies
	columns  []string
	sink     output.Sink
	now      func() time.Time
}

// NewService wires the pipeline. arts may be nil when the model artifacts
// failed to load; the service then answers every prediction with
// ml.ErrModelUnavailable but keeps the geocoding and distance endpoints up.
func NewService(geocoder geo.Geocoder, resolver *geo.Resolver, arts *ml.Artifacts, sink output.Sink) *Service {
	s := &Service{
		geocoder: geocoder,
		resolver: resolver,
		sink:     sink,
		now:      time.Now,
	}
	if arts != nil {
		s.ensemble = ml.NewEnsemble(arts)
		s.vocabs = arts.Vocabs
		s.columns = arts.Columns
	}
	return s
}

// WithClock overrides the wall clock; tests use this to pin day type and
// default order hour.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) ModelsLoaded() bool {
	return s.ensemble.Available()
}

func (s *Service) GeocodeAddress(ctx context.Context, address string) (*Endpoint, error) {
	place, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	return &Endpoint{
		Latitude:         place.Location.Lat,
		Longitude:        place.Location.Lon,
		FormattedAddress: place.DisplayName,
	}, nil
}

// CalculateDistance geocodes both addresses and resolves the road distance
// between them without running the models.
func (s *Service) CalculateDistance(ctx context.Context, restaurantAddr, deliveryAddr string) (*DistanceReport, error) {
	restaurant, delivery, road, err := s.resolveAddresses(ctx, restaurantAddr, deliveryAddr)
	if err != nil {
		return nil, err
	}
	return &DistanceReport{
		Restaurant:    *restaurant,
		Delivery:      *delivery,
		Distance:      distanceInfo(road),
		RouteGeometry: road.Geometry,
	}, nil
}

func (s *Service) Predict(ctx context.Context, req Request) (*Result, error) {
	if !s.ModelsLoaded() {
		return nil, ml.ErrModelUnavailable
	}

	restaurant, delivery, road, err := s.resolveAddresses(ctx, req.RestaurantAddress, req.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	now := s.now()
	orderHour := now.Hour()
	if req.OrderHour != nil {
		orderHour = *req.OrderHour
	}
	if orderHour < 0 || orderHour > 23 {
		return nil, ErrInvalidOrderHour
	}

	order := buildDeliveryRequest(req, road.RoadKm, orderHour, now)

	vector, err := features.Encode(order, s.vocabs, s.columns)
	if err != nil {
		return nil, err
	}

	prediction, err := s.ensemble.Predict(vector)
	if err != nil {
		return nil, err
	}

	confidence := Confidence(road.RoadKm, order.Weather, order.Traffic, orderHour)

	result := &Result{
		EstimatedTime:      prediction.EstimatedMinutes,
		Confidence:         confidence,
		TreePrediction:     int(math.Round(prediction.TreeMinutes)),
		SequencePrediction: int(math.Round(prediction.SequenceMinutes)),
		Distance:           distanceInfo(road),
		Coordinates:        Coordinates{Restaurant: *restaurant, Delivery: *delivery},
		RouteGeometry:      road.Geometry,
		Factors:            AssessFactors(order.Weather, order.Traffic, road.RoadKm, orderHour),
		Timestamp:          now.Format(time.RFC3339),
	}

	s.record(order, road, result)
	return result, nil
}

func (s *Service) resolveAddresses(ctx context.Context, restaurantAddr, deliveryAddr string) (*Endpoint, *Endpoint, geo.RoadDistance, error) {
	restaurant, err := s.GeocodeAddress(ctx, restaurantAddr)
	if err != nil {
		return nil, nil, geo.RoadDistance{}, fmt.Errorf("could not geocode restaurant address: %w", err)
	}
	delivery, err := s.GeocodeAddress(ctx, deliveryAddr)
	if err != nil {
		return nil, nil, geo.RoadDistance{}, fmt.Errorf("could not geocode delivery address: %w", err)
	}

	road := s.resolver.Resolve(ctx,
		models.Location{Lat: restaurant.Latitude, Lon: restaurant.Longitude},
		models.Location{Lat: delivery.Latitude, Lon: delivery.Longitude},
	)
	return restaurant, delivery, road, nil
}

func buildDeliveryRequest(req Request, roadKm float64, orderHour int, now time.Time) models.DeliveryRequest {
	return models.DeliveryRequest{
		Restaurant:              defaultString(req.Restaurant, "Faasos"),
		City:                    defaultString(req.City, "Mumbai"),
		Cuisine:                 defaultString(req.Cuisine, "North Indian"),
		DistanceKm:              roadKm,
		OrderHour:               orderHour,
		NumItems:                defaultInt(req.NumItems, 2),
		PrepTimeMin:             defaultInt(req.PrepTime, 15),
		RestaurantRating:        defaultFloat(req.RestaurantRating, 4.2),
		PartnerExperienceMonths: defaultInt(req.PartnerExperience, 12),
		OrderValue:              defaultInt(req.OrderValue, 450),
		Weather:                 defaultString(req.Weather, models.WeatherClear),
		Traffic:                 defaultString(req.Traffic, models.TrafficMedium),
		DayType:                 models.DayTypeFor(now),
		MealType:                models.MealTypeForHour(orderHour),
	}
}

func distanceInfo(road geo.RoadDistance) DistanceInfo {
	return DistanceInfo{
		StraightLineKm:    geo.Round2(road.StraightKm),
		RoadDistanceKm:    road.RoadKm,
		CalculationMethod: road.Method,
	}
}

// record forwards the served prediction to the configured sink without
// blocking the response.
func (s *Service) record(req models.DeliveryRequest, road geo.RoadDistance, result *Result) {
	if s.sink == nil {
		return
	}
	rec := output.PredictionRecord{
		ID:               cuid.New(),
		CreatedAt:        s.now(),
		Restaurant:       req.Restaurant,
		City:             req.City,
		RoadKm:           road.RoadKm,
		Method:           road.Method,
		EstimatedMinutes: result.EstimatedTime,
		Confidence:       result.Confidence,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.sink.Write(ctx, rec); err != nil {
			log.Printf("failed to record prediction %s: %v", rec.ID, err)
		}
	}()
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func defaultInt(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func defaultFloat(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}
