package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/givihq/deliverytime/internal/features"
	"github.com/givihq/deliverytime/internal/geo"
	"github.com/givihq/deliverytime/internal/ml"
	"github.com/givihq/deliverytime/internal/predictor"
	"github.com/gorilla/mux"
)

// PredictionService is the slice of the predictor the handlers need. Tests
// swap in a stub.
type PredictionService interface {
	Predict(ctx context.Context, req predictor.Request) (*predictor.Result, error)
	GeocodeAddress(ctx context.Context, address string) (*predictor.Endpoint, error)
	CalculateDistance(ctx context.Context, restaurantAddr, deliveryAddr string) (*predictor.DistanceReport, error)
	ModelsLoaded() bool
}

type Handler struct {
	service PredictionService
}

func NewHandler(service PredictionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.home).Methods("GET")
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/geocode", h.geocode).Methods("POST")
	r.HandleFunc("/calculate-distance", h.calculateDistance).Methods("POST")
	r.HandleFunc("/predict", h.predict).Methods("POST")
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "Food Delivery Time Prediction API",
		"version": "2.0",
		"endpoints": map[string]string{
			"GET /health":              "Service and model status",
			"POST /geocode":            "Resolve an address to coordinates",
			"POST /calculate-distance": "Road distance between two addresses",
			"POST /predict":            "Delivery time prediction",
		},
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"models_loaded": h.service.ModelsLoaded(),
		"geocoder":      "Nominatim (OpenStreetMap)",
		"routing":       "OSRM",
		"timestamp":     time.Now().Format(time.RFC3339),
	})
}

type geocodeRequest struct {
	Address string `json:"address"`
}

func (h *Handler) geocode(w http.ResponseWriter, r *http.Request) {
	var req geocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	place, err := h.service.GeocodeAddress(r.Context(), req.Address)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"location": place,
	})
}

type distanceRequest struct {
	RestaurantAddress string `json:"restaurant_address"`
	DeliveryAddress   string `json:"delivery_address"`
}

func (h *Handler) calculateDistance(w http.ResponseWriter, r *http.Request) {
	var req distanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if strings.TrimSpace(req.RestaurantAddress) == "" || strings.TrimSpace(req.DeliveryAddress) == "" {
		writeError(w, http.StatusBadRequest, "restaurant_address and delivery_address are required")
		return
	}

	report, err := h.service.CalculateDistance(r.Context(), req.RestaurantAddress, req.DeliveryAddress)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  report,
	})
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var req predictor.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if strings.TrimSpace(req.RestaurantAddress) == "" || strings.TrimSpace(req.DeliveryAddress) == "" {
		writeError(w, http.StatusBadRequest, "restaurant_address and delivery_address are required")
		return
	}

	result, err := h.service.Predict(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"prediction": result,
	})
}

// writeServiceError maps pipeline errors onto HTTP statuses. Anything not
// recognised is a 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var unknownCategory *features.UnknownCategoryError
	switch {
	case errors.Is(err, ml.ErrModelUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, geo.ErrAddressNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, predictor.ErrInvalidOrderHour):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unknownCategory):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[api] internal error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
