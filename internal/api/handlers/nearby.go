package handlers

import (
	"net/http"
	"strconv"

	"github.com/skinaid/skinaid-web/internal/metrics"
	"github.com/skinaid/skinaid-web/internal/places"
)

type NearbyHandler struct {
	placesClient *places.Client
	apiKey       string
	collector    *metrics.Collector
}

func NewNearbyHandler(placesClient *places.Client, apiKey string, collector *metrics.Collector) *NearbyHandler {
	return &NearbyHandler{
		placesClient: placesClient,
		apiKey:       apiKey,
		collector:    collector,
	}
}

// Dermatologists looks up nearby dermatologists for the given coordinates.
// Upstream trouble degrades to the static listing; the only client-visible
// failures are missing/garbled coordinates and a missing API key.
func (h *NearbyHandler) Dermatologists(w http.ResponseWriter, r *http.Request) {
	latParam := r.URL.Query().Get("lat")
	lngParam := r.URL.Query().Get("lng")
	if latParam == "" || lngParam == "" {
		respondError(w, http.StatusBadRequest, "Latitude and Longitude are required.")
		return
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Latitude and Longitude must be numbers.")
		return
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Latitude and Longitude must be numbers.")
		return
	}

	if h.apiKey == "" {
		respondError(w, http.StatusInternalServerError, "Server configuration error.")
		return
	}

	listings, fromFallback := h.placesClient.FindNearby(r.Context(), lat, lng)
	if fromFallback && h.collector != nil {
		h.collector.RecordPlacesFallback()
	}

	respondJSON(w, http.StatusOK, listings)
}
