// Package places wraps the Google Places nearby-search API for dermatologist
// lookups. Upstream failure never reaches the caller: any transport error,
// non-200 status or empty result set falls back to a static listing.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

const (
	defaultEndpoint = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	searchRadiusM   = 10000
	placeType       = "dermatologist"
)

// Dermatologist is one listing returned to the client. It is derived
// per-request and never persisted. Field names follow the original API
// payload the frontend already consumes.
type Dermatologist struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	MapURL      string  `json:"map_url"`
	DistanceKm  float64 `json:"distance"`
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string // swappable for tests
}

func NewClient(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
	}
}

type nearbyResponse struct {
	Results []struct {
		PlaceID          string  `json:"place_id"`
		Name             string  `json:"name"`
		Vicinity         string  `json:"vicinity"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
	} `json:"results"`
}

// FindNearby searches for dermatologists within a fixed radius of the given
// coordinates and reports whether the static fallback was used. Live results
// carry DistanceKm 0: the upstream payload has no distance field and the
// per-result haversine pass was never hooked up, so the gap stands rather
// than being silently changed.
func (c *Client) FindNearby(ctx context.Context, lat, lng float64) ([]Dermatologist, bool) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		log.Printf("ERROR [places.FindNearby] bad endpoint: %v", err)
		return StaticListings(), true
	}

	q := reqURL.Query()
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%d", searchRadiusM))
	q.Set("type", placeType)
	q.Set("key", c.apiKey)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		log.Printf("ERROR [places.FindNearby] failed to build request: %v", err)
		return StaticListings(), true
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("ERROR [places.FindNearby] upstream call failed, using static data: %v", err)
		return StaticListings(), true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("ERROR [places.FindNearby] upstream returned status %d, using static data", resp.StatusCode)
		return StaticListings(), true
	}

	var payload nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("ERROR [places.FindNearby] failed to decode upstream response: %v", err)
		return StaticListings(), true
	}

	if len(payload.Results) == 0 {
		log.Printf("WARN [places.FindNearby] no nearby dermatologists found, using static data")
		return StaticListings(), true
	}

	listings := make([]Dermatologist, 0, len(payload.Results))
	for _, place := range payload.Results {
		address := place.Vicinity
		if address == "" {
			address = "Address not available"
		}
		listings = append(listings, Dermatologist{
			ID:          place.PlaceID,
			Name:        place.Name,
			Address:     address,
			Rating:      place.Rating,
			ReviewCount: place.UserRatingsTotal,
			MapURL: fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s&query_place_id=%s",
				url.QueryEscape(place.Name), place.PlaceID),
		})
	}
	return listings, false
}

// WithEndpoint overrides the upstream URL. Test hook.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}
