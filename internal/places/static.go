package places

import "math"

// staticListings is the curated Dombivli fallback shown whenever the live
// lookup fails or comes back empty. Distances are relative to the clinics'
// home area, not the caller's coordinates.
var staticListings = []Dermatologist{
	{
		ID:          "static_1",
		Name:        "Dr. Pooja's Skin Care Clinic",
		Address:     "Manpada Road, Dombivli East, Maharashtra",
		Rating:      4.7,
		ReviewCount: 132,
		MapURL:      "https://www.google.com/maps/search/?api=1&query=Dr+Pooja's+Skin+Care+Clinic+Dombivli+East",
		DistanceKm:  1.2,
	},
	{
		ID:          "static_2",
		Name:        "Dr. Pradeep Kumavat Skin & Hair Clinic",
		Address:     "Opp. Pendharkar College, Dombivli East, Maharashtra",
		Rating:      4.8,
		ReviewCount: 245,
		MapURL:      "https://www.google.com/maps/search/?api=1&query=Dr+Pradeep+Kumavat+Skin+and+Hair+Clinic+Dombivli",
		DistanceKm:  1.9,
	},
	{
		ID:          "static_3",
		Name:        "Dr. Nilesh Mahajan Skin Clinic",
		Address:     "Tilak Nagar, Dombivli East, Maharashtra",
		Rating:      4.6,
		ReviewCount: 98,
		MapURL:      "https://www.google.com/maps/search/?api=1&query=Dr+Nilesh+Mahajan+Skin+Clinic+Dombivli+East",
		DistanceKm:  2.5,
	},
	{
		ID:          "static_4",
		Name:        "Derma Bliss Skin & Laser Clinic",
		Address:     "Kalyan Shil Road, Dombivli East, Maharashtra",
		Rating:      4.9,
		ReviewCount: 152,
		MapURL:      "https://www.google.com/maps/search/?api=1&query=Derma+Bliss+Skin+and+Laser+Clinic+Dombivli+East",
		DistanceKm:  3.0,
	},
	{
		ID:          "static_5",
		Name:        "Dr. Sheetal's Skin & Hair Clinic",
		Address:     "Lodha Palava, Dombivli East, Maharashtra",
		Rating:      4.7,
		ReviewCount: 87,
		MapURL:      "https://www.google.com/maps/search/?api=1&query=Dr+Sheetal's+Skin+and+Hair+Clinic+Palava+Dombivli",
		DistanceKm:  4.5,
	},
}

// StaticListings returns a copy of the fallback table so callers cannot
// mutate the shared slice.
func StaticListings() []Dermatologist {
	out := make([]Dermatologist, len(staticListings))
	copy(out, staticListings)
	return out
}

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two coordinate pairs.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
