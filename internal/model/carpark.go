package model

// Carpark is the unified record for a single HDB carpark: static
// reference data (location, address, type) merged with the latest
// live availability reading.
type Carpark struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Type      string  `json:"type"`
	Available int     `json:"available"`

	// Distance from the observer in kilometers. Only meaningful on
	// slices returned by the ranking engine; zero otherwise.
	Distance float64 `json:"distance,omitempty"`
}

// AvailabilityBand buckets the lot count the way the map legend does.
func (c Carpark) AvailabilityBand() string {
	switch {
	case c.Available > 50:
		return "high"
	case c.Available > 0:
		return "low"
	default:
		return "full"
	}
}
