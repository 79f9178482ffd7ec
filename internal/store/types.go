package store

import "time"

// LoadStatus describes the most recent data load. Degraded means the
// live feed could not be used so every carpark shows 0 available lots;
// the condition is user-visible through Message, never fatal.
type LoadStatus struct {
	LoadedAt    time.Time `json:"loaded_at"`
	StaticCount int       `json:"static_count"`
	LiveRecords int       `json:"live_records"`
	Degraded    bool      `json:"degraded"`
	Message     string    `json:"message"`
}
