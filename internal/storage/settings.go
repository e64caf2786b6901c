package storage

// Settings are the global pricing settings.
type Settings struct {
	SGA float64 `json:"sga"`
}
