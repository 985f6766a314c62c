package responses

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string          `json:"status" example:"ok"`
	Version string          `json:"version"`
	Flags   map[string]bool `json:"flags"`
}
