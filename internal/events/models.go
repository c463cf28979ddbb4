package events

// CalculationEvent is emitted after a plan was sized.
type CalculationEvent struct {
	Rooms           int     `json:"rooms"`
	Appliances      int     `json:"appliances"`
	InstalledVA     float64 `json:"installed_va"`
	DemandedVA      float64 `json:"demanded_va"`
	MainBreakerA    int     `json:"main_breaker_a"`
	MainOverCatalog bool    `json:"main_over_catalog"`
	RequestID       string  `json:"request_id,omitempty"`
}

// ExportEvent is emitted after a report was rendered.
type ExportEvent struct {
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
	RequestID string `json:"request_id,omitempty"`
}
