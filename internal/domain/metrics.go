package domain

// GatewayMetrics is the snapshot returned by GET /v1/metrics/gateway.
type GatewayMetrics struct {
	BoletosIssued int64   `json:"boletos_issued"`
	TotalRequests int64   `json:"total_requests"`
	ErrorRate     float64 `json:"error_rate"`
	CacheHitRate  float64 `json:"cache_hit_rate"`
	Period        string  `json:"period"`
}
