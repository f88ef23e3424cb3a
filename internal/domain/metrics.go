package domain

// GatewayMetrics is an aggregate health snapshot for the ops endpoint.
type GatewayMetrics struct {
	TotalRequests  int64   `json:"totalRequests"`
	ErrorRate      float64 `json:"errorRate"`
	FallbackRate   float64 `json:"fallbackRate"`
	GuardRedirects int64   `json:"guardRedirects"`
	Period         string  `json:"period"`
}
