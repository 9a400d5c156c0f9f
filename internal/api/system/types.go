package system

// StatusResponse is returned by the liveness and readiness probes
type StatusResponse struct {
	Status string `json:"status"`
}
