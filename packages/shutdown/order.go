package shutdown

const (
	// PriorityMetrics is the shutdown priority of the metrics plugin.
	PriorityMetrics = iota
	// PriorityPrometheus is the shutdown priority of the prometheus exporter.
	PriorityPrometheus
	// PriorityTernary is the shutdown priority of the ternary operation endpoints.
	PriorityTernary
	// PriorityWebAPI is the shutdown priority of the web API server.
	PriorityWebAPI
	// PriorityHealthz is the shutdown priority of the health endpoint.
	PriorityHealthz
)
