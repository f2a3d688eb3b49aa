package jsonmodels

// InfoResponse holds the response of the GET request to /info.
type InfoResponse struct {
	// name of the node software
	AppName string `json:"appName"`
	// version of the node software
	Version string `json:"version"`
	// unix timestamp of the node start
	StartedAt int64 `json:"startedAt"`
	// uptime of the node in milliseconds
	Uptime int64 `json:"uptime"`
	// number of operations executed during the last second
	OperationsPerSecond uint64 `json:"operationsPerSecond"`
	// counters of the operations by name
	Operations map[string]OperationInfo `json:"operations"`
}

// OperationInfo contains the counters of a single kind of operation.
type OperationInfo struct {
	Executed uint64 `json:"executed"`
	Failed   uint64 `json:"failed"`
	// average duration in nanoseconds
	AverageDuration int64 `json:"averageDuration"`
}
