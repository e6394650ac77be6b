package tracing

// Context identifies a single request as it moves through the API.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
