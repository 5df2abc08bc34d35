package logging

// Structured log keys used across the service and CLI.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldURL        = "url"
	FieldMatchSlug  = "match_slug"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)
