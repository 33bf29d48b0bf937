package domain

// ErrorOutput is the NDJSON form of a failed command
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"` // e.g. NO_VIEWER, MANUAL_NOT_FOUND
	Message       string `json:"message"`
	Hint          string `json:"hint,omitempty"`
}

// NewErrorOutput creates an error object; the output package sets SchemaVersion.
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}
