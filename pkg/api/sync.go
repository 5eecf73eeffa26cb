package api

import "encoding/json"

// FormRequest is the body for form create/update calls
type FormRequest struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// FormResponse is the server acknowledgment for a form mutation
type FormResponse struct {
	ID       string `json:"id"`
	ServerID string `json:"server_id,omitempty"`
}

// AttachmentMeta is the metadata part of a multipart attachment upload
type AttachmentMeta struct {
	ID          string `json:"id"`
	FormID      string `json:"form_id,omitempty"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// AttachmentResponse is the server acknowledgment for an attachment upload
type AttachmentResponse struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// SettingsRequest is the body for the settings update call
type SettingsRequest struct {
	Data json.RawMessage `json:"data"`
}

// HealthResponse is the body of the health probe endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the error body returned by the server on non-2xx statuses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
