package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ospolov/fieldsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the remote calls the sync engine replays queued
// mutations against, plus the health probe used by the network monitor
type ClientAPI interface {
	// CreateForm submits a new form record
	CreateForm(ctx context.Context, accessToken string, req api.FormRequest) (*api.FormResponse, error)

	// UpdateForm replaces an existing form record
	UpdateForm(ctx context.Context, accessToken, id string, req api.FormRequest) (*api.FormResponse, error)

	// DeleteForm removes a form record
	DeleteForm(ctx context.Context, accessToken, id string) error

	// UploadAttachment submits a binary attachment with its metadata
	// as a multipart request
	UploadAttachment(ctx context.Context, accessToken string, meta api.AttachmentMeta, blob []byte) (*api.AttachmentResponse, error)

	// DeleteAttachment removes an attachment
	DeleteAttachment(ctx context.Context, accessToken, id string) error

	// SaveSettings replaces the user settings document
	SaveSettings(ctx context.Context, accessToken string, req api.SettingsRequest) error

	// Health probes server reachability
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// Client is the HTTP implementation of ClientAPI
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// CreateForm submits a new form record
func (c *Client) CreateForm(ctx context.Context, accessToken string, req api.FormRequest) (*api.FormResponse, error) {
	var resp api.FormResponse
	err := c.doRequest(ctx, "POST", "/api/v1/forms", accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create form request failed: %w", err)
	}
	return &resp, nil
}

// UpdateForm replaces an existing form record
func (c *Client) UpdateForm(ctx context.Context, accessToken, id string, req api.FormRequest) (*api.FormResponse, error) {
	var resp api.FormResponse
	url := fmt.Sprintf("/api/v1/forms/%s", id)
	err := c.doRequest(ctx, "PUT", url, accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update form request failed: %w", err)
	}
	return &resp, nil
}

// DeleteForm removes a form record
func (c *Client) DeleteForm(ctx context.Context, accessToken, id string) error {
	url := fmt.Sprintf("/api/v1/forms/%s", id)
	if err := c.doRequest(ctx, "DELETE", url, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete form request failed: %w", err)
	}
	return nil
}

// UploadAttachment submits a binary attachment as a multipart request:
// a "metadata" JSON part followed by a "file" part with the raw bytes
func (c *Client) UploadAttachment(ctx context.Context, accessToken string, meta api.AttachmentMeta, blob []byte) (*api.AttachmentResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachment metadata: %w", err)
	}
	if err := writer.WriteField("metadata", string(metaJSON)); err != nil {
		return nil, fmt.Errorf("failed to write metadata part: %w", err)
	}

	part, err := writer.CreateFormFile("file", meta.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(blob); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/attachments", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+accessToken)

	respBody, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("upload attachment request failed: %w", err)
	}

	var resp api.AttachmentResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &resp, nil
}

// DeleteAttachment removes an attachment
func (c *Client) DeleteAttachment(ctx context.Context, accessToken, id string) error {
	url := fmt.Sprintf("/api/v1/attachments/%s", id)
	if err := c.doRequest(ctx, "DELETE", url, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete attachment request failed: %w", err)
	}
	return nil
}

// SaveSettings replaces the user settings document
func (c *Client) SaveSettings(ctx context.Context, accessToken string, req api.SettingsRequest) error {
	if err := c.doRequest(ctx, "PUT", "/api/v1/settings", accessToken, req, nil); err != nil {
		return fmt.Errorf("save settings request failed: %w", err)
	}
	return nil
}

// Health probes server reachability
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	err := c.doRequest(ctx, "GET", "/api/v1/health", "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs a JSON HTTP request
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	respBody, err := c.do(req)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// do executes a prepared request and returns the response body,
// turning non-2xx statuses into errors
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
