package repo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client wraps the repository's HTTP API. Every method maps to exactly one
// endpoint; callers decide what to do with failures via the APIError
// taxonomy in errors.go.
type Client struct {
	// BaseURL is the repository root, without a trailing slash.
	BaseURL string
	// Token is sent as a bearer token when non-empty.
	Token string
	// HTTP is the underlying client.
	HTTP *http.Client

	log zerolog.Logger
}

// NewClient creates a repository client for the given base URL.
func NewClient(baseURL, token string, log zerolog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("component", "repo").Logger(),
	}
}

// GetModel fetches one versioned model by its wire identifier.
func (c *Client) GetModel(id string) (ModelInfo, error) {
	var info ModelInfo
	err := c.do(http.MethodGet, "/api/v1/models/"+id, nil, "", &info)
	return info, err
}

// GetModelContent fetches the raw DSL content of a model.
func (c *Client) GetModelContent(id string) (string, error) {
	raw, err := c.doRaw(http.MethodGet, "/api/v1/models/"+id+"/file", nil, "")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SaveModel replaces the model's DSL content. An invalid result is not an
// error; the server reports findings through ValidationResult.
func (c *Client) SaveModel(id, content string, typ ModelType) (ValidationResult, error) {
	body := map[string]any{"contentDsl": content, "type": typ}
	var result ValidationResult
	err := c.do(http.MethodPut, "/rest/models/"+id, body, "", &result)
	return result, err
}

// DeleteModel removes the model from the repository.
func (c *Client) DeleteModel(id string) error {
	return c.do(http.MethodDelete, "/rest/models/"+id, nil, "", nil)
}

// CreateVersion creates a new version of the model. A 409 means the target
// already exists.
func (c *Client) CreateVersion(id, version string) (ModelInfo, error) {
	var info ModelInfo
	err := c.do(http.MethodPost, "/rest/models/"+id+"/versions/"+version, nil, "", &info)
	return info, err
}

// GetDefaultNamespace returns the caller's default namespace used to prefill
// the refactor dialog.
func (c *Client) GetDefaultNamespace(id string) (string, error) {
	var resp struct {
		Namespace string `json:"namespace"`
	}
	err := c.do(http.MethodGet, "/rest/models/refactorings/"+id, nil, "", &resp)
	return resp.Namespace, err
}

// Refactor renames the model to newID, given as "namespace:name:version".
func (c *Client) Refactor(id, newID string) (ModelInfo, error) {
	var info ModelInfo
	err := c.do(http.MethodPut, "/rest/models/refactorings/"+id+"/"+newID, nil, "", &info)
	return info, err
}

// MakePublic publishes the model to the official namespace.
func (c *Client) MakePublic(id string) error {
	return c.do(http.MethodPost, "/rest/models/"+id+"/makePublic", nil, "", nil)
}

// GetPolicy returns the caller's effective permission on the model.
func (c *Client) GetPolicy(id string) (string, error) {
	var resp struct {
		Permission string `json:"permission"`
	}
	err := c.do(http.MethodGet, "/rest/models/"+id+"/policy", nil, "", &resp)
	return resp.Permission, err
}

// GetPolicies returns the full policy list of the model. Only privileged
// callers can read it.
func (c *Client) GetPolicies(id string) ([]Policy, error) {
	var policies []Policy
	err := c.do(http.MethodGet, "/rest/models/"+id+"/policies", nil, "", &policies)
	return policies, err
}

// GetAttachments lists the files attached to the model.
func (c *Client) GetAttachments(id string) ([]Attachment, error) {
	var resp struct {
		Attachments []Attachment `json:"attachments"`
	}
	err := c.do(http.MethodGet, "/api/v1/attachments/"+id, nil, "", &resp)
	return resp.Attachments, err
}

// UploadAttachment uploads one file as a multipart request.
func (c *Client) UploadAttachment(id, filename string, r io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", url.PathEscape(filename))
	if err != nil {
		return UploadResult{}, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return UploadResult{}, fmt.Errorf("read attachment: %w", err)
	}
	if err := w.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("close multipart: %w", err)
	}
	var result UploadResult
	err = c.doReader(http.MethodPut, "/api/v1/attachments/"+id, &buf, w.FormDataContentType(), &result)
	return result, err
}

// DeleteAttachment removes one attached file by name.
func (c *Client) DeleteAttachment(id, filename string) error {
	return c.do(http.MethodDelete, "/api/v1/attachments/"+id+"/files/"+url.PathEscape(filename), nil, "", nil)
}

// GetWorkflowActions lists the transition names legal from the model's
// current state.
func (c *Client) GetWorkflowActions(id string) ([]string, error) {
	var actions []string
	err := c.do(http.MethodGet, "/rest/workflows/"+id+"/actions", nil, "", &actions)
	return actions, err
}

// GetWorkflowModel returns the full workflow descriptor of the model.
func (c *Client) GetWorkflowModel(id string) (WorkflowModel, error) {
	var wf WorkflowModel
	err := c.do(http.MethodGet, "/rest/workflows/"+id, nil, "", &wf)
	return wf, err
}

// TransitionWorkflow applies one named workflow action.
func (c *Client) TransitionWorkflow(id, action string) (WorkflowResponse, error) {
	var resp WorkflowResponse
	err := c.do(http.MethodPut, "/rest/workflows/"+id+"/actions/"+action, nil, "", &resp)
	return resp, err
}

// GetComments lists the comments on a model.
func (c *Client) GetComments(id string) ([]Comment, error) {
	var comments []Comment
	err := c.do(http.MethodGet, "/rest/comments/"+id, nil, "", &comments)
	return comments, err
}

// PostComment adds a comment to a model.
func (c *Client) PostComment(comment Comment) error {
	return c.do(http.MethodPost, "/rest/comments", comment, "", nil)
}

// GetGenerators fetches the platform generator catalog.
func (c *Client) GetGenerators() ([]Generator, error) {
	var gens []Generator
	err := c.do(http.MethodGet, "/api/v1/generators", nil, "", &gens)
	return gens, err
}

// Search runs a scoped model query.
func (c *Client) Search(expression string) ([]ModelInfo, error) {
	var results []ModelInfo
	err := c.do(http.MethodGet, "/api/v1/search/models?expression="+url.QueryEscape(expression), nil, "", &results)
	return results, err
}

// do sends a JSON request. body may be nil; out may be nil when the caller
// only cares about success.
func (c *Client) do(method, path string, body any, contentType string, out any) error {
	var r io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		r = bytes.NewReader(payload)
		if contentType == "" {
			contentType = "application/json"
		}
	}
	return c.doReader(method, path, r, contentType, out)
}

func (c *Client) doReader(method, path string, body io.Reader, contentType string, out any) error {
	raw, err := c.doRaw(method, path, body, contentType)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) doRaw(method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Error().Str("req_id", reqID).Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.log.Debug().
		Str("req_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFrom(resp.StatusCode, raw)
	}
	return raw, nil
}

// apiErrorFrom builds an APIError, pulling message and validation issues out
// of the server's JSON error body when present.
func apiErrorFrom(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}
	var payload struct {
		Message          string            `json:"message"`
		ErrorMessage     string            `json:"errorMessage"`
		ValidationIssues []ValidationIssue `json:"validationIssues"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.ErrorMessage
		}
		apiErr.Issues = payload.ValidationIssues
	}
	if apiErr.Message == "" && len(raw) > 0 {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
