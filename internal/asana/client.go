package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultAPIURL is the public Asana REST API base.
const DefaultAPIURL = "https://app.asana.com/api/1.0"

// Client provides access to the Asana REST API.
type Client struct {
	token   string
	apiURL  string
	httpCli *http.Client
}

// NewClient creates an Asana client with the given personal access
// token. An empty apiURL selects the public API; timeout bounds each
// request.
func NewClient(token, apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		token:   token,
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: &http.Client{Timeout: timeout},
	}
}

type storyData struct {
	Text string `json:"text"`
}

type storyRequest struct {
	Data storyData `json:"data"`
}

// AddComment posts a comment story to the given task. A nil return
// means Asana accepted the story.
func (c *Client) AddComment(ctx context.Context, taskID, text string) error {
	payload, err := json.Marshal(storyRequest{Data: storyData{Text: text}})
	if err != nil {
		return fmt.Errorf("marshaling story: %w", err)
	}

	url := fmt.Sprintf("%s/tasks/%s/stories", c.apiURL, taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransientError{Err: fmt.Errorf("reading response: %w", err)}
	}

	return classify(resp.StatusCode, taskID, body)
}

// GetTaskName fetches the task's display name for summary output.
// Errors are classified the same way as AddComment; callers treat them
// as non-fatal.
func (c *Client) GetTaskName(ctx context.Context, taskID string) (string, error) {
	url := fmt.Sprintf("%s/tasks/%s?opt_fields=name", c.apiURL, taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", &TransientError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransientError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if err := classify(resp.StatusCode, taskID, body); err != nil {
		return "", err
	}
	return gjson.GetBytes(body, "data.name").String(), nil
}

// classify converts a non-2xx status into the matching typed error.
func classify(status int, taskID string, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthError{StatusCode: status, Message: errorMessage(body)}
	case status == http.StatusNotFound:
		return &NotFoundError{TaskID: taskID}
	case status == http.StatusTooManyRequests || status >= 500:
		return &TransientError{StatusCode: status, Message: errorMessage(body)}
	default:
		return &APIError{StatusCode: status, Message: errorMessage(body)}
	}
}
