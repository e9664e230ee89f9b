package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/tasksync/pkg/api"
)

// DefaultTimeout is used when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для вызова удаленных процедур сервера.
// Каждая процедура вызывается как POST <baseURL>/api/<method>.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент. timeout <= 0 means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// WithHTTPClient sets a custom http.Client (for testing or custom transports).
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// Invoke calls a remote procedure with form encoded parameters and returns
// the raw JSON result.
func (c *Client) Invoke(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	body := strings.NewReader(params.Values().Encode())
	return c.doRequest(ctx, method, body, "application/x-www-form-urlencoded")
}

// Post calls a remote procedure with a binary payload sent as the
// "picture" part of a multipart form.
func (c *Client) Post(ctx context.Context, method string, payload []byte, params Params) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, values := range params.Values() {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to write field: %w", err)}
			}
		}
	}

	part, err := writer.CreateFormFile(api.ParamPicture, "image.jpg")
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to create form file: %w", err)}
	}
	if _, err := part.Write(payload); err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to write payload: %w", err)}
	}
	if err := writer.Close(); err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to close multipart writer: %w", err)}
	}

	return c.doRequest(ctx, method, &buf, writer.FormDataContentType())
}

// doRequest выполняет HTTP запрос и классифицирует ошибки
func (c *Client) doRequest(ctx context.Context, method string, body io.Reader, contentType string) (json.RawMessage, error) {
	url := c.baseURL + "/api/" + method

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// 5xx - временная ошибка сервера, повторим позже
	if resp.StatusCode >= 500 {
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("server error: %s", resp.Status)}
	}

	var status api.ErrorResponse
	if err := json.Unmarshal(respBody, &status); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &ServiceError{Method: method, Message: resp.Status}
		}
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if status.Status == api.StatusError || resp.StatusCode >= 400 {
		message := status.Message
		if message == "" {
			message = resp.Status
		}
		return nil, &ServiceError{Method: method, Message: message}
	}

	return json.RawMessage(respBody), nil
}
