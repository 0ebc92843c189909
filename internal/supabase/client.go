// Package supabase содержит клиент hosted-бэкенда (REST, Storage, Auth).
// Клиент создаётся один раз при старте и передаётся в репозитории явно.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client один на процесс, создаётся в main и передаётся явно.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient создаёт клиент. httpClient может быть nil, тогда используется http.DefaultClient.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// BaseURL returns the project URL without trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Error: неуспешный ответ бэкенда. Payload хранится как есть и отдаётся клиенту без изменений.
type Error struct {
	Status  int
	Payload json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase: status %d: %s", e.Status, string(e.Payload))
}

// Request описывает один вызов к бэкенду.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
	// Token заменяет ключ сервиса в Authorization (например, токен пользователя для /auth/v1/user).
	Token string
}

// Do выполняет запрос и декодирует JSON-ответ в out (если out != nil).
// Ответы со статусом >= 400 возвращаются как *Error.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	token := req.Token
	if token == "" {
		token = c.apiKey
	}
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{Status: resp.StatusCode, Payload: payloadOf(data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// payloadOf гарантирует валидный JSON: не-JSON тело заворачивается в {"message": ...}.
func payloadOf(data []byte) json.RawMessage {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && json.Valid(data) {
		return json.RawMessage(data)
	}
	b, _ := json.Marshal(map[string]string{"message": string(data)})
	return b
}
