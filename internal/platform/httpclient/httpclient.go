// Package httpclient es el cliente JSON de la API (lo usa carectl).
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout = 10 * time.Second

	debugUserHeader = "X-Debug-User-ID"
)

type Config struct {
	BaseURL string
	Timeout time.Duration

	// Identidad: Token (Bearer) en producción, UserID solo contra un server en modo dev.
	Token  string
	UserID string

	// Reintentos ante error de red o 503 (solo métodos idempotentes).
	RetryCount int
	RetryWait  time.Duration
}

// Client envuelve *resty.Client con helpers comunes.
type Client struct {
	rc *resty.Client
}

func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("httpclient: base url required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	wait := cfg.RetryWait
	if wait <= 0 {
		wait = 200 * time.Millisecond
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(5 * wait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil {
				return err != nil
			}
			if !idempotent(r.Request.Method) {
				return false
			}
			return err != nil || r.StatusCode() == http.StatusServiceUnavailable
		})

	if t := strings.TrimSpace(cfg.Token); t != "" {
		rc.SetAuthToken(t)
	} else if uid := strings.TrimSpace(cfg.UserID); uid != "" {
		rc.SetHeader(debugUserHeader, uid)
	}

	return &Client{rc: rc}, nil
}

// HTTPError representa una respuesta no-2xx. Kind/Message vienen del body de error de la API.
type HTTPError struct {
	StatusCode int
	Kind       string
	Message    string
	Fields     map[string]string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		msg := fmt.Sprintf("http error: status=%d kind=%s message=%s", e.StatusCode, e.Kind, e.Message)
		for k, v := range e.Fields {
			msg += fmt.Sprintf(" [%s: %s]", k, v)
		}
		return msg
	}
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// DoJSON hace un request JSON.
// - path: relativo a BaseURL
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
// Retorna *HTTPError si status no es 2xx.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.rc == nil {
		return errors.New("httpclient: nil client")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("httpclient: empty path")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req := c.rc.R().SetContext(ctx)
	if in != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(in)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}

	raw := resp.Body()
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return newHTTPError(resp.StatusCode(), raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func newHTTPError(status int, raw []byte) *HTTPError {
	e := &HTTPError{StatusCode: status, Body: strings.TrimSpace(string(raw))}

	var body struct {
		Error struct {
			Kind    string            `json:"kind"`
			Message string            `json:"message"`
			Fields  map[string]string `json:"fields"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		e.Kind = body.Error.Kind
		e.Message = body.Error.Message
		e.Fields = body.Error.Fields
	}
	return e
}

func idempotent(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return true
	}
	return false
}
