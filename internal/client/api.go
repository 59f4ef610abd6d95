// Package client is a terminal rendition of the portfolio's two browser views.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/api/types"
	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/pkg/logger"
)

const maxResponseBody = 4 << 20

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

// APIService talks to the portfolio HTTP API.
type APIService struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &APIService{baseURL: strings.TrimRight(baseURL, "/"), httpClient: client}
}

// ListProjects performs GET /api/projects.
func (a *APIService) ListProjects(ctx context.Context) ([]models.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	body, err := a.do(req)
	if err != nil {
		return nil, err
	}
	var out []models.Project
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return out, nil
}

// SendContact performs POST /api/contact.
func (a *APIService) SendContact(ctx context.Context, form types.ContactRequest) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/contact", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	_, err = a.do(req)
	return err
}

func (a *APIService) do(req *http.Request) ([]byte, error) {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	logger.L().Debug("api call",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
	)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		var e types.ErrorResponse
		if json.Unmarshal(body, &e) == nil {
			se.Message = e.Error
		}
		return nil, se
	}
	return body, nil
}
