package transmit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const setContentType = "application/secevent+jwt"

// Result is the transmission outcome returned to the host framework
// unmodified.
type Result struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
	Retryable  bool   `json:"retryable"`
}

// Transmitter delivers signed SETs to receiver endpoints.
type Transmitter struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTransmitter(httpClient *http.Client, logger *zap.Logger) *Transmitter {
	return &Transmitter{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Transmit POSTs the signed token to the receiver. A non-2xx response is
// surfaced as an error carrying the HTTP status in its message, which the
// error classifier later inspects for retryability.
func (t *Transmitter) Transmit(ctx context.Context, url, token, authorization, userAgent string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create transmission request: %w", err)
	}

	req.Header.Set("Content-Type", setContentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to transmit SET: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read receiver response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("SET transmission failed with status %d: %s", resp.StatusCode, string(body))
	}

	t.logger.Info("SET accepted by receiver", zap.String("url", url), zap.Int("statusCode", resp.StatusCode))

	return &Result{
		Status:     "success",
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Retryable:  false,
	}, nil
}
