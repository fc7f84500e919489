package recognition

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/labflow/reagent-inventory/pkg/logger"
)

// ErrEmptyImage is returned before any network call when no image bytes
// were supplied.
var ErrEmptyImage = errors.New("no image supplied")

// LabelGuess is the structured, best-effort output of the recognition
// service. It is advisory only and never written to the store directly.
type LabelGuess struct {
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	IsStock   bool   `json:"is_stock"`
	Remaining int    `json:"remaining"`
}

// Recognizer converts a reagent label image into a structured guess.
type Recognizer interface {
	Recognize(ctx context.Context, filename string, image []byte) (*LabelGuess, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client calls the label-recognition service over HTTP.
type Client struct {
	client *resty.Client
}

// NewClient creates a recognition client. The timeout bounds the whole
// round trip; the upstream service gives no latency guarantee.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetTransport(otelhttp.NewTransport(http.DefaultTransport)),
	}
}

// Recognize uploads the image as a multipart form and decodes the guess.
// Any transport error, timeout or non-200 response is a recognition
// failure; callers treat all of them the same.
func (c *Client) Recognize(ctx context.Context, filename string, image []byte) (*LabelGuess, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}

	guess := &LabelGuess{}
	errBody := &errorResponse{}

	res, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(image)).
		SetResult(guess).
		SetError(errBody).
		Post("/api/recognize")
	if err != nil {
		return nil, fmt.Errorf("recognition request failed: %w", err)
	}

	if res.StatusCode() != http.StatusOK {
		logger.Warn(ctx).
			Int("status", res.StatusCode()).
			Str("error", errBody.Error).
			Msg("Recognition service rejected image")
		if errBody.Error != "" {
			return nil, fmt.Errorf("recognition failed: %s", errBody.Error)
		}
		return nil, fmt.Errorf("recognition failed: status %d", res.StatusCode())
	}

	if guess.Name == "" {
		return nil, fmt.Errorf("recognition returned an empty guess")
	}

	return guess, nil
}
