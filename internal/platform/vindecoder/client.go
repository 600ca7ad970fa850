package vindecoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrCircuitOpen signals the breaker is open after repeated rate/limit errors.
	ErrCircuitOpen = errors.New("vin decoder circuit open due to repeated rate/limit errors")
)

// HTTPClient matches net/http.Client Do signature for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Decoded holds the vehicle attributes extracted from a VIN.
type Decoded struct {
	Year  int
	Make  string
	Model string
	Trim  string
}

// Client wraps the NHTSA vPIC decode endpoint with retry and circuit breaker
// support.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	mock       bool

	maxRetries       int
	breakerThreshold int
	consecutiveLimit int
}

// Config defines settings for the VIN decoder client.
type Config struct {
	BaseURL    string
	Mock       bool
	MaxRetries int
	BreakerMax int
}

// New creates a VIN decoder client.
func New(httpClient HTTPClient, cfg Config) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	base := cfg.BaseURL
	if base == "" {
		base = "https://vpic.nhtsa.dot.gov/api/vehicles/DecodeVinValues"
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	breaker := cfg.BreakerMax
	if breaker <= 0 {
		breaker = 5
	}

	return &Client{
		baseURL:          base,
		httpClient:       httpClient,
		mock:             cfg.Mock,
		maxRetries:       maxRetries,
		breakerThreshold: breaker,
	}
}

// DecodeVIN calls vPIC (or mock) to resolve year/make/model/trim for a VIN.
func (c *Client) DecodeVIN(ctx context.Context, vin string) (Decoded, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if vin == "" {
		return Decoded{}, errors.New("vin is required")
	}

	if c.mock {
		return Decoded{Year: 2020, Make: "MOCK", Model: "Decoder", Trim: "LX"}, nil
	}

	if c.consecutiveLimit >= c.breakerThreshold {
		return Decoded{}, ErrCircuitOpen
	}

	endpoint := fmt.Sprintf("%s/%s?format=json", c.baseURL, vin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Decoded{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt == c.maxRetries-1 {
				return Decoded{}, fmt.Errorf("request: %w", err)
			}
			continue
		}

		if resp.StatusCode == http.StatusOK {
			c.consecutiveLimit = 0
			decoded, err := decodeVPICResponse(resp.Body)
			resp.Body.Close()
			return decoded, err
		}

		if resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			c.consecutiveLimit++
			if c.consecutiveLimit >= c.breakerThreshold {
				return Decoded{}, ErrCircuitOpen
			}
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if attempt == c.maxRetries-1 {
			return Decoded{}, fmt.Errorf("vpic status %d: %s", resp.StatusCode, string(body))
		}
	}

	return Decoded{}, fmt.Errorf("vin decode failed after retries")
}

type vpicResult struct {
	Make      string `json:"Make"`
	Model     string `json:"Model"`
	ModelYear string `json:"ModelYear"`
	Trim      string `json:"Trim"`
	ErrorCode string `json:"ErrorCode"`
}

type vpicResponse struct {
	Results []vpicResult `json:"Results"`
}

func decodeVPICResponse(body io.Reader) (Decoded, error) {
	var parsed vpicResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return Decoded{}, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return Decoded{}, errors.New("vpic: no results returned")
	}
	first := parsed.Results[0]
	year, _ := strconv.Atoi(first.ModelYear)
	return Decoded{
		Year:  year,
		Make:  first.Make,
		Model: first.Model,
		Trim:  first.Trim,
	}, nil
}
