// Package eurostar speaks to the Eurostar booking API: one round-trip
// search query per candidate date pair, plus the station region listing.
package eurostar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/railscout/railscout/pkg/journey"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL = "https://api.prod.eurostar.com/bpa"

	searchLocation  = "train-search/uk-en"
	regionsLocation = "hotels-search/regions/uk-en"

	apiKeyHeader = "x-apikey"
	dateFormat   = "2006-01-02"
)

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	// MaxRetries bounds the backoff retry loop for 5xx and network
	// failures. 4xx responses are never retried.
	MaxRetries uint64
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		MaxRetries: 3,
	}
}

// FetchLegs queries the search endpoint for one (outbound date, inbound
// date) pair and returns the legs of both directions. A missing direction in
// the response means no scheduled legs and yields an empty list, not an
// error.
func (c *Client) FetchLegs(ctx context.Context, from int, to int, outboundDate time.Time, inboundDate time.Time, adults int) ([]journey.Leg, []journey.Leg, error) {
	requestURL := fmt.Sprintf("%s/%s/%d/%d", c.BaseURL, searchLocation, from, to)
	query := url.Values{
		"outbound-date": []string{outboundDate.Format(dateFormat)},
		"inbound-date":  []string{inboundDate.Format(dateFormat)},
		"adult":         []string{strconv.Itoa(adults)},
	}

	body, err := c.get(ctx, requestURL, query)
	if err != nil {
		return nil, nil, err
	}

	return parseSearchResponse(body, outboundDate, inboundDate)
}

func (c *Client) get(ctx context.Context, requestURL string, query url.Values) ([]byte, error) {
	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.URL.RawQuery = query.Encode()
		req.Header.Set(apiKeyHeader, c.APIKey)

		log.Debug().Str("url", req.URL.String()).Msg("Querying provider")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("got %s response: %s", resp.Status, body)
		case resp.StatusCode >= 400:
			return nil, backoff.Permanent(fmt.Errorf("got %s response: %s", resp.Status, body))
		}

		return body, nil
	}

	return backoff.RetryWithData(operation,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.MaxRetries), ctx))
}
