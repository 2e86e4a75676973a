package eurostar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/railscout/railscout/pkg/journey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
	"outbound": {
		"journey": [
			{"departureTime": "05:40", "duration": "PT2H37M", "class": [{"price": {"adult": 29.0}}, {"price": {"adult": 129.0}}]},
			{"departureTime": "06:40", "duration": "PT2H13M", "class": [{"price": null}]},
			{"departureTime": "07:40", "duration": "PT2H13M", "class": []}
		]
	},
	"inbound": {
		"journey": [
			{"departureTime": "06:33", "duration": "PT2H29M", "class": [{"price": {"adult": 49.5}}]}
		]
	}
}`

var (
	outboundDate = time.Date(2020, time.April, 5, 0, 0, 0, 0, time.UTC)
	inboundDate  = time.Date(2020, time.April, 7, 0, 0, 0, 0, time.UTC)
)

func testClient(baseURL string) *Client {
	client := NewClient("api-key")
	client.BaseURL = baseURL
	client.MaxRetries = 0

	return client
}

func TestFetchLegs(t *testing.T) {
	t.Run("parses both directions of the search response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(searchFixture))
		}))
		defer server.Close()

		outbound, inbound, err := testClient(server.URL).FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 2)

		require.NoError(t, err)

		// Only the first fare class counts, and unpriced journeys are
		// skipped.
		require.Len(t, outbound, 1)
		assert.Equal(t, journey.Leg{
			Departure: time.Date(2020, time.April, 5, 5, 40, 0, 0, time.UTC),
			Duration:  2*time.Hour + 37*time.Minute,
			Price:     29,
		}, outbound[0])

		require.Len(t, inbound, 1)
		assert.Equal(t, journey.Leg{
			Departure: time.Date(2020, time.April, 7, 6, 33, 0, 0, time.UTC),
			Duration:  2*time.Hour + 29*time.Minute,
			Price:     49.5,
		}, inbound[0])
	})

	t.Run("sends the expected query and API key header", func(t *testing.T) {
		var captured *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r.Clone(context.Background())
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, _, err := testClient(server.URL).FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 2)
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, "/train-search/uk-en/123/321", captured.URL.Path)
		assert.Equal(t, "2020-04-05", captured.URL.Query().Get("outbound-date"))
		assert.Equal(t, "2020-04-07", captured.URL.Query().Get("inbound-date"))
		assert.Equal(t, "2", captured.URL.Query().Get("adult"))
		assert.Equal(t, "api-key", captured.Header.Get("x-apikey"))
	})

	t.Run("missing directions mean empty listings, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		outbound, inbound, err := testClient(server.URL).FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 1)

		require.NoError(t, err)
		assert.Empty(t, outbound)
		assert.Empty(t, inbound)
	})

	t.Run("server errors surface after retries are exhausted", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			http.Error(w, "server crashed", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, _, err := testClient(server.URL).FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 1)

		assert.ErrorContains(t, err, "500")
		assert.ErrorContains(t, err, "server crashed")
		assert.Equal(t, 1, requests)
	})

	t.Run("retries a failed request once the server recovers", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			if requests == 1 {
				http.Error(w, "hold on", http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := testClient(server.URL)
		client.MaxRetries = 2

		_, _, err := client.FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, requests)
	})

	t.Run("client errors are permanent", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			http.Error(w, "never existed", http.StatusNotFound)
		}))
		defer server.Close()

		client := testClient(server.URL)
		client.MaxRetries = 5

		_, _, err := client.FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 1)

		assert.ErrorContains(t, err, "404")
		assert.Equal(t, 1, requests)
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not a json`))
		}))
		defer server.Close()

		_, _, err := testClient(server.URL).FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 1)

		assert.ErrorContains(t, err, "parsing search response")
	})

	t.Run("malformed departure times are an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"outbound": {"journey": [{"departureTime": "quarter past", "duration": "PT1H", "class": [{"price": {"adult": 29.0}}]}]}}`))
		}))
		defer server.Close()

		_, _, err := testClient(server.URL).FetchLegs(context.Background(), 123, 321, outboundDate, inboundDate, 1)

		assert.ErrorContains(t, err, "parsing departure time")
	})
}

func TestFetchStations(t *testing.T) {
	t.Run("flattens the region listing into a name to ID map", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/hotels-search/regions/uk-en", r.URL.Path)
			w.Write([]byte(`{"gb": {"regionName": "London", "stationId": 7015400}, "fr": {"regionName": "Paris", "stationId": 8727100}}`))
		}))
		defer server.Close()

		listing, err := testClient(server.URL).FetchStations(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"London": 7015400, "Paris": 8727100}, listing)
	})

	t.Run("empty listing is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).FetchStations(context.Background())

		assert.ErrorContains(t, err, "empty station listing")
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{foo`))
		}))
		defer server.Close()

		_, err := testClient(server.URL).FetchStations(context.Background())

		assert.ErrorContains(t, err, "parsing station listing")
	})
}
