package eurostar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type regionStation struct {
	RegionName string `json:"regionName"`
	StationID  int    `json:"stationId"`
}

// FetchStations downloads the provider's region listing and returns a
// station name to station ID map.
func (c *Client) FetchStations(ctx context.Context) (map[string]int, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%s", c.BaseURL, regionsLocation), nil)
	if err != nil {
		return nil, err
	}

	var decoded map[string]regionStation
	if err := json.Unmarshal(body, &decoded); err != nil {
		log.Debug().Str("body", string(body)).Msg("Invalid JSON")
		return nil, fmt.Errorf("parsing station listing: %w", err)
	}

	stations := map[string]int{}
	for _, station := range decoded {
		stations[station.RegionName] = station.StationID
	}

	if len(stations) == 0 {
		return nil, errors.New("provider returned an empty station listing")
	}

	log.Debug().Int("count", len(stations)).Msg("Got station listing")

	return stations, nil
}
