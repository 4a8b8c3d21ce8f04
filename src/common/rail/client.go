package rail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/jack-barr3tt/railchat/src/common/types"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://transportapi.com/v3"

// Client talks to the timetable provider: place lookup to turn free-text
// station names into CRS codes, and live station timetables between two codes.
type Client struct {
	baseURL string
	appID   string
	appKey  string

	places    *http.Client
	timetable *http.Client
	logger    *zap.SugaredLogger
}

func NewClient(logger *zap.SugaredLogger) *Client {
	baseURL := os.Getenv("TRANSPORT_API_BASE")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:   baseURL,
		appID:     os.Getenv("TRANSPORT_API_ID"),
		appKey:    os.Getenv("TRANSPORT_API_KEY"),
		places:    &http.Client{Timeout: 10 * time.Second},
		timetable: &http.Client{Timeout: 15 * time.Second},
		logger:    logger,
	}
}

// Places queries the lookup endpoint filtered to train stations.
func (c *Client) Places(ctx context.Context, query string) (*types.PlacesResponse, error) {
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("query", query)
	params.Set("type", "train_station")

	endpoint := fmt.Sprintf("%s/uk/places.json?%s", c.baseURL, params.Encode())

	var result types.PlacesResponse
	if err := c.get(ctx, c.places, "lookup", endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Timetable fetches passenger departures from origin towards destination at
// the given date (YYYY-MM-DD) and time (HH:MM).
func (c *Client) Timetable(ctx context.Context, originCode, destinationCode, date, timeOfDay string) (*types.StationTimetableResponse, error) {
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("destination", destinationCode)
	params.Set("train_status", "passenger")

	endpoint := fmt.Sprintf("%s/uk/train/station/%s/%s/%s/timetable.json?%s",
		c.baseURL, url.PathEscape(originCode), date, timeOfDay, params.Encode())

	var result types.StationTimetableResponse
	if err := c.get(ctx, c.timetable, "timetable", endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, client *http.Client, service, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return &types.UpstreamError{Service: service, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &types.UpstreamError{Service: service, StatusCode: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return &types.UpstreamError{Service: service, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &types.UpstreamError{Service: service, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
