package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"health-push/internal/domain/push"
	"health-push/internal/pkg/config"
	"health-push/internal/pkg/errs"
)

// WeatherGateway fetches today's report for a city from the weather service.
// Unlike the LLM gateway it does return errors: a missing report means the
// weather push for that user must be recorded as failed, not degraded.
type WeatherGateway struct {
	cfg    config.WeatherConfig
	client *http.Client
}

func NewWeatherGateway(cfg config.WeatherConfig) *WeatherGateway {
	return &WeatherGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type weatherResponse struct {
	City        string `json:"city"`
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	Weather     string `json:"weather"`
	Wind        string `json:"wind"`
}

func (g *WeatherGateway) Fetch(ctx context.Context, province, city string) (*push.WeatherReport, error) {
	q := url.Values{}
	q.Set("province", province)
	q.Set("city", city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"/weather/today?"+q.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build weather request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("weather service returned status %d for %s/%s", resp.StatusCode, province, city))
	}

	var decoded weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errs.Wrap(err, "failed to decode weather response")
	}
	if decoded.Weather == "" && decoded.Temperature == "" {
		return nil, errs.New(fmt.Sprintf("weather service returned empty report for %s/%s", province, city))
	}

	report := &push.WeatherReport{
		City:        decoded.City,
		Date:        decoded.Date,
		Temperature: decoded.Temperature,
		Weather:     decoded.Weather,
		Wind:        decoded.Wind,
	}
	if report.City == "" {
		report.City = city
	}
	return report, nil
}
