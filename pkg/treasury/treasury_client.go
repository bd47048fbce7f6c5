package treasury_client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// riskFreeKey is the tenor used as the risk-free rate for Sharpe ratios.
const riskFreeKey = "yield_3m"

// lazy, in-memory cache for API requests
var cache map[string][]byte = map[string][]byte{}

func getBytes(date time.Time) ([]byte, error) {
	tStr := date.Format(time.DateOnly)

	if out, ok := cache[tStr]; ok {
		return out, nil
	}

	client := http.DefaultClient
	url := fmt.Sprintf("https://www.ustreasuryyieldcurve.com/api/v1/yield_curve_snapshot?date=%s&offset=0", tStr)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	cache[tStr] = responseBytes

	return responseBytes, nil
}

// RiskFreeRate returns the 3-month treasury yield on the given day as a
// fraction, e.g. 0.045 for 4.5%. Days with no published snapshot fall back
// to earlier months.
func RiskFreeRate(date time.Time) (float64, error) {
	return riskFreeRate(date, 0)
}

func riskFreeRate(date time.Time, depth int) (float64, error) {
	if depth > 12 {
		return 0, fmt.Errorf("no treasury yield snapshot found near %s", date.Format(time.DateOnly))
	}

	responseBytes, err := getBytes(date)
	if err != nil {
		return 0, err
	}

	responseBody := []map[string]interface{}{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return 0, err
	}

	for _, response := range responseBody {
		if v, ok := response[riskFreeKey]; ok && v != nil {
			rate, ok := v.(float64)
			if !ok {
				return 0, fmt.Errorf("unexpected yield type %T", v)
			}
			return rate / 100, nil
		}
	}

	// weekends and holidays publish nothing; walk backwards
	return riskFreeRate(date.AddDate(0, -1, 0), depth+1)
}
