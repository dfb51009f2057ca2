package weather

import "strings"

// dateLayout is the calendar-date prefix of a forecast timestamp.
const dateLayout = "2006-01-02"

// ForecastRecord is one 3-hour step of a provider forecast.
// Timestamp keeps the provider format "YYYY-MM-DD HH:MM:SS".
type ForecastRecord struct {
	Timestamp    string  `json:"timestamp"`
	TemperatureC float64 `json:"temperatureC"`
	Description  string  `json:"description"`
}

// Date returns the calendar-date portion of the record timestamp.
func (r ForecastRecord) Date() string {
	date, _, _ := strings.Cut(r.Timestamp, " ")
	return date
}

// ForecastResult is what a provider hands back for a city: either the list of
// records, or Malformed when the response carried no usable list.
type ForecastResult struct {
	Records   []ForecastRecord
	Malformed bool
}

// MalformedResult is the single soft-failure variant of ForecastResult.
func MalformedResult() ForecastResult {
	return ForecastResult{Malformed: true}
}

// DailySummary aggregates the records of one calendar date.
type DailySummary struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	MinTemp     float64 `json:"minTempC"`
	MaxTemp     float64 `json:"maxTempC"`
}

// Query is the weather intent derived from a chat message.
type Query struct {
	City    string
	HasCity bool

	// DayOffset is only meaningful when HasDay is set; an unset day is not
	// the same as an explicit "today".
	DayOffset int
	HasDay    bool
}
