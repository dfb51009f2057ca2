package weather

import (
	"fmt"
	"strings"
)

// MaxDayOffset is the furthest day the 5-day forecast can answer for.
const MaxDayOffset = 4

// MaxForecastDays caps the number of date lines in a forecast summary.
const MaxForecastDays = 5

const tooFarAheadMessage = "Sorry, I can only provide forecasts up to 5 days ahead."

var dayLabels = []string{"Today's", "Tomorrow's", "Day after tomorrow's"}

func dayLabel(offset int, targetDate string) string {
	if offset >= 0 && offset < len(dayLabels) {
		return dayLabels[offset]
	}
	return "Weather on " + targetDate
}

func unavailableMessage(city string) string {
	return fmt.Sprintf("Could not retrieve forecast for %s.", city)
}

func noForecastMessage(city, date string) string {
	return fmt.Sprintf("No forecast found for %s on %s.", city, date)
}

// FormatDay renders the single-day answer.
func FormatDay(city string, offset int, targetDate, description string, avgTemp float64) string {
	return fmt.Sprintf("%s in %s: %s, average temperature: %.1f°C.",
		dayLabel(offset, targetDate), city, description, avgTemp)
}

// FormatForecast renders a header plus at most MaxForecastDays date lines.
func FormatForecast(city string, days []DailySummary) string {
	if len(days) > MaxForecastDays {
		days = days[:MaxForecastDays]
	}

	lines := make([]string, 0, len(days)+1)
	lines = append(lines, fmt.Sprintf("Weather forecast for %s:", city))
	for _, d := range days {
		lines = append(lines, fmt.Sprintf("%s: %s, %.1f°C - %.1f°C", d.Date, d.Description, d.MinTemp, d.MaxTemp))
	}
	return strings.Join(lines, "\n")
}
