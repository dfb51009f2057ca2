package weather

import "strings"

// FilterByDate keeps the records whose timestamp starts with date, in provider order.
func FilterByDate(records []ForecastRecord, date string) []ForecastRecord {
	var out []ForecastRecord
	for _, r := range records {
		if strings.HasPrefix(r.Timestamp, date) {
			out = append(out, r)
		}
	}
	return out
}

// AggregateDay reduces the records of a single day to a simple (unweighted)
// mean temperature and the first record's description.
// The caller must pass at least one record.
func AggregateDay(records []ForecastRecord) (avgTemp float64, description string) {
	var sumTemp float64
	for _, r := range records {
		sumTemp += r.TemperatureC
	}
	return sumTemp / float64(len(records)), records[0].Description
}

// GroupByDate builds one DailySummary per calendar date. Dates appear in the
// order they are first seen, which is trusted to be chronological but not
// re-sorted. Each day keeps the description of its first record.
func GroupByDate(records []ForecastRecord) []DailySummary {
	index := make(map[string]int)
	days := make([]DailySummary, 0)

	for _, r := range records {
		date := r.Date()
		i, ok := index[date]
		if !ok {
			index[date] = len(days)
			days = append(days, DailySummary{
				Date:        date,
				Description: r.Description,
				MinTemp:     r.TemperatureC,
				MaxTemp:     r.TemperatureC,
			})
			continue
		}

		if r.TemperatureC < days[i].MinTemp {
			days[i].MinTemp = r.TemperatureC
		}
		if r.TemperatureC > days[i].MaxTemp {
			days[i].MaxTemp = r.TemperatureC
		}
	}

	return days
}
