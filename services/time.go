package services

import "time"

const dateOnly = "2006-01-02"

func isoNow(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// trailingMonths returns the YYYY-MM keys of the n calendar months ending at
// t's month, oldest first. Anchored at the first of the month so the window is
// stable regardless of the current day of month.
func trailingMonths(t time.Time, n int) []string {
	months := make([]string, n)
	year, month, _ := t.UTC().Date()
	cursor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		months[i] = cursor.Format("2006-01")
		cursor = cursor.AddDate(0, -1, 0)
	}

	return months
}

// denseSeries maps sparse month buckets onto the window: one value per month,
// zero where the bucket is absent.
func denseSeries(months []string, buckets map[string]float64) []float64 {
	series := make([]float64, len(months))
	for i, month := range months {
		series[i] = buckets[month]
	}

	return series
}

func toCounts(series []float64) []int64 {
	counts := make([]int64, len(series))
	for i, v := range series {
		counts[i] = int64(v)
	}

	return counts
}
