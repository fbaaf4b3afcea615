package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/unicornpulse/internal/domain/models"
)

// The functions in this file are pure: they never mutate the Dataset and are
// safe to call concurrently on a shared instance. A nil or empty Dataset
// yields an empty, non-nil result.

// SumByCountry groups companies by Country and sums their valuations.
func SumByCountry(ds *models.Dataset) models.AggregationResult {
	return sumBy(ds, models.FieldCountry)
}

// SumByIndustry groups companies by Industry and sums their valuations.
func SumByIndustry(ds *models.Dataset) models.AggregationResult {
	return sumBy(ds, models.FieldIndustry)
}

// sumBy accumulates in decimal so the result does not depend on row order.
func sumBy(ds *models.Dataset, f models.Field) models.AggregationResult {
	acc := make(map[string]decimal.Decimal)
	ds.Each(func(c models.Company) {
		key, _ := c.Category(f)
		acc[key] = acc[key].Add(decimal.NewFromFloat(c.Valuation))
	})

	out := make(models.AggregationResult, len(acc))
	for k, v := range acc {
		out[k] = v.InexactFloat64()
	}
	return out
}

// ValuationDistribution returns the raw valuation column in dataset order.
func ValuationDistribution(ds *models.Dataset) []float64 {
	out := make([]float64, 0, ds.Len())
	ds.Each(func(c models.Company) {
		out = append(out, c.Valuation)
	})
	return out
}

// CumulativeValuationOverTime sorts companies by DateJoined, merges companies
// that joined on the same day into one bucket and returns the running total.
// The series has exactly one point per distinct day.
func CumulativeValuationOverTime(ds *models.Dataset) models.TimeSeries {
	perDay := make(map[time.Time]decimal.Decimal)
	ds.Each(func(c models.Company) {
		d := c.DateJoined.UTC()
		perDay[d] = perDay[d].Add(decimal.NewFromFloat(c.Valuation))
	})

	days := make([]time.Time, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make(models.TimeSeries, 0, len(days))
	running := decimal.Zero
	for _, d := range days {
		running = running.Add(perDay[d])
		out = append(out, models.TimePoint{Date: d, Cumulative: running.InexactFloat64()})
	}
	return out
}

// TotalValuation sums every valuation in the dataset.
func TotalValuation(ds *models.Dataset) float64 {
	total := decimal.Zero
	ds.Each(func(c models.Company) {
		total = total.Add(decimal.NewFromFloat(c.Valuation))
	})
	return total.InexactFloat64()
}
