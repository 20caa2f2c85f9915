package retail

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// PriceSummary aggregates the retailPrice column of a result set.
type PriceSummary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// PriceStats summarizes the retailPrice values found across records.
// Records without a numeric retailPrice are skipped; if none remain an
// error is returned.
func PriceStats(records []Record) (PriceSummary, error) {
	prices := make([]float64, 0, len(records))
	for _, record := range records {
		value, found := record.Get("retailPrice")
		if !found {
			continue
		}
		price, err := value.Float64()
		if err != nil {
			continue
		}
		prices = append(prices, price)
	}
	if len(prices) == 0 {
		return PriceSummary{}, errors.New("no retailPrice values found")
	}

	summary := PriceSummary{Count: len(prices)}
	var err error
	summary.Min, err = stats.Min(prices)
	if err != nil {
		return PriceSummary{}, err
	}
	summary.Max, err = stats.Max(prices)
	if err != nil {
		return PriceSummary{}, err
	}
	summary.Mean, err = stats.Mean(prices)
	if err != nil {
		return PriceSummary{}, err
	}
	summary.Median, err = stats.Median(prices)
	if err != nil {
		return PriceSummary{}, err
	}
	return summary, nil
}
