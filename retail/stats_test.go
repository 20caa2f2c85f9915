package retail

import (
	"encoding/json"
	"testing"
)

func TestPriceStats(t *testing.T) {
	prices := []string{"1", "2", "3", "4"}
	records := make([]Record, 0, len(prices))
	for _, price := range prices {
		var record Record
		record.Set("retailPrice", Number(json.Number(price)))
		records = append(records, record)
	}

	// A record without a price is skipped, not an error
	var blank Record
	blank.Set("skuId", String("X"))
	records = append(records, blank)

	summary, err := PriceStats(records)
	if err != nil {
		t.Fatalf("FAIL: unexpected error: %s", err.Error())
	}
	if summary.Count != 4 {
		t.Errorf("FAIL: counted %d prices, expected 4", summary.Count)
	}
	if summary.Min != 1 || summary.Max != 4 {
		t.Errorf("FAIL: min/max are %v/%v, expected 1/4", summary.Min, summary.Max)
	}
	if summary.Mean != 2.5 {
		t.Errorf("FAIL: mean is %v, expected 2.5", summary.Mean)
	}
	if summary.Median != 2.5 {
		t.Errorf("FAIL: median is %v, expected 2.5", summary.Median)
	}
}

func TestPriceStatsNoPrices(t *testing.T) {
	var record Record
	record.Set("skuId", String("A"))

	_, err := PriceStats([]Record{record})
	if err == nil {
		t.Errorf("FAIL: expected an error with no retailPrice values")
	}
}
