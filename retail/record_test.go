package retail

import (
	"encoding/json"
	"testing"
)

var itemTest = `{
	"currencyCode": "GBP",
	"retailPrice": 0.0766,
	"unitPrice": 0.0766,
	"armRegionName": "ukwest",
	"meterName": "D2s v5",
	"skuId": "DZH318Z0D1L8/018J",
	"armSkuName": "Standard_D2s_v5",
	"isPrimaryMeterRegion": true,
	"effectiveEndDate": null,
	"savingsPlan": [{"unitPrice": 0.05, "term": "1 Year"}]
}`

func TestRecordUnmarshalPreservesOrder(t *testing.T) {
	var record Record
	err := json.Unmarshal([]byte(itemTest), &record)
	if err != nil {
		t.Fatalf("FAIL: unexpected error: %s", err.Error())
	}

	expected := []string{
		"currencyCode", "retailPrice", "unitPrice", "armRegionName",
		"meterName", "skuId", "armSkuName", "isPrimaryMeterRegion",
		"effectiveEndDate", "savingsPlan",
	}
	columns := record.Columns()
	if len(columns) != len(expected) {
		t.Fatalf("FAIL: got %d columns, expected %d", len(columns), len(expected))
	}
	for i, column := range expected {
		if columns[i] != column {
			t.Errorf("FAIL: column %d is %q, expected %q", i, columns[i], column)
		}
	}
}

func TestRecordTypedValues(t *testing.T) {
	var record Record
	err := json.Unmarshal([]byte(itemTest), &record)
	if err != nil {
		t.Fatalf("FAIL: unexpected error: %s", err.Error())
	}

	value, found := record.Get("currencyCode")
	if !found || value.Kind() != KindString || value.String() != "GBP" {
		t.Errorf("FAIL: currencyCode came out as %v %q", value.Kind(), value.String())
	}

	value, found = record.Get("retailPrice")
	if !found || value.Kind() != KindNumber {
		t.Errorf("FAIL: retailPrice came out as %v", value.Kind())
	}
	if value.String() != "0.0766" {
		t.Errorf("FAIL: retailPrice renders as %q, expected it unchanged", value.String())
	}
	price, err := value.Float64()
	if err != nil || price != 0.0766 {
		t.Errorf("FAIL: retailPrice converts to %v (%v)", price, err)
	}

	value, found = record.Get("isPrimaryMeterRegion")
	if !found || value.Kind() != KindBool || value.String() != "true" {
		t.Errorf("FAIL: isPrimaryMeterRegion came out as %v %q", value.Kind(), value.String())
	}

	value, found = record.Get("effectiveEndDate")
	if !found || value.Kind() != KindNull || value.String() != "" {
		t.Errorf("FAIL: effectiveEndDate came out as %v %q", value.Kind(), value.String())
	}

	value, found = record.Get("savingsPlan")
	if !found || value.Kind() != KindRaw {
		t.Errorf("FAIL: savingsPlan came out as %v", value.Kind())
	}

	_, found = record.Get("nope")
	if found {
		t.Errorf("FAIL: lookup of a missing column reported success")
	}
}

func TestRecordMarshalRoundTrip(t *testing.T) {
	in := `{"skuId":"A","price":1.5,"regions":["ukwest"],"active":false}`

	var record Record
	err := json.Unmarshal([]byte(in), &record)
	if err != nil {
		t.Fatalf("FAIL: unexpected error: %s", err.Error())
	}

	out, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("FAIL: unexpected error: %s", err.Error())
	}
	if string(out) != in {
		t.Errorf("FAIL: round trip produced %s, expected %s", string(out), in)
	}
}

func TestRecordSelect(t *testing.T) {
	var record Record
	record.Set("skuId", String("A"))
	record.Set("price", Number("1.5"))

	selected := record.Select([]string{"price", "missing"})

	columns := selected.Columns()
	if len(columns) != 2 || columns[0] != "price" || columns[1] != "missing" {
		t.Fatalf("FAIL: selected columns are %v", columns)
	}

	value, _ := selected.Get("missing")
	if value.Kind() != KindNull {
		t.Errorf("FAIL: missing column selected as %v, expected null", value.Kind())
	}

	out, err := json.Marshal(selected)
	if err != nil {
		t.Fatalf("FAIL: unexpected error: %s", err.Error())
	}
	expected := `{"price":1.5,"missing":null}`
	if string(out) != expected {
		t.Errorf("FAIL: selection marshals as %s, expected %s", string(out), expected)
	}
}

func TestRecordSetOverwrite(t *testing.T) {
	var record Record
	record.Set("skuId", String("A"))
	record.Set("skuId", String("B"))

	if record.Len() != 1 {
		t.Errorf("FAIL: record contains %d columns, expected 1", record.Len())
	}
	value, _ := record.Get("skuId")
	if value.String() != "B" {
		t.Errorf("FAIL: skuId is %q, expected overwrite to win", value.String())
	}
}
