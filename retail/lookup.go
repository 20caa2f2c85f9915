package retail

import "context"

// LookupSKU retrieves every price item whose armSkuName matches the
// given name. This is just a single-property filter over GetPrices;
// one ARM SKU name commonly maps to many items, one per region, meter
// and price type.
func (ac *Client) LookupSKU(ctx context.Context, currencyCode, armSkuName string) ([]Record, error) {
	var filter FilterSpec
	filter.Add("armSkuName", armSkuName)
	return ac.GetPrices(ctx, currencyCode, &filter)
}
