// Package retail queries the Azure Retail Prices API.
//
// The API is public, unauthenticated, and paginated: each response
// carries a chunk of price items plus a link to the next chunk. Items
// have no enforced schema, so they are surfaced as ordered Records
// rather than a fixed struct.
package retail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

const retailPricesURL = "https://prices.azure.com/api/retail/prices"

// APIError is returned when the API answers with a non-OK status. It
// carries the raw response body, which is where the API explains
// rejected filters.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status code (%d) from api call, response body was: %s", e.StatusCode, e.Body)
}

type Client struct {
	// BaseURL points at the production endpoint unless overridden
	BaseURL string

	client *http.Client
	logger zerolog.Logger
}

func NewClient(logger zerolog.Logger) *Client {
	ac := Client{}
	ac.BaseURL = retailPricesURL
	ac.client = cleanhttp.DefaultClient()
	ac.logger = logger
	return &ac
}

// priceSheet is the wire shape of one page of results.
type priceSheet struct {
	BillingCurrency string   `json:"BillingCurrency"`
	Count           int      `json:"Count"`
	Items           []Record `json:"Items"`
	NextPageLink    string   `json:"NextPageLink"`
}

func (ac *Client) getPage(ctx context.Context, query string) (*priceSheet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ac.BaseURL+"?"+query, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := ac.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	var sheet priceSheet
	err = json.Unmarshal(data, &sheet)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error for price sheet, got: %s", string(data))
	}

	if sheet.Count != len(sheet.Items) {
		ac.logger.Warn().
			Int("claimed", sheet.Count).
			Int("returned", len(sheet.Items)).
			Msg("api call did not return the number of items it said it found")
	}

	return &sheet, nil
}

// GetPrices retrieves every price item matching the filter, following
// pagination until exhausted. Any failed page fetch aborts the whole
// run with no partial results. Items come back in arrival order, with
// no deduplication.
//
// The currency code is passed through as-is; the API itself rejects
// codes it does not support.
func (ac *Client) GetPrices(ctx context.Context, currencyCode string, filter *FilterSpec) ([]Record, error) {
	if _, err := currency.ParseISO(currencyCode); err != nil {
		ac.logger.Debug().
			Str("currency", currencyCode).
			Msg("currency code does not parse as ISO 4217, passing through as-is")
	}

	v := url.Values{}
	v.Set("currencyCode", "'"+currencyCode+"'")
	if builtFilter := filter.String(); builtFilter != "" {
		ac.logger.Debug().Str("filter", builtFilter).Msg("built filter")
		v.Set("$filter", builtFilter)
	}
	query := v.Encode()

	var items []Record
	for {
		sheet, err := ac.getPage(ctx, query)
		if err != nil {
			return nil, err
		}
		items = append(items, sheet.Items...)

		if sheet.NextPageLink == "" {
			break
		}
		_, next, found := strings.Cut(sheet.NextPageLink, "?")
		if !found {
			return nil, fmt.Errorf("next page link has no query string: %s", sheet.NextPageLink)
		}
		ac.logger.Debug().Str("link", sheet.NextPageLink).Msg("next page of results detected")
		query = next
	}

	skus := map[string]int{}
	for _, item := range items {
		id, found := item.Get("skuId")
		if found {
			skus[id.String()]++
		}
	}
	ac.logger.Info().
		Int("items", len(items)).
		Int("skus", len(skus)).
		Msg("retrieved prices")

	return items, nil
}
