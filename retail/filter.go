package retail

import "strings"

// FilterSpec accumulates property restrictions for the $filter query
// parameter. Repeated values for one property are OR'd together,
// distinct properties are AND'd. Properties render in the order they
// were first added.
//
// Values are not escaped: a value containing a single quote produces a
// filter the API will reject, and that rejection comes back as an
// *APIError from the fetch.
type FilterSpec struct {
	properties []string
	values     map[string][]string
}

// Add records one acceptable value for a property.
func (f *FilterSpec) Add(property, value string) {
	if f.values == nil {
		f.values = map[string][]string{}
	}
	_, found := f.values[property]
	if !found {
		f.properties = append(f.properties, property)
	}
	f.values[property] = append(f.values[property], value)
}

func (f *FilterSpec) Empty() bool {
	return f == nil || len(f.properties) == 0
}

// String renders the spec in the API's filter grammar, for example
// (armRegionName eq 'ukwest' or armRegionName eq 'uksouth') and (priceType eq 'Consumption')
// An empty spec renders as the empty string.
func (f *FilterSpec) String() string {
	if f.Empty() {
		return ""
	}

	clauses := make([]string, 0, len(f.properties))
	for _, property := range f.properties {
		comparisons := make([]string, 0, len(f.values[property]))
		for _, value := range f.values[property] {
			comparisons = append(comparisons, property+" eq '"+value+"'")
		}
		clauses = append(clauses, "("+strings.Join(comparisons, " or ")+")")
	}
	return strings.Join(clauses, " and ")
}
