// Package output renders price records to flat text formats.
//
// Each formatter registers itself under a short name; the registry is
// what the command surface uses to populate and dispatch its format
// option, so adding a format is a new file and nothing else.
package output

import (
	"io"
	"sort"

	"github.com/azprices/go-azprices/retail"
)

// Formatter renders a list of records restricted to the given columns.
// A nil or empty columns list means "derive the columns from the first
// record, in its wire order" - with schema-less records that derivation
// is only as good as the first record's column set.
type Formatter interface {
	Name() string
	Write(w io.Writer, records []retail.Record, columns []string) error
}

var formatters = map[string]Formatter{}

// Register makes a formatter available under its Name. Later
// registrations with the same name win.
func Register(f Formatter) {
	formatters[f.Name()] = f
}

func Lookup(name string) (Formatter, bool) {
	f, found := formatters[name]
	return f, found
}

// Names lists every registered formatter name, sorted.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func columnsFor(records []retail.Record, columns []string) []string {
	if len(columns) > 0 {
		return columns
	}
	if len(records) == 0 {
		return nil
	}
	return records[0].Columns()
}

// cell renders one field, with a blank for columns the record lacks.
func cell(record retail.Record, column string) string {
	value, found := record.Get(column)
	if !found {
		return ""
	}
	return value.String()
}
