package output

import (
	"encoding/json"
	"io"

	"github.com/azprices/go-azprices/retail"
)

func init() {
	Register(jsonFormatter{})
}

// jsonFormatter writes a JSON array of objects, each carrying exactly
// the selected columns in selection order. Columns a record lacks come
// out null.
type jsonFormatter struct{}

func (jsonFormatter) Name() string {
	return "json"
}

func (jsonFormatter) Write(w io.Writer, records []retail.Record, columns []string) error {
	outputColumns := columnsFor(records, columns)

	selected := make([]retail.Record, 0, len(records))
	for _, record := range records {
		selected = append(selected, record.Select(outputColumns))
	}

	return json.NewEncoder(w).Encode(selected)
}
