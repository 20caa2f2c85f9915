package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/azprices/go-azprices/retail"
)

func init() {
	Register(csvFormatter{})
}

// csvFormatter writes comma-separated values with a header row. Every
// field is double-quoted, not just the ones that need it, which is why
// this does not sit on encoding/csv. Embedded quotes are doubled.
type csvFormatter struct{}

func (csvFormatter) Name() string {
	return "csv"
}

func (csvFormatter) Write(w io.Writer, records []retail.Record, columns []string) error {
	outputColumns := columnsFor(records, columns)

	err := writeQuotedRow(w, outputColumns)
	if err != nil {
		return err
	}

	for _, record := range records {
		cells := make([]string, 0, len(outputColumns))
		for _, column := range outputColumns {
			cells = append(cells, cell(record, column))
		}
		err = writeQuotedRow(w, cells)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeQuotedRow(w io.Writer, cells []string) error {
	quoted := make([]string, 0, len(cells))
	for _, c := range cells {
		quoted = append(quoted, `"`+strings.ReplaceAll(c, `"`, `""`)+`"`)
	}
	_, err := fmt.Fprintln(w, strings.Join(quoted, ","))
	return err
}
