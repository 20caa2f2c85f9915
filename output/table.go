package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/azprices/go-azprices/retail"
)

func init() {
	Register(tableFormatter{})
}

// tableFormatter writes human-readable aligned columns with a header
// row and a dashed underline.
type tableFormatter struct{}

func (tableFormatter) Name() string {
	return "table"
}

func (tableFormatter) Write(w io.Writer, records []retail.Record, columns []string) error {
	outputColumns := columnsFor(records, columns)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	_, err := fmt.Fprintln(tw, strings.Join(outputColumns, "\t"))
	if err != nil {
		return err
	}

	dashes := make([]string, 0, len(outputColumns))
	for _, column := range outputColumns {
		dashes = append(dashes, strings.Repeat("-", len(column)))
	}
	_, err = fmt.Fprintln(tw, strings.Join(dashes, "\t"))
	if err != nil {
		return err
	}

	for _, record := range records {
		cells := make([]string, 0, len(outputColumns))
		for _, column := range outputColumns {
			cells = append(cells, cell(record, column))
		}
		_, err = fmt.Fprintln(tw, strings.Join(cells, "\t"))
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
