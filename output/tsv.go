package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/azprices/go-azprices/retail"
)

func init() {
	Register(tsvFormatter{})
}

// tsvFormatter writes tab-separated values, unquoted, header row first.
type tsvFormatter struct{}

func (tsvFormatter) Name() string {
	return "tsv"
}

func (tsvFormatter) Write(w io.Writer, records []retail.Record, columns []string) error {
	outputColumns := columnsFor(records, columns)

	_, err := fmt.Fprintln(w, strings.Join(outputColumns, "\t"))
	if err != nil {
		return err
	}

	for _, record := range records {
		cells := make([]string, 0, len(outputColumns))
		for _, column := range outputColumns {
			cells = append(cells, cell(record, column))
		}
		_, err = fmt.Fprintln(w, strings.Join(cells, "\t"))
		if err != nil {
			return err
		}
	}

	return nil
}
