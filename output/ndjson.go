package output

import (
	"io"

	"github.com/scizorman/go-ndjson"

	"github.com/azprices/go-azprices/retail"
)

func init() {
	Register(ndjsonFormatter{})
}

// ndjsonFormatter writes one JSON object per line, no header, which is
// the friendliest shape for piping into jq or bulk loaders.
type ndjsonFormatter struct{}

func (ndjsonFormatter) Name() string {
	return "ndjson"
}

func (ndjsonFormatter) Write(w io.Writer, records []retail.Record, columns []string) error {
	outputColumns := columnsFor(records, columns)

	selected := make([]retail.Record, 0, len(records))
	for _, record := range records {
		selected = append(selected, record.Select(outputColumns))
	}

	data, err := ndjson.Marshal(selected)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
