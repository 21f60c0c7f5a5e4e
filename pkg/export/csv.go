// Package export renders table views and documents into downloadable
// formats: CSV, Excel workbooks and PDF documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/udyogbooks/backoffice-api/pkg/tabular"
)

// CSV renders a table view as CSV bytes: one header record followed by
// one record per body row. Non-data states produce just the header.
func CSV(table *tabular.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(table.Headers))
	for _, h := range table.Headers {
		header = append(header, h.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range table.Rows {
		if err := w.Write(row.Cells); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
