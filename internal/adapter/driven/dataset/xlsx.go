package dataset

import (
	"fmt"
	"io"

	"github.com/diillson/shipping-report/internal/domain/table"
	"github.com/xuri/excelize/v2"
)

// parseXLSX reads the first sheet of a workbook. Trailing empty cells, which
// excelize omits, are restored so every row matches the header width.
func parseXLSX(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errNoHeader
	}

	header := rows[0]
	records := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", i+2, len(row), len(header))
		}
		if len(row) == 0 {
			continue
		}
		padded := make([]string, len(header))
		copy(padded, row)
		records = append(records, padded)
	}
	return table.FromRecords(header, records)
}
