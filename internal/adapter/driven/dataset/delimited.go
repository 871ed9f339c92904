package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/diillson/shipping-report/internal/domain/table"
)

var errNoHeader = errors.New("file has no header row")

const utf8BOM = "\ufeff"

// parseDelimited reads a header row followed by data rows. Header names are
// kept verbatim, spaces included.
func parseDelimited(r io.Reader, delimiter rune) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = 0
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, err
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return table.FromRecords(header, records)
}
