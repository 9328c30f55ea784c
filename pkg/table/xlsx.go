package table

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of a workbook into a Table. Order sheets
// downloaded from Google Sheets keep everything on the first sheet.
func readXLSX(path string) (*Table, []ParseWarning, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("xlsx %s contains no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty sheet: no header row found")
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	tbl := &Table{Headers: headers}
	for _, record := range rows[1:] {
		tbl.Rows = append(tbl.Rows, rowFromRecord(headers, record))
	}
	return tbl, nil, nil
}
