package workbook

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/logging"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"
)

// Sheet is a worksheet seen as a schedule.
type Sheet struct {
	doc    *Document
	name   string
	fields []string
	// grid holds the sheet rows restricted to visible columns.
	grid      [][]string
	bodyFirst int
	bodyLast  int
}

var _ collapse.Schedule = (*Sheet)(nil)

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// FieldCount returns the number of header cells.
func (s *Sheet) FieldCount() int {
	return len(s.fields)
}

// Field returns field i with its current column visibility.
func (s *Sheet) Field(i int) models.Field {
	f := models.Field{Name: s.fields[i]}
	visible, err := s.doc.f.GetColVisible(s.name, columnName(i))
	if err != nil {
		logging.Logger().Warn().Err(err).Str("sheet", s.name).Int("field", i).Msg("column visibility unreadable")
		return f
	}
	f.Hidden = !visible
	return f
}

// SetHidden hides or shows the column of field i. It requires an open
// unit of work on the owning document.
func (s *Sheet) SetHidden(i int, hidden bool) error {
	return s.doc.setColVisible(s.name, columnName(i), !hidden)
}

// Regenerate re-reads the sheet and lays out the visible columns.
func (s *Sheet) Regenerate() error {
	f := s.doc.f
	rows, err := f.GetRows(s.name)
	if err != nil {
		return err
	}

	headerRow := s.doc.opts.HeaderRow
	s.fields = nil
	if headerRow <= len(rows) {
		s.fields = append([]string(nil), rows[headerRow-1]...)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	var visible []int
	for c := 0; c < width; c++ {
		ok, err := f.GetColVisible(s.name, columnName(c))
		if err != nil {
			return err
		}
		if ok {
			visible = append(visible, c)
		}
	}

	s.grid = make([][]string, len(rows))
	for r, row := range rows {
		line := make([]string, len(visible))
		for k, c := range visible {
			if c < len(row) {
				line[k] = row[c]
			}
		}
		s.grid[r] = line
	}

	s.bodyFirst = headerRow + 1
	s.bodyLast = lastDataRow(rows) + 1
	if s.bodyLast < s.bodyFirst {
		s.bodyLast = s.bodyFirst - 1
	}
	return nil
}

// BodyRowRange returns the 1-based rows below the header up to the last
// row holding data. last < first when the body is empty.
func (s *Sheet) BodyRowRange() (int, int) {
	return s.bodyFirst, s.bodyLast
}

// CellText returns the displayed text at a 1-based row and a 0-based
// column of the visible grid.
func (s *Sheet) CellText(row, column int) string {
	if row < 1 || row > len(s.grid) {
		return ""
	}
	line := s.grid[row-1]
	if column < 0 || column >= len(line) {
		return ""
	}
	return line[column]
}

// lastDataRow returns the 0-based index of the last row with a non-empty
// cell, or -1 when there is none.
func lastDataRow(rows [][]string) int {
	last := -1
	for rowIdx, row := range rows {
		for _, cell := range row {
			if cell != "" {
				last = rowIdx
				break
			}
		}
	}
	return last
}

func columnName(field int) string {
	name, _ := excelize.ColumnNumberToName(field + 1)
	return name
}
