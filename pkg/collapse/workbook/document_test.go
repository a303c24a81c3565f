package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"
)

// writeSchedule saves a workbook with one schedule sheet and returns its path.
func writeSchedule(t *testing.T, sheet string, rows [][]interface{}, hiddenCols ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	for _, col := range hiddenCols {
		require.NoError(t, f.SetColVisible(sheet, col, false))
	}

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func colHidden(t *testing.T, path, sheet string) []bool {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	var out []bool
	for _, col := range []string{"A", "B", "C", "D", "E"} {
		visible, err := f.GetColVisible(sheet, col)
		require.NoError(t, err)
		out = append(out, !visible)
	}
	return out
}

func TestRunOnWorkbook(t *testing.T) {
	path := writeSchedule(t, "ВРС-1", [][]interface{}{
		{"Mark", "6", "8", "10", "=Total"},
		{"K1", 0, 1.5, "", 1.5},
		{"K2", 0, 0, "-", 0},
	}, "C")

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	report, err := collapse.Run(doc, nil, collapse.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, models.ColumnRange{First: 1, Terminator: 4}, report.Range)
	assert.Equal(t, models.RowRange{First: 2, Last: 3}, report.Rows)
	assert.Equal(t, 1, report.ColumnsHidden)
	assert.Equal(t, 1, report.ColumnsOpened)
	assert.True(t, doc.Dirty())

	require.NoError(t, doc.Save(""))
	assert.Equal(t, []bool{false, true, false, false, false}, colHidden(t, path, "ВРС-1"))
}

func TestRunOnWorkbookHiddenOffset(t *testing.T) {
	path := writeSchedule(t, "calc", [][]interface{}{
		{"A", "B", "3kg", "=Total"},
		{9, "x", 0, 9},
		{9, "y", 0, 9},
	}, "A")

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	report, err := collapse.Run(doc, nil, collapse.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Range.StartHidden)
	require.Len(t, report.Columns, 1)
	assert.Equal(t, models.DecisionCollapse, report.Columns[0].Decision)
	assert.Equal(t, 1, report.ColumnsHidden)
}

func TestRunOnWorkbookNoTerminatorLeavesFileClean(t *testing.T) {
	path := writeSchedule(t, "calc", [][]interface{}{
		{"Mark", "6", "8"},
		{"K1", 0, 0},
	}, "B")

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	_, err = collapse.Run(doc, nil, collapse.DefaultOptions())
	assert.ErrorIs(t, err, collapse.ErrNoTerminatorColumn)
	assert.False(t, doc.Dirty())

	visible, err := doc.File().GetColVisible("calc", "B")
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestRunOnWorkbookKeepsGroupedNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Mark", "12", "=Total"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"K1", 0, 0}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"K2", 1234.5, 1234.5}))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "B2", "B3", style))

	doc := New(f, "", DefaultOptions())
	s, err := doc.Sheet("Sheet1")
	require.NoError(t, err)
	require.Equal(t, "1,234.50", s.CellText(3, 1))

	report, err := collapse.Run(doc, nil, collapse.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, report.Columns, 1)
	assert.Equal(t, models.DecisionKeep, report.Columns[0].Decision)
	assert.Equal(t, 0, report.ColumnsHidden)
	assert.False(t, s.Field(1).Hidden)
	assert.False(t, doc.Dirty())
}

func TestRunOnWorkbookWithoutChangesStaysClean(t *testing.T) {
	path := writeSchedule(t, "calc", [][]interface{}{
		{"Mark", "6", "8", "=Total"},
		{"K1", 2, 0, 2},
		{"K2", 0, 0, 0},
	}, "C")

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	report, err := collapse.Run(doc, nil, collapse.DefaultOptions())
	require.NoError(t, err)

	assert.False(t, report.Changed())
	assert.False(t, doc.Dirty())
	assert.Equal(t, []bool{false, false, true, false, false}, colHidden(t, path, "calc"))
}

func TestSelectionResolvesSheetInstance(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Rebar calculation")
	require.NoError(t, err)

	doc := New(f, "", Options{Selection: []string{"Rebar calculation", "Missing"}})

	_, ok := doc.CurrentView()
	assert.False(t, ok)

	inst, ok := doc.ResolveSheetInstance("Rebar calculation")
	require.True(t, ok)
	assert.Equal(t, collapse.ScheduleID("Rebar calculation"), inst.ScheduleID)

	_, ok = doc.ResolveSheetInstance("Missing")
	assert.False(t, ok)

	sched, err := collapse.ResolveTarget(doc, collapse.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Rebar calculation", sched.Name())
}

func TestActiveSheetIsCurrentView(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	doc := New(f, "", DefaultOptions())
	view, ok := doc.CurrentView()
	require.True(t, ok)
	assert.Equal(t, "Sheet1", view.Name())
}

func TestUnitOfWork(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"6", "=T"}))

	doc := New(f, "", DefaultOptions())
	s, err := doc.Sheet("Sheet1")
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetHidden(0, true), ErrNoUnitOfWork)

	require.NoError(t, doc.Begin("test"))
	assert.ErrorIs(t, doc.Begin("again"), ErrUnitOfWorkOpen)
	assert.ErrorIs(t, doc.Save(filepath.Join(t.TempDir(), "x.xlsx")), ErrUnitOfWorkOpen)

	require.NoError(t, s.SetHidden(0, true))
	require.NoError(t, s.SetHidden(0, false))
	require.NoError(t, s.SetHidden(0, true))
	assert.True(t, s.Field(0).Hidden)

	require.NoError(t, doc.Rollback())
	assert.False(t, s.Field(0).Hidden)
	assert.False(t, doc.Dirty())

	require.NoError(t, doc.Begin("round trip"))
	require.NoError(t, s.SetHidden(1, true))
	require.NoError(t, s.SetHidden(1, false))
	require.NoError(t, doc.Commit())
	assert.False(t, doc.Dirty())

	require.NoError(t, doc.Begin("test"))
	require.NoError(t, s.SetHidden(1, true))
	require.NoError(t, doc.Commit())
	assert.True(t, s.Field(1).Hidden)
	assert.True(t, doc.Dirty())

	assert.NoError(t, doc.Rollback())
	assert.ErrorIs(t, doc.Commit(), ErrNoUnitOfWork)
}
