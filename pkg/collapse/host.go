package collapse

import "github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"

// ScheduleID identifies a schedule within the host document.
type ScheduleID string

// ElementHandle identifies a selected element within the host document.
type ElementHandle string

// SheetInstance is a schedule placed on a sheet.
type SheetInstance struct {
	Name       string
	ScheduleID ScheduleID
}

// ScheduleFieldProvider exposes a schedule's ordered field definitions.
type ScheduleFieldProvider interface {
	FieldCount() int
	Field(i int) models.Field
	SetHidden(i int, hidden bool) error
}

// TableTextProvider exposes the laid-out table of a schedule. Hidden
// columns are absent from the grid CellText addresses.
type TableTextProvider interface {
	// Regenerate recomputes the layout after field visibility changes.
	Regenerate() error
	BodyRowRange() (first, last int)
	CellText(row, column int) string
}

// Schedule is a schedule the collapse pass can read and modify.
type Schedule interface {
	Name() string
	ScheduleFieldProvider
	TableTextProvider
}

// ActiveViewProvider returns the active view when it is a schedule.
type ActiveViewProvider interface {
	CurrentView() (Schedule, bool)
}

// SelectionProvider exposes the current user selection.
type SelectionProvider interface {
	CurrentSelection() []ElementHandle
	ResolveSheetInstance(el ElementHandle) (SheetInstance, bool)
	Schedule(id ScheduleID) (Schedule, bool)
}

// UnitOfWork groups document mutations. Changes made after Begin are
// discarded by Rollback unless Commit succeeded first.
type UnitOfWork interface {
	Begin(label string) error
	Commit() error
	Rollback() error
}

// Host is the document the collapse pass runs against.
type Host interface {
	ActiveViewProvider
	SelectionProvider
	UnitOfWork
}

// Notifier shows the outcome of a pass to the user.
type Notifier interface {
	Show(title, body string)
}
