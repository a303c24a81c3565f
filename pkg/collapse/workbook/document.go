// Package workbook binds the collapse pass to schedules exported as xlsx.
//
// Each worksheet is a schedule: the header row holds the field names and a
// field is hidden when its sheet column is hidden.
package workbook

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/logging"
)

// ErrNoUnitOfWork indicates a mutation outside Begin/Commit.
var ErrNoUnitOfWork = errors.New("no open unit of work")

// ErrUnitOfWorkOpen indicates Begin was called twice without Commit or Rollback.
var ErrUnitOfWorkOpen = errors.New("unit of work already open")

// Options configures how a workbook is read.
type Options struct {
	// HeaderRow is the 1-based row holding field names.
	HeaderRow int
	// Selection lists worksheet names treated as selected sheet
	// instances. A non-empty selection means the active view is not a
	// schedule.
	Selection []string
}

// DefaultOptions returns default workbook options.
func DefaultOptions() Options {
	return Options{HeaderRow: 1}
}

// columnKey identifies one sheet column touched during a unit of work.
type columnKey struct {
	sheet string
	col   string
}

// Document is an xlsx workbook acting as the collapse host.
type Document struct {
	f      *excelize.File
	path   string
	opts   Options
	sheets map[string]*Sheet

	label   string
	open    bool
	journal map[columnKey]bool
	dirty   bool
}

var _ collapse.Host = (*Document)(nil)

// Open opens the workbook at path.
func Open(path string, opts Options) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return New(f, path, opts), nil
}

// New wraps an already opened workbook.
func New(f *excelize.File, path string, opts Options) *Document {
	if opts.HeaderRow < 1 {
		opts.HeaderRow = 1
	}
	return &Document{
		f:      f,
		path:   path,
		opts:   opts,
		sheets: make(map[string]*Sheet),
	}
}

// File returns the underlying workbook.
func (d *Document) File() *excelize.File {
	return d.f
}

// Close releases the workbook.
func (d *Document) Close() error {
	return d.f.Close()
}

// Dirty reports whether a committed unit of work changed the workbook.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Save writes the workbook to path, or back to the file it was opened
// from when path is empty.
func (d *Document) Save(path string) error {
	if d.open {
		return fmt.Errorf("cannot save during %q: %w", d.label, ErrUnitOfWorkOpen)
	}
	if path == "" {
		path = d.path
	}
	if path == "" {
		return errors.New("no output path")
	}
	return d.f.SaveAs(path)
}

// CurrentView returns the active worksheet unless a selection was given.
func (d *Document) CurrentView() (collapse.Schedule, bool) {
	if len(d.opts.Selection) > 0 {
		return nil, false
	}
	name := d.f.GetSheetName(d.f.GetActiveSheetIndex())
	return d.Schedule(collapse.ScheduleID(name))
}

// CurrentSelection returns the selected worksheet names.
func (d *Document) CurrentSelection() []collapse.ElementHandle {
	out := make([]collapse.ElementHandle, len(d.opts.Selection))
	for i, s := range d.opts.Selection {
		out[i] = collapse.ElementHandle(s)
	}
	return out
}

// ResolveSheetInstance resolves a selected worksheet name.
func (d *Document) ResolveSheetInstance(el collapse.ElementHandle) (collapse.SheetInstance, bool) {
	idx, err := d.f.GetSheetIndex(string(el))
	if err != nil || idx < 0 {
		return collapse.SheetInstance{}, false
	}
	return collapse.SheetInstance{Name: string(el), ScheduleID: collapse.ScheduleID(el)}, true
}

// Schedule returns the worksheet with the given name.
func (d *Document) Schedule(id collapse.ScheduleID) (collapse.Schedule, bool) {
	s, err := d.Sheet(string(id))
	if err != nil {
		logging.Logger().Debug().Err(err).Str("sheet", string(id)).Msg("schedule not available")
		return nil, false
	}
	return s, true
}

// Sheet returns the schedule view of a worksheet, loading it on first use.
func (d *Document) Sheet(name string) (*Sheet, error) {
	if s, ok := d.sheets[name]; ok {
		return s, nil
	}
	idx, err := d.f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", name)
	}
	s := &Sheet{doc: d, name: name}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	d.sheets[name] = s
	return s, nil
}

// Begin opens a unit of work.
func (d *Document) Begin(label string) error {
	if d.open {
		return ErrUnitOfWorkOpen
	}
	d.open = true
	d.label = label
	d.journal = make(map[columnKey]bool)
	logging.Logger().Debug().Str("label", label).Msg("unit of work started")
	return nil
}

// Commit keeps every change made since Begin. The document only becomes
// dirty when some column ends in a state different from before Begin.
func (d *Document) Commit() error {
	if !d.open {
		return ErrNoUnitOfWork
	}
	for key, was := range d.journal {
		visible, err := d.f.GetColVisible(key.sheet, key.col)
		if err != nil {
			return err
		}
		if visible != was {
			d.dirty = true
			break
		}
	}
	d.open = false
	d.journal = nil
	return nil
}

// Rollback restores every column touched since Begin. It is a no-op when
// no unit of work is open.
func (d *Document) Rollback() error {
	if !d.open {
		return nil
	}
	var errs []error
	for key, visible := range d.journal {
		if err := d.f.SetColVisible(key.sheet, key.col, visible); err != nil {
			errs = append(errs, err)
		}
	}
	for _, s := range d.sheets {
		if err := s.Regenerate(); err != nil {
			errs = append(errs, err)
		}
	}
	d.open = false
	d.journal = nil
	logging.Logger().Debug().Str("label", d.label).Msg("unit of work rolled back")
	return errors.Join(errs...)
}

// setColVisible changes a column inside the open unit of work, recording
// its first known state for rollback.
func (d *Document) setColVisible(sheet, col string, visible bool) error {
	if !d.open {
		return ErrNoUnitOfWork
	}
	key := columnKey{sheet: sheet, col: col}
	if _, seen := d.journal[key]; !seen {
		was, err := d.f.GetColVisible(sheet, col)
		if err != nil {
			return err
		}
		d.journal[key] = was
	}
	return d.f.SetColVisible(sheet, col, visible)
}
