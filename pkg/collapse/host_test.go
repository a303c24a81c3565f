package collapse

import (
	"errors"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"
)

// fakeColumn is one schedule field with its body cell texts.
type fakeColumn struct {
	name   string
	hidden bool
	cells  []string
}

// fakeSchedule lays out only visible columns, like a host table would.
type fakeSchedule struct {
	name       string
	columns    []fakeColumn
	grid       [][]string
	rowCount   int
	setCalls   int
	failHideAt int
}

func newFakeSchedule(name string, cols ...fakeColumn) *fakeSchedule {
	s := &fakeSchedule{name: name, columns: cols, failHideAt: -1}
	s.layout()
	return s
}

func (s *fakeSchedule) layout() {
	s.grid = s.grid[:0]
	s.rowCount = 0
	for _, c := range s.columns {
		if c.hidden {
			continue
		}
		s.grid = append(s.grid, c.cells)
		if len(c.cells) > s.rowCount {
			s.rowCount = len(c.cells)
		}
	}
}

func (s *fakeSchedule) Name() string    { return s.name }
func (s *fakeSchedule) FieldCount() int { return len(s.columns) }

func (s *fakeSchedule) Field(i int) models.Field {
	return models.Field{Name: s.columns[i].name, Hidden: s.columns[i].hidden}
}

func (s *fakeSchedule) SetHidden(i int, hidden bool) error {
	if hidden && i == s.failHideAt {
		return errors.New("field is locked")
	}
	s.setCalls++
	s.columns[i].hidden = hidden
	return nil
}

func (s *fakeSchedule) Regenerate() error {
	s.layout()
	return nil
}

func (s *fakeSchedule) BodyRowRange() (int, int) {
	return 0, s.rowCount - 1
}

func (s *fakeSchedule) CellText(row, column int) string {
	if column < 0 || column >= len(s.grid) || row >= len(s.grid[column]) {
		return ""
	}
	return s.grid[column][row]
}

func (s *fakeSchedule) hiddenStates() []bool {
	out := make([]bool, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.hidden
	}
	return out
}

// fakeHost is a document with one active view and a sheet selection.
type fakeHost struct {
	active    *fakeSchedule
	selection []ElementHandle
	instances map[ElementHandle]SheetInstance
	schedules map[ScheduleID]*fakeSchedule

	began      int
	commits    int
	rollbacks  int
	snapshot   map[*fakeSchedule][]bool
	failCommit bool
}

func (h *fakeHost) CurrentView() (Schedule, bool) {
	if h.active == nil {
		return nil, false
	}
	return h.active, true
}

func (h *fakeHost) CurrentSelection() []ElementHandle { return h.selection }

func (h *fakeHost) ResolveSheetInstance(el ElementHandle) (SheetInstance, bool) {
	inst, ok := h.instances[el]
	return inst, ok
}

func (h *fakeHost) Schedule(id ScheduleID) (Schedule, bool) {
	s, ok := h.schedules[id]
	if !ok {
		return nil, false
	}
	return s, true
}

func (h *fakeHost) all() []*fakeSchedule {
	var out []*fakeSchedule
	if h.active != nil {
		out = append(out, h.active)
	}
	for _, s := range h.schedules {
		out = append(out, s)
	}
	return out
}

func (h *fakeHost) Begin(string) error {
	h.began++
	h.snapshot = make(map[*fakeSchedule][]bool)
	for _, s := range h.all() {
		h.snapshot[s] = s.hiddenStates()
	}
	return nil
}

func (h *fakeHost) Commit() error {
	if h.failCommit {
		return errors.New("document is read-only")
	}
	h.commits++
	h.snapshot = nil
	return nil
}

func (h *fakeHost) Rollback() error {
	h.rollbacks++
	for s, states := range h.snapshot {
		for i, hidden := range states {
			s.columns[i].hidden = hidden
		}
		s.layout()
	}
	h.snapshot = nil
	return nil
}

type recordingNotifier struct {
	title, body string
	calls       int
}

func (n *recordingNotifier) Show(title, body string) {
	n.calls++
	n.title, n.body = title, body
}
