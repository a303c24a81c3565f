package models

// Decision is the classification outcome for one weight column.
type Decision string

const (
	// DecisionCollapse hides the column: it holds zeros and no positive value.
	DecisionCollapse Decision = "collapse"
	// DecisionKeep leaves the column visible.
	DecisionKeep Decision = "keep"
)

// ColumnResult records the decision for a single field.
type ColumnResult struct {
	// Index is the field index in the schedule definition.
	Index int `json:"index"`
	// Name is the field heading.
	Name string `json:"name"`
	// WasHidden is the hidden state before the pass touched the column.
	WasHidden bool `json:"was_hidden"`
	// Decision is the classification outcome.
	Decision Decision `json:"decision"`
}

// Changed reports whether applying the decision flips the column state.
func (c ColumnResult) Changed() bool {
	if c.Decision == DecisionCollapse {
		return !c.WasHidden
	}
	return c.WasHidden
}

// Classification groups field indices by outcome.
type Classification struct {
	// Collapsed holds fields that were visible and become hidden.
	Collapsed []int `json:"collapsed"`
	// Opened holds fields that were hidden and become visible.
	Opened []int `json:"opened"`
	// KeptHidden holds fields that were hidden and stay hidden.
	KeptHidden []int `json:"kept_hidden"`
	// KeptVisible holds fields that were visible and stay visible.
	KeptVisible []int `json:"kept_visible"`
}

// Add files a column result into the matching set.
func (c *Classification) Add(r ColumnResult) {
	switch {
	case r.Decision == DecisionCollapse && !r.WasHidden:
		c.Collapsed = append(c.Collapsed, r.Index)
	case r.Decision == DecisionCollapse:
		c.KeptHidden = append(c.KeptHidden, r.Index)
	case r.WasHidden:
		c.Opened = append(c.Opened, r.Index)
	default:
		c.KeptVisible = append(c.KeptVisible, r.Index)
	}
}

// Report describes a completed collapse pass.
type Report struct {
	// Schedule is the name of the processed schedule.
	Schedule string `json:"schedule"`
	// Range is the detected weight column range.
	Range ColumnRange `json:"range"`
	// Rows is the body row range scanned.
	Rows RowRange `json:"rows"`
	// Columns lists per-column decisions in field order.
	Columns []ColumnResult `json:"columns"`
	// ColumnsHidden counts columns that went from visible to hidden.
	ColumnsHidden int `json:"columns_hidden"`
	// ColumnsOpened counts columns that went from hidden to visible.
	ColumnsOpened int `json:"columns_opened"`
	// Title is the notification title.
	Title string `json:"title"`
	// Message is the human-readable summary.
	Message string `json:"message"`
}

// Changed reports whether the pass altered any column.
func (r *Report) Changed() bool {
	return r.ColumnsHidden > 0 || r.ColumnsOpened > 0
}
