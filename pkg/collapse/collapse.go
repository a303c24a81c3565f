package collapse

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/logging"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/messages"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/parser"
)

// Run resolves the target schedule, hides weight columns holding only text
// and zeros, reopens hidden ones holding positive values, and commits the
// changes as one unit of work. On error nothing is committed.
// notifier may be nil.
func Run(host Host, notifier Notifier, opts Options) (*models.Report, error) {
	log := logging.Logger()

	sched, err := ResolveTarget(host, opts)
	if err != nil {
		return nil, err
	}
	name := sched.Name()

	fields := ReadFields(sched)
	rng, err := parser.FindRange(fields)
	if err != nil {
		return nil, NewOperationError(name, StageRange, opts.message(messages.ErrorNoEndColumn), ErrNoTerminatorColumn)
	}
	log.Info().
		Str("schedule", name).
		Int("first", rng.First).
		Int("terminator", rng.Terminator).
		Int("start_hidden", rng.StartHidden).
		Msg("weight range found")

	if err := host.Begin(opts.message(messages.TransactionName)); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if err := host.Rollback(); err != nil {
			log.Error().Err(err).Str("schedule", name).Msg("rollback failed")
		}
	}()

	// Cell text is only addressable for visible columns, so the whole
	// range is opened before the grid is laid out again.
	for i := rng.First; i < rng.Terminator; i++ {
		if err := sched.SetHidden(i, false); err != nil {
			return nil, NewOperationError(name, StageClassify, "", fmt.Errorf("failed to show field %d: %w", i, err))
		}
	}
	if err := sched.Regenerate(); err != nil {
		return nil, NewOperationError(name, StageClassify, "", fmt.Errorf("failed to regenerate: %w", err))
	}
	first, last := sched.BodyRowRange()
	rows := models.RowRange{First: first, Last: last}

	results := classifyRange(fields, rng, rows, sched.CellText, opts.Locale)

	report := &models.Report{
		Schedule: name,
		Range:    rng,
		Rows:     rows,
		Columns:  results,
	}
	for _, r := range results {
		if r.Decision == models.DecisionCollapse {
			if err := sched.SetHidden(r.Index, true); err != nil {
				return nil, NewOperationError(name, StageApply, "", fmt.Errorf("failed to hide field %d: %w", r.Index, err))
			}
			if !r.WasHidden {
				report.ColumnsHidden++
			}
			continue
		}
		if r.WasHidden {
			report.ColumnsOpened++
		}
	}

	if err := host.Commit(); err != nil {
		return nil, NewOperationError(name, StageApply, "", fmt.Errorf("failed to commit: %w", err))
	}
	committed = true

	report.Title = opts.message(messages.Result)
	report.Message = Summary(report, opts)
	log.Info().
		Str("schedule", name).
		Int("hidden", report.ColumnsHidden).
		Int("opened", report.ColumnsOpened).
		Msg("collapse committed")

	if notifier != nil {
		notifier.Show(report.Title, report.Message)
	}
	return report, nil
}

// ReadFields snapshots the field definitions of a schedule.
func ReadFields(s ScheduleFieldProvider) []models.Field {
	n := s.FieldCount()
	fields := make([]models.Field, n)
	for i := 0; i < n; i++ {
		fields[i] = s.Field(i)
	}
	return fields
}

// Summary builds the user message for a report.
func Summary(r *models.Report, opts Options) string {
	if !r.Changed() {
		return opts.message(messages.ResultNoFields)
	}
	return strings.Join([]string{
		opts.message(messages.ResultMessage),
		fmt.Sprintf("%s: %d", opts.message(messages.ResultMessageHidden), r.ColumnsHidden),
		fmt.Sprintf("%s: %d", opts.message(messages.ResultMessageOpened), r.ColumnsOpened),
	}, "\n")
}
