package collapse

import (
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/logging"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/parser"
)

// CellTextFunc returns the text of a cell in the laid-out grid.
type CellTextFunc func(row, column int) string

// ClassifyColumns classifies the weight columns of fields using the default
// options. See Options.ClassifyColumns.
func ClassifyColumns(fields []models.Field, lookup CellTextFunc, rows models.RowRange) (models.Classification, error) {
	return DefaultOptions().ClassifyColumns(fields, lookup, rows)
}

// ClassifyColumns finds the weight range in fields and classifies every
// column in it without touching any document. lookup must address a grid in
// which all weight columns are visible while the other fields keep the
// hidden state given in fields.
func (o Options) ClassifyColumns(fields []models.Field, lookup CellTextFunc, rows models.RowRange) (models.Classification, error) {
	var out models.Classification
	rng, err := parser.FindRange(fields)
	if err != nil {
		return out, ErrNoTerminatorColumn
	}
	for _, r := range classifyRange(fields, rng, rows, lookup, o.Locale) {
		out.Add(r)
	}
	return out, nil
}

// classifyRange reads every body cell of each weight column and applies the
// only-text-and-zeros rule. fields carry the hidden state before the pass.
func classifyRange(fields []models.Field, rng models.ColumnRange, rows models.RowRange, lookup CellTextFunc, loc parser.Locale) []models.ColumnResult {
	log := logging.Logger()
	results := make([]models.ColumnResult, 0, rng.Len())

	for i := rng.First; i < rng.Terminator; i++ {
		col := rng.PhysicalColumn(i)
		var values []string
		for j := rows.First; j <= rows.Last; j++ {
			values = append(values, lookup(j, col))
		}

		decision := models.DecisionKeep
		if parser.OnlyTextAndZeros(values, loc) {
			decision = models.DecisionCollapse
		}

		log.Debug().
			Int("field", i).
			Str("name", fields[i].Name).
			Int("column", col).
			Int("cells", len(values)).
			Str("decision", string(decision)).
			Msg("classified column")

		results = append(results, models.ColumnResult{
			Index:     i,
			Name:      fields[i].Name,
			WasHidden: fields[i].Hidden,
			Decision:  decision,
		})
	}

	return results
}
