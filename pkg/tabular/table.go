package tabular

import (
	"fmt"
)

// Column is the declarative description of one table column.
type Column struct {
	// Key identifies the field; dot paths into nested maps are allowed.
	Key string
	// Header is the display label.
	Header string
	// NoSort disables header-click sorting for this column. Columns are
	// sortable by default.
	NoSort bool
	// Get, when set, resolves the raw cell value instead of the Key path.
	Get func(Row) any
	// Render, when set, produces the display text for a cell instead of
	// the default value formatting.
	Render func(Row) string
}

// State is the rendering state of a table. Error takes precedence over
// loading, loading over empty, empty over data.
type State string

const (
	StateData    State = "data"
	StateLoading State = "loading"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// Indicator is the sort affordance shown on a header cell.
type Indicator string

const (
	IndicatorNone    Indicator = ""
	IndicatorNeutral Indicator = "⇵"
	IndicatorAsc     Indicator = "▲"
	IndicatorDesc    Indicator = "▼"
)

// HeaderCell is one rendered column header.
type HeaderCell struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Sortable  bool      `json:"sortable"`
	Indicator Indicator `json:"indicator,omitempty"`
}

// Command is a tagged action emitted for a row. Consumers dispatch on
// the Action tag rather than wiring one callback per action.
type Command struct {
	Action string `json:"action"`
	RowID  string `json:"row_id"`
}

// BodyRow is one rendered data row.
type BodyRow struct {
	ID       string    `json:"id"`
	Cells    []string  `json:"cells"`
	Commands []Command `json:"commands,omitempty"`
}

// Options controls table rendering.
type Options struct {
	// KeyField names the row field holding the row identity (often "id").
	KeyField string
	// Loading renders the loading state when no error is set.
	Loading bool
	// Error, when non-empty, renders the error state exclusively.
	Error string
	// NoDataMessage is shown when the collection is empty.
	NoDataMessage string
	// Sort enables sortable headers and marks the active column. Nil
	// disables sorting affordances entirely.
	Sort *SortConfig
	// Actions lists the command tags attached to every row. A non-empty
	// list appends an actions header.
	Actions []string
	// ActionsHeader overrides the default "Actions" label.
	ActionsHeader string
}

// Table is the fully rendered view of a collection: headers, body rows
// and the state banner. It is plain data, ready for JSON or an export
// writer; it performs no I/O and holds no callbacks.
type Table struct {
	State   State        `json:"state"`
	Message string       `json:"message,omitempty"`
	Headers []HeaderCell `json:"headers"`
	Rows    []BodyRow    `json:"rows"`
	// Span is the full width in columns, used by single-cell state rows.
	Span int `json:"span"`
}

// View renders rows through a column spec. A column with an empty or
// duplicate key is a programmer error and fails immediately.
func View(columns []Column, rows []Row, opts Options) (*Table, error) {
	if err := validateColumns(columns); err != nil {
		return nil, err
	}

	hasActions := len(opts.Actions) > 0
	span := len(columns)
	if hasActions {
		span++
	}

	t := &Table{
		Headers: buildHeaders(columns, opts),
		Span:    span,
	}

	switch {
	case opts.Error != "":
		t.State = StateError
		t.Message = opts.Error
		return t, nil
	case opts.Loading:
		t.State = StateLoading
		t.Message = "Loading..."
		return t, nil
	case len(rows) == 0:
		t.State = StateEmpty
		t.Message = opts.NoDataMessage
		return t, nil
	}

	t.State = StateData
	t.Rows = make([]BodyRow, 0, len(rows))
	for _, row := range rows {
		t.Rows = append(t.Rows, renderRow(columns, row, opts, hasActions))
	}
	return t, nil
}

func validateColumns(columns []Column) error {
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if col.Key == "" {
			return fmt.Errorf("tabular: column %d has no key", i)
		}
		if seen[col.Key] {
			return fmt.Errorf("tabular: duplicate column key %q", col.Key)
		}
		seen[col.Key] = true
	}
	return nil
}

func buildHeaders(columns []Column, opts Options) []HeaderCell {
	headers := make([]HeaderCell, 0, len(columns)+1)
	for _, col := range columns {
		h := HeaderCell{
			Key:      col.Key,
			Label:    col.Header,
			Sortable: opts.Sort != nil && !col.NoSort,
		}
		if h.Sortable {
			h.Indicator = IndicatorNeutral
			if opts.Sort.Key == col.Key {
				if opts.Sort.Direction == Descending {
					h.Indicator = IndicatorDesc
				} else {
					h.Indicator = IndicatorAsc
				}
			}
		}
		headers = append(headers, h)
	}
	if len(opts.Actions) > 0 {
		label := opts.ActionsHeader
		if label == "" {
			label = "Actions"
		}
		headers = append(headers, HeaderCell{Key: "_actions", Label: label})
	}
	return headers
}

func renderRow(columns []Column, row Row, opts Options, hasActions bool) BodyRow {
	id := ""
	if opts.KeyField != "" {
		if v, ok := Value(row, opts.KeyField); ok {
			id = FormatValue(v)
		}
	}

	cells := make([]string, 0, len(columns))
	for _, col := range columns {
		if col.Render != nil {
			cells = append(cells, col.Render(row))
			continue
		}
		var v any
		if col.Get != nil {
			v = col.Get(row)
		} else {
			v, _ = Value(row, col.Key)
		}
		cells = append(cells, FormatValue(v))
	}

	br := BodyRow{ID: id, Cells: cells}
	if hasActions {
		br.Commands = make([]Command, 0, len(opts.Actions))
		for _, action := range opts.Actions {
			br.Commands = append(br.Commands, Command{Action: action, RowID: id})
		}
	}
	return br
}
