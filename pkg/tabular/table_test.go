package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []Column {
	return []Column{
		{Key: "reference", Header: "Reference"},
		{Key: "client_name", Header: "Client"},
		{Key: "grand_total", Header: "Grand Total"},
	}
}

func TestViewEmptyState(t *testing.T) {
	table, err := View(testColumns(), nil, Options{NoDataMessage: "No quotations found"})
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, table.State)
	assert.Equal(t, "No quotations found", table.Message)
	assert.Empty(t, table.Rows)
	assert.Equal(t, 3, table.Span)
}

func TestViewErrorTakesPrecedence(t *testing.T) {
	rows := []Row{{"reference": "QT-000001"}}

	table, err := View(testColumns(), rows, Options{
		Error:   "failed to fetch quotations",
		Loading: true,
	})
	require.NoError(t, err)

	assert.Equal(t, StateError, table.State)
	assert.Equal(t, "failed to fetch quotations", table.Message)
	assert.Empty(t, table.Rows, "error state must not leak data rows")
}

func TestViewLoadingState(t *testing.T) {
	rows := []Row{{"reference": "QT-000001"}}

	table, err := View(testColumns(), rows, Options{Loading: true})
	require.NoError(t, err)

	assert.Equal(t, StateLoading, table.State)
	assert.Empty(t, table.Rows)
}

func TestViewRendersRows(t *testing.T) {
	rows := []Row{
		{"id": "q1", "reference": "QT-000001", "client_name": "Acme", "grand_total": 305.0},
		{"id": "q2", "reference": "QT-000002", "client_name": "Globex", "grand_total": 1180.5},
	}

	table, err := View(testColumns(), rows, Options{KeyField: "id"})
	require.NoError(t, err)

	assert.Equal(t, StateData, table.State)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "q1", table.Rows[0].ID)
	assert.Equal(t, []string{"QT-000001", "Acme", "305"}, table.Rows[0].Cells)
	assert.Equal(t, []string{"QT-000002", "Globex", "1180.5"}, table.Rows[1].Cells)
}

func TestViewCustomRenderAndAccessor(t *testing.T) {
	cols := []Column{
		{Key: "status", Header: "Status", Render: func(r Row) string {
			if r["status"] == 1 {
				return "Sent"
			}
			return "Draft"
		}},
		{Key: "contact", Header: "Contact", Get: func(r Row) any {
			return r["email"]
		}},
	}
	rows := []Row{{"status": 1, "email": "ops@acme.in"}}

	table, err := View(cols, rows, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sent", "ops@acme.in"}, table.Rows[0].Cells)
}

func TestViewSortIndicators(t *testing.T) {
	cols := []Column{
		{Key: "reference", Header: "Reference"},
		{Key: "date", Header: "Date"},
		{Key: "note", Header: "Note", NoSort: true},
	}
	sort := SortConfig{Key: "date", Direction: Descending}

	table, err := View(cols, nil, Options{Sort: &sort, NoDataMessage: "empty"})
	require.NoError(t, err)

	assert.True(t, table.Headers[0].Sortable)
	assert.Equal(t, IndicatorNeutral, table.Headers[0].Indicator)
	assert.Equal(t, IndicatorDesc, table.Headers[1].Indicator)
	assert.False(t, table.Headers[2].Sortable)
	assert.Equal(t, IndicatorNone, table.Headers[2].Indicator)
}

func TestViewNoSortDisablesHeaders(t *testing.T) {
	table, err := View(testColumns(), nil, Options{NoDataMessage: "empty"})
	require.NoError(t, err)

	for _, h := range table.Headers {
		assert.False(t, h.Sortable)
	}
}

func TestViewActions(t *testing.T) {
	rows := []Row{{"id": "t1", "reference": "TK-000001"}}

	table, err := View([]Column{{Key: "reference", Header: "Reference"}}, rows, Options{
		KeyField: "id",
		Actions:  []string{"edit", "delete"},
	})
	require.NoError(t, err)

	require.Len(t, table.Headers, 2)
	assert.Equal(t, "Actions", table.Headers[1].Label)
	assert.Equal(t, 2, table.Span)
	assert.Equal(t, []Command{
		{Action: "edit", RowID: "t1"},
		{Action: "delete", RowID: "t1"},
	}, table.Rows[0].Commands)
}

func TestViewZeroColumns(t *testing.T) {
	// Degenerate but valid: only the actions column, or nothing at all.
	table, err := View(nil, []Row{{"id": "x"}}, Options{KeyField: "id", Actions: []string{"view"}})
	require.NoError(t, err)
	require.Len(t, table.Headers, 1)
	assert.Equal(t, 1, table.Span)

	table, err = View(nil, nil, Options{NoDataMessage: "nothing"})
	require.NoError(t, err)
	assert.Empty(t, table.Headers)
	assert.Equal(t, 0, table.Span)
}

func TestViewRejectsMalformedColumns(t *testing.T) {
	_, err := View([]Column{{Header: "No Key"}}, nil, Options{})
	assert.Error(t, err)

	_, err = View([]Column{
		{Key: "v", Header: "A"},
		{Key: "v", Header: "B"},
	}, nil, Options{})
	assert.Error(t, err)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name       string
		page       int
		perPage    int
		wantLen    int
		wantFirst  int
		wantPages  int
	}{
		{"first page", 1, 5, 5, 1, 5},
		{"middle page", 3, 5, 5, 11, 5},
		{"last partial page", 5, 5, 3, 21, 5},
		{"page past end clamps", 9, 5, 3, 21, 5},
		{"page zero clamps to first", 0, 5, 5, 1, 5},
		{"per page over size", 1, 100, 23, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, totalPages := Paginate(items, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, totalPages)
			require.Len(t, page, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page[0])
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, totalPages := Paginate([]int{}, 1, 5)
	assert.Empty(t, page)
	assert.Equal(t, 1, totalPages)
}
