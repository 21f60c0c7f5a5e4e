package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestSort(t *testing.T) {
	tests := []struct {
		name    string
		current SortConfig
		key     string
		want    SortConfig
	}{
		{
			name:    "new key starts ascending",
			current: SortConfig{},
			key:     "reference",
			want:    SortConfig{Key: "reference", Direction: Ascending},
		},
		{
			name:    "same key toggles to descending",
			current: SortConfig{Key: "reference", Direction: Ascending},
			key:     "reference",
			want:    SortConfig{Key: "reference", Direction: Descending},
		},
		{
			name:    "same key toggles back to ascending",
			current: SortConfig{Key: "reference", Direction: Descending},
			key:     "reference",
			want:    SortConfig{Key: "reference", Direction: Ascending},
		},
		{
			name:    "switching column resets to ascending",
			current: SortConfig{Key: "reference", Direction: Descending},
			key:     "date",
			want:    SortConfig{Key: "date", Direction: Ascending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequestSort(tt.current, tt.key))
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		fallback Direction
		want     Direction
	}{
		{"asc", Descending, Ascending},
		{"ASC", Descending, Ascending},
		{"ascending", Descending, Ascending},
		{"Ascending", Descending, Ascending},
		{"desc", Ascending, Descending},
		{"descending", Ascending, Descending},
		{" desc ", Ascending, Descending},
		{"", Ascending, Ascending},
		{"", Descending, Descending},
		{"sideways", Ascending, Ascending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDirection(tt.in, tt.fallback), "input %q", tt.in)
	}
}

func TestRequestSortNeverUnsets(t *testing.T) {
	cfg := RequestSort(SortConfig{}, "v")
	for i := 0; i < 10; i++ {
		cfg = RequestSort(cfg, "v")
		assert.Equal(t, "v", cfg.Key)
	}
}

func TestApplySortAscending(t *testing.T) {
	rows := []Row{{"v": 3}, {"v": 1}, {"v": 2}}

	got := ApplySort(rows, SortConfig{Key: "v", Direction: Ascending})

	assert.Equal(t, []Row{{"v": 1}, {"v": 2}, {"v": 3}}, got)
	// original untouched
	assert.Equal(t, []Row{{"v": 3}, {"v": 1}, {"v": 2}}, rows)
}

func TestApplySortIdempotent(t *testing.T) {
	rows := []Row{{"v": 3}, {"v": 1}, {"v": 2}}
	cfg := SortConfig{Key: "v", Direction: Ascending}

	once := ApplySort(rows, cfg)
	twice := ApplySort(once, cfg)

	assert.Equal(t, once, twice)
}

func TestApplySortStable(t *testing.T) {
	rows := []Row{
		{"v": 1, "tag": "a"},
		{"v": 2, "tag": "b"},
		{"v": 1, "tag": "c"},
		{"v": 1, "tag": "d"},
	}

	got := ApplySort(rows, SortConfig{Key: "v", Direction: Ascending})

	tags := []string{}
	for _, r := range got {
		if r["v"] == 1 {
			tags = append(tags, r["tag"].(string))
		}
	}
	assert.Equal(t, []string{"a", "c", "d"}, tags)
}

func TestApplySortEmptyKeyIsNoOp(t *testing.T) {
	rows := []Row{{"v": 3}, {"v": 1}}
	got := ApplySort(rows, SortConfig{})
	assert.Equal(t, rows, got)
}

func TestApplySortDescending(t *testing.T) {
	rows := []Row{{"v": "b"}, {"v": "c"}, {"v": "a"}}
	got := ApplySort(rows, SortConfig{Key: "v", Direction: Descending})
	assert.Equal(t, []Row{{"v": "c"}, {"v": "b"}, {"v": "a"}}, got)
}

func TestApplySortDates(t *testing.T) {
	// Lexical order would put "2024-2-01" after "2024-10-01"; date
	// comparison must not.
	rows := []Row{
		{"date": "2024-10-01"},
		{"date": "2024-02-01"},
		{"date": time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := ApplySort(rows, SortConfig{Key: "date", Direction: Ascending})

	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), got[0]["date"])
	assert.Equal(t, "2024-02-01", got[1]["date"])
	assert.Equal(t, "2024-10-01", got[2]["date"])
}

func TestApplySortNumericStrings(t *testing.T) {
	rows := []Row{
		{"grandTotal": "900"},
		{"grandTotal": "1200"},
		{"grandTotal": "305"},
	}

	got := ApplySort(rows, SortConfig{Key: "grandTotal", Direction: Ascending})

	assert.Equal(t, "305", got[0]["grandTotal"])
	assert.Equal(t, "900", got[1]["grandTotal"])
	assert.Equal(t, "1200", got[2]["grandTotal"])
}

func TestApplySortNilFirstBothDirections(t *testing.T) {
	rows := []Row{{"v": 2}, {}, {"v": 1}}

	asc := ApplySort(rows, SortConfig{Key: "v", Direction: Ascending})
	assert.Nil(t, asc[0]["v"])
	assert.Equal(t, 1, asc[1]["v"])

	desc := ApplySort(rows, SortConfig{Key: "v", Direction: Descending})
	assert.Equal(t, 2, desc[0]["v"])
	assert.Nil(t, desc[2]["v"])
}

func TestApplySortDottedPath(t *testing.T) {
	rows := []Row{
		{"client": map[string]any{"email": "zara@x.in"}},
		{"client": map[string]any{"email": "amit@x.in"}},
	}

	got := ApplySort(rows, SortConfig{Key: "client.email", Direction: Ascending})

	assert.Equal(t, "amit@x.in", got[0]["client"].(map[string]any)["email"])
}

func TestValue(t *testing.T) {
	row := Row{
		"name": "Acme",
		"client": map[string]any{
			"contact": map[string]any{"phone": "98765"},
		},
	}

	v, ok := Value(row, "name")
	assert.True(t, ok)
	assert.Equal(t, "Acme", v)

	v, ok = Value(row, "client.contact.phone")
	assert.True(t, ok)
	assert.Equal(t, "98765", v)

	_, ok = Value(row, "client.missing")
	assert.False(t, ok)

	_, ok = Value(row, "name.too.deep")
	assert.False(t, ok)
}
