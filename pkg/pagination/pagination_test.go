package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		in          Params
		wantPage    int
		wantPerPage int
	}{
		{"defaults on zero", Params{}, 1, 15},
		{"negative page clamps", Params{Page: -3, PerPage: 20}, 1, 20},
		{"per page capped", Params{Page: 2, PerPage: 500}, 2, 100},
		{"valid passes through", Params{Page: 4, PerPage: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPerPage, tt.in.PerPage)
		})
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 5, PerPage: 5}
	assert.Equal(t, 20, p.Offset())
}

func TestNew(t *testing.T) {
	pag := New(5, 5, 23)

	assert.Equal(t, 5, pag.TotalPages)
	assert.Equal(t, int64(23), pag.Total)
	assert.False(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	first := New(1, 5, 23)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)
}
