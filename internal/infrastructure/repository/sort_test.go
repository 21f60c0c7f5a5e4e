package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"short ascending", "date", "asc", "date ASC"},
		{"upper short ascending", "date", "ASC", "date ASC"},
		{"long ascending", "date", "ascending", "date ASC"},
		{"long descending", "date", "descending", "date DESC"},
		{"short descending", "reference", "desc", "reference DESC"},
		{"empty order defaults descending", "grand_total", "", "grand_total DESC"},
		{"garbage order defaults descending", "date", "sideways", "date DESC"},
		{"unknown column falls back", "reference; DROP TABLE tickets", "ascending", "created_at ASC"},
		{"empty column falls back", "", "asc", "created_at ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.sortOrder, ticketSortColumns))
		})
	}
}
