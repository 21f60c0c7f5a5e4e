package repository

import "github.com/udyogbooks/backoffice-api/pkg/tabular"

// Sortable column whitelists per table. Sort keys arriving from the API
// are matched against these before being interpolated into ORDER BY.
var (
	quotationSortColumns = map[string]bool{
		"date":        true,
		"reference":   true,
		"client_name": true,
		"grand_total": true,
		"status":      true,
		"created_at":  true,
	}

	ticketSortColumns = map[string]bool{
		"date":        true,
		"reference":   true,
		"client_name": true,
		"grand_total": true,
		"status":      true,
		"created_at":  true,
	}

	challanSortColumns = map[string]bool{
		"date":           true,
		"reference":      true,
		"client_name":    true,
		"total_quantity": true,
		"status":         true,
		"created_at":     true,
	}

	timeLogSortColumns = map[string]bool{
		"date":       true,
		"hours":      true,
		"created_at": true,
	}

	clientSortColumns = map[string]bool{
		"name":       true,
		"created_at": true,
	}

	itemSortColumns = map[string]bool{
		"name":         true,
		"hsn_sac_code": true,
		"quantity":     true,
		"price":        true,
		"created_at":   true,
	}
)

// orderClause builds a safe ORDER BY clause. Unknown columns fall back
// to created_at and anything other than an explicit ascending order
// sorts descending. Both "asc" and "ascending" spellings are accepted.
func orderClause(sortBy, sortOrder string, allowed map[string]bool) string {
	column := "created_at"
	if allowed[sortBy] {
		column = sortBy
	}
	order := "DESC"
	if tabular.ParseDirection(sortOrder, tabular.Descending) == tabular.Ascending {
		order = "ASC"
	}
	return column + " " + order
}
