package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyogbooks/backoffice-api/pkg/tabular"
)

func sampleTable(t *testing.T) *tabular.Table {
	t.Helper()
	columns := []tabular.Column{
		{Key: "reference", Header: "Reference"},
		{Key: "client", Header: "Client"},
		{Key: "grand_total", Header: "Grand Total"},
	}
	rows := []tabular.Row{
		{"id": "1", "reference": "QT-000001", "client": "Acme", "grand_total": 305.0},
		{"id": "2", "reference": "QT-000002", "client": "Globex", "grand_total": 120.5},
	}
	table, err := tabular.View(columns, rows, tabular.Options{KeyField: "id"})
	require.NoError(t, err)
	return table
}

func TestCSV(t *testing.T) {
	table := sampleTable(t)

	out, err := CSV(table)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Reference", "Client", "Grand Total"}, records[0])
	assert.Equal(t, []string{"QT-000001", "Acme", "305"}, records[1])
	assert.Equal(t, []string{"QT-000002", "Globex", "120.5"}, records[2])
}

func TestExcel(t *testing.T) {
	table := sampleTable(t)

	out, err := Excel("Quotations", table)
	require.NoError(t, err)
	// xlsx files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}

func TestPDF(t *testing.T) {
	doc := Document{
		Title:      "QUOTATION",
		Reference:  "QT-000001",
		Date:       "2024-05-01",
		ClientName: "Acme Traders",
		Lines: []DocumentLine{
			{SrNo: 1, Description: "Widget", HSNSACCode: "8409", Quantity: 2, Price: 50, Amount: 100},
		},
		TotalQuantity:  2,
		TotalAmount:    100,
		GSTAmount:      18,
		GrandTotal:     118,
		BusinessName:   "UdyogBooks",
		BusinessAddress: "Industrial Area, Pune",
	}

	out, err := PDF(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFHidePrices(t *testing.T) {
	doc := Document{
		Title:      "DELIVERY CHALLAN",
		Reference:  "DC-000004",
		Date:       "2024-05-02",
		ClientName: "Globex",
		HidePrices: true,
		Lines: []DocumentLine{
			{SrNo: 1, Description: "Gear Assembly", HSNSACCode: "8483", Quantity: 4},
		},
		TotalQuantity: 4,
		BusinessName:  "UdyogBooks",
	}

	out, err := PDF(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
