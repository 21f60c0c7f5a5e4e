// Package ledger maintains the goods table of a quotation or ticket:
// line items with quantity and unit price whose amounts and aggregate
// totals are recomputed from scratch after every edit. There is no
// hidden aggregate state that could drift from the rows.
package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultTaxRate is the GST rate applied when the caller does not
// supply one.
const DefaultTaxRate = 0.18

// LineItem is one row of a goods table.
type LineItem struct {
	SrNo        int     `json:"sr_no"`
	Description string  `json:"description"`
	HSNSACCode  string  `json:"hsn_sac_code"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      float64 `json:"amount"`
}

// Totals are the derived aggregates of a goods table. They are never
// stored independently; recompute them whenever the rows change.
type Totals struct {
	TotalQuantity float64 `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
	GSTAmount     float64 `json:"gst_amount"`
	GrandTotal    float64 `json:"grand_total"`
}

// AddRow appends a fresh line item. The new row's serial number is
// one past the current length; existing rows are never renumbered.
func AddRow(items []LineItem) []LineItem {
	out := make([]LineItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, LineItem{
		SrNo:     len(items) + 1,
		Quantity: 1,
	})
}

// EditField returns a new list with items[index][field] set to value.
// Editing quantity or price recomputes the row's amount from the
// post-edit values. Non-numeric input for a numeric field propagates
// NaN into the amount; Validate catches that before submission.
func EditField(items []LineItem, index int, field string, value any) ([]LineItem, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("ledger: row index %d out of range", index)
	}

	out := make([]LineItem, len(items))
	copy(out, items)
	item := &out[index]

	switch field {
	case "description":
		item.Description = asString(value)
	case "hsn_sac_code":
		item.HSNSACCode = asString(value)
	case "quantity":
		item.Quantity = toNumber(value)
	case "price":
		item.Price = toNumber(value)
	default:
		return nil, fmt.Errorf("ledger: unknown field %q", field)
	}

	item.Amount = item.Quantity * item.Price
	return out, nil
}

// Recalculate enforces amount = quantity * price and 1-based serial
// numbers on every row. Services run it on create/update so that
// client-supplied derived values are never trusted.
func Recalculate(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].SrNo = i + 1
		out[i].Amount = out[i].Quantity * out[i].Price
	}
	return out
}

// ComputeTotals aggregates the goods table from scratch. A taxRate of
// zero or less falls back to DefaultTaxRate; pass packingCharges as 0
// for documents that have none.
func ComputeTotals(items []LineItem, packingCharges, taxRate float64) Totals {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}

	var t Totals
	for _, item := range items {
		t.TotalQuantity += item.Quantity
		t.TotalAmount += item.Amount
	}
	t.GSTAmount = t.TotalAmount * taxRate
	t.GrandTotal = t.TotalAmount + t.GSTAmount + packingCharges
	return t
}

// Validate is the submission gate. The arithmetic above reflects
// garbage in as garbage out; this is where an empty goods list, blank
// descriptions and NaN or negative numbers are rejected.
func Validate(items []LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("goods list cannot be empty")
	}
	for i, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			return fmt.Errorf("row %d: description is required", i+1)
		}
		if math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) || item.Quantity < 0 {
			return fmt.Errorf("row %d: quantity must be a non-negative number", i+1)
		}
		if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
			return fmt.Errorf("row %d: price must be a non-negative number", i+1)
		}
	}
	return nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toNumber mirrors loose numeric coercion: numeric types pass through,
// strings parse, everything else (including empty string mid-edit)
// yields NaN.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
