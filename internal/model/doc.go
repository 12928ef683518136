// Package model holds the records exchanged with the remote tourism API.
// JSON field names match the API exactly.
package model

import "github.com/shopspring/decimal"

func init() {
	// The API expects prices and totals as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
