package entity

import "github.com/shopspring/decimal"

func init() {
	// El backend espera importes y cantidades como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}
