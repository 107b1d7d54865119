package tx

import (
	"fmt"

	"github.com/LeJamon/xrplprep/internal/core/amount"
)

// Amount is a caller-facing amount: a decimal value plus its currency,
// and the issuing counterparty when the currency is not XRP. The native
// asset may be written either as "XRP" (display units) or "drops"
// (base units); both name the same asset.
type Amount struct {
	Value        string `json:"value"`
	Currency     string `json:"currency"`
	Counterparty string `json:"counterparty,omitempty"`
}

// IsNative reports whether the amount is denominated in the native asset.
func (a Amount) IsNative() bool {
	return a.Currency == "XRP" || a.Currency == "drops"
}

// CurrencyAmount is the wire-ready shape of an issued currency amount.
type CurrencyAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
	Issuer   string `json:"issuer,omitempty"`
}

// FormatAmount renders an Amount in protocol form: a plain drops numeral
// string for the native asset, or a value/currency/issuer object for
// issued currencies.
func FormatAmount(a Amount) (any, error) {
	if !a.IsNative() {
		return CurrencyAmount{
			Currency: a.Currency,
			Value:    a.Value,
			Issuer:   a.Counterparty,
		}, nil
	}
	if a.Currency == "drops" {
		if _, err := amount.DropsToXRP(a.Value); err != nil {
			return nil, fmt.Errorf("format drops amount: %w", err)
		}
		return a.Value, nil
	}
	drops, err := amount.XRPToDrops(a.Value)
	if err != nil {
		return nil, fmt.Errorf("format XRP amount: %w", err)
	}
	return drops, nil
}
