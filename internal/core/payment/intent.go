package payment

import (
	"github.com/LeJamon/xrplprep/internal/core/tx"
)

// Adjustment describes one side of a payment: an address, an optional
// integer tag, and exactly one way of stating the amount. A source uses
// Amount (exact) or MaxAmount (cap on what it will send); a destination
// uses Amount (exact) or MinAmount (floor on what it will accept).
// Presence of the bounded field, not its value, is the discriminator.
type Adjustment struct {
	Address   string     `json:"address"`
	Tag       *uint32    `json:"tag,omitempty"`
	Amount    *tx.Amount `json:"amount,omitempty"`
	MinAmount *tx.Amount `json:"minAmount,omitempty"`
	MaxAmount *tx.Amount `json:"maxAmount,omitempty"`
}

// Memo is a caller-supplied memo in plain text. Empty fields are absent.
type Memo struct {
	Data   string `json:"data,omitempty"`
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
}

// Intent is a caller's high-level payment description. It is read-only
// to the builder; preparation always works on a deep copy.
type Intent struct {
	Source              Adjustment `json:"source"`
	Destination         Adjustment `json:"destination"`
	InvoiceID           string     `json:"invoiceID,omitempty"`
	Memos               []Memo     `json:"memos,omitempty"`
	AllowPartialPayment bool       `json:"allowPartialPayment,omitempty"`
	LimitQuality        bool       `json:"limitQuality,omitempty"`
	NoDirectRipple      bool       `json:"noDirectRipple,omitempty"`
	// Paths is a serialized path set as produced by path-finding.
	Paths string `json:"paths,omitempty"`
}
