package payment

import (
	"github.com/LeJamon/xrplprep/internal/core/tx"
)

// IsMaxAdjustment reports whether the source states a spending cap.
// The test is structural: the field must be present, whatever its value.
func IsMaxAdjustment(source Adjustment) bool {
	return source.MaxAmount != nil
}

// IsMinAdjustment reports whether the destination states a delivery floor.
func IsMinAdjustment(destination Adjustment) bool {
	return destination.MinAmount != nil
}

// IsXRPToXRP reports whether both effective amounts are denominated in
// the native asset, in either unit ("XRP" or "drops").
func IsXRPToXRP(intent Intent) bool {
	src := sourceAmount(intent.Source)
	dst := destinationAmount(intent.Destination)
	return src != nil && dst != nil && src.IsNative() && dst.IsNative()
}

// IsIssuedWithoutCounterparty reports whether an issued-currency amount
// leaves its counterparty unset, invoking the "any counterparty"
// convention.
func IsIssuedWithoutCounterparty(a tx.Amount) bool {
	return !a.IsNative() && a.Counterparty == ""
}

// sourceAmount returns the effective source amount: the cap when the
// source is max-bounded, the exact amount otherwise.
func sourceAmount(a Adjustment) *tx.Amount {
	if a.MaxAmount != nil {
		return a.MaxAmount
	}
	return a.Amount
}

// destinationAmount returns the effective destination amount: the floor
// when the destination is min-bounded, the exact amount otherwise.
func destinationAmount(a Adjustment) *tx.Amount {
	if a.MinAmount != nil {
		return a.MinAmount
	}
	return a.Amount
}

// resolveAnyCounterparty replaces an unset counterparty with the owning
// adjustment's own address. Every amount-like field present on either
// side is resolved, whether or not that field is relevant for the
// adjustment's role. Must only ever run on a working copy.
func resolveAnyCounterparty(intent *Intent) {
	for _, adj := range []*Adjustment{&intent.Source, &intent.Destination} {
		for _, amt := range []*tx.Amount{adj.Amount, adj.MinAmount, adj.MaxAmount} {
			if amt != nil && IsIssuedWithoutCounterparty(*amt) {
				amt.Counterparty = adj.Address
			}
		}
	}
}
