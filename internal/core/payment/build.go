package payment

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/LeJamon/xrplprep/internal/core/tx"
)

// Ceilings used for the declared Amount when the destination is
// min-bounded: the protocol treats Amount as an upper cap on delivered
// value alongside DeliverMin, so it must not become the binding
// constraint.
const (
	// maxXRPValue is the total possible XRP supply, in XRP.
	maxXRPValue = "100000000000"
	// maxIssuedValue is the largest representable issued-currency value.
	maxIssuedValue = "9999999999999999e80"
)

// BuildPayment assembles an unsigned Payment draft from a caller intent.
// The caller's intent is never mutated; counterparty resolution runs on
// a deep copy.
func BuildPayment(address string, intent *Intent) (*tx.Payment, error) {
	var working Intent
	if err := copier.CopyWithOption(&working, intent, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy payment intent: %w", err)
	}
	resolveAnyCounterparty(&working)

	if address != working.Source.Address {
		return nil, tx.NewValidationError("address must match payment.source.address")
	}

	srcMax := IsMaxAdjustment(working.Source)
	dstMin := IsMinAdjustment(working.Destination)
	srcExact := working.Source.Amount != nil
	dstExact := working.Destination.Amount != nil
	if !((srcMax && dstExact && !srcExact && !dstMin) ||
		(srcExact && dstMin && !srcMax && !dstExact)) {
		return nil, tx.NewValidationError(
			"payment must specify either (source.maxAmount and destination.amount) or " +
				"(source.amount and destination.minAmount)")
	}

	srcAmount := sourceAmount(working.Source)
	dstAmount := destinationAmount(working.Destination)
	xrpToXRP := IsXRPToXRP(working)

	if xrpToXRP && working.AllowPartialPayment {
		return nil, tx.NewValidationError("XRP to XRP payments cannot be partial payments")
	}

	draft := tx.NewPayment(working.Source.Address, working.Destination.Address)

	declared := *dstAmount
	if dstMin && !xrpToXRP {
		// Amount caps delivered value when DeliverMin is used, so declare
		// the maximal amount for the destination currency instead of the
		// literal bound.
		if declared.IsNative() {
			declared.Currency = "XRP"
			declared.Value = maxXRPValue
		} else {
			declared.Value = maxIssuedValue
		}
	}
	formatted, err := tx.FormatAmount(declared)
	if err != nil {
		return nil, tx.NewValidationError(fmt.Sprintf("destination amount: %v", err))
	}
	draft.Amount = formatted

	if working.InvoiceID != "" {
		draft.InvoiceID = working.InvoiceID
	}
	if working.Source.Tag != nil {
		draft.SourceTag = working.Source.Tag
	}
	if working.Destination.Tag != nil {
		draft.DestinationTag = working.Destination.Tag
	}
	for _, m := range working.Memos {
		draft.Memos = append(draft.Memos, tx.EncodeMemo(m.Data, m.Type, m.Format))
	}

	if working.NoDirectRipple {
		draft.Flags |= tx.TfNoDirectRipple
	}
	if working.LimitQuality {
		draft.Flags |= tx.TfLimitQuality
	}

	if !xrpToXRP {
		if working.AllowPartialPayment || dstMin {
			draft.Flags |= tx.TfPartialPayment
		}
		sendMax, err := tx.FormatAmount(*srcAmount)
		if err != nil {
			return nil, tx.NewValidationError(fmt.Sprintf("source amount: %v", err))
		}
		draft.SendMax = sendMax
		if dstMin {
			deliverMin, err := tx.FormatAmount(*dstAmount)
			if err != nil {
				return nil, tx.NewValidationError(fmt.Sprintf("destination minimum: %v", err))
			}
			draft.DeliverMin = deliverMin
		}
		if working.Paths != "" {
			paths, err := parsePaths(working.Paths)
			if err != nil {
				return nil, err
			}
			draft.Paths = paths
		}
	}

	return draft, nil
}

// parsePaths decodes a serialized path set and checks each element is
// structurally valid: an element names an account, or a currency with an
// optional issuer, never both.
func parsePaths(serialized string) ([][]tx.PathStep, error) {
	var paths [][]tx.PathStep
	if err := json.Unmarshal([]byte(serialized), &paths); err != nil {
		return nil, tx.NewValidationError(fmt.Sprintf("paths is not a valid serialized path set: %v", err))
	}
	for _, path := range paths {
		for _, step := range path {
			hasAccount := step.Account != ""
			hasCurrency := step.Currency != ""
			hasIssuer := step.Issuer != ""
			if !hasAccount && !hasCurrency && !hasIssuer {
				return nil, tx.NewValidationError("path element has no account, currency, or issuer")
			}
			if hasAccount && (hasCurrency || hasIssuer) {
				return nil, tx.NewValidationError("path element has account with currency or issuer")
			}
		}
	}
	return paths, nil
}
