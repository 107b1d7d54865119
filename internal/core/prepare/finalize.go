package prepare

import (
	"encoding/json"
	"fmt"

	"github.com/LeJamon/xrplprep/internal/config"
	"github.com/LeJamon/xrplprep/internal/core/amount"
	"github.com/LeJamon/xrplprep/internal/core/tx"
)

// disallowedDraftFields are instruction-level fields that must never
// appear on a draft directly. The scan order is fixed so the reported
// field is deterministic.
var disallowedDraftFields = []string{
	"maxLedgerVersion",
	"maxLedgerVersionOffset",
	"fee",
	"sequence",
}

// Summary is the compact instructions view of a prepared transaction.
type Summary struct {
	// Fee in XRP, after any multi-signing scaling.
	Fee      string `json:"fee"`
	Sequence uint32 `json:"sequence"`
	// MaxLedgerVersion is nil when the transaction has no upper bound.
	MaxLedgerVersion *uint32 `json:"maxLedgerVersion"`
}

// Prepared is the all-or-nothing output of preparation: the serialized
// unsigned transaction and its instructions summary.
type Prepared struct {
	TxJSON       string  `json:"txJSON"`
	Instructions Summary `json:"instructions"`
}

// Finalize reconciles shaping instructions against a flattened draft,
// applies the canonical-signature flag and emits the prepared output.
// The draft map is consumed: callers must not reuse it afterwards.
func Finalize(draft map[string]any, instructions *Instructions, cfg config.ProtocolConfig) (*Prepared, error) {
	if instructions == nil {
		instructions = &Instructions{}
	}

	if err := validateSchema(draft, instructions); err != nil {
		return nil, err
	}

	for _, field := range disallowedDraftFields {
		if _, ok := draft[field]; ok {
			return nil, tx.NewValidationError(fmt.Sprintf(
				"txJSON additionalProperty %q exists in instance when not allowed", field))
		}
	}

	// SignerQuorum of zero means the multi-sign list is being removed;
	// removal is expressed by omission, never an empty list.
	if quorum, ok := toUint32(draft["SignerQuorum"]); ok && quorum == 0 {
		delete(draft, "Signers")
	}

	flags, _ := toUint32(draft["Flags"])
	draft["Flags"] = flags | tx.TfFullyCanonicalSig

	if err := reconcileLedgerVersion(draft, instructions); err != nil {
		return nil, err
	}
	if err := reconcileFee(draft, instructions, cfg); err != nil {
		return nil, err
	}
	if err := reconcileSequence(draft, instructions); err != nil {
		return nil, err
	}

	return emit(draft)
}

func reconcileLedgerVersion(draft map[string]any, instructions *Instructions) error {
	_, draftHasWindow := draft["LastLedgerSequence"]
	switch {
	case draftHasWindow && instructions.MaxLedgerVersion != nil:
		return tx.NewValidationError(
			"instructions.maxLedgerVersion and LastLedgerSequence on the draft are mutually exclusive")
	case draftHasWindow && instructions.MaxLedgerVersionOffset != nil:
		return tx.NewValidationError(
			"instructions.maxLedgerVersionOffset and LastLedgerSequence on the draft are mutually exclusive")
	case draftHasWindow:
		// already shaped by the caller
	case instructions.MaxLedgerVersion != nil:
		if instructions.MaxLedgerVersion.Value != nil {
			draft["LastLedgerSequence"] = *instructions.MaxLedgerVersion.Value
		}
	default:
		return tx.NewFatalPreparationError("could not determine ledger validity window")
	}
	return nil
}

func reconcileFee(draft map[string]any, instructions *Instructions, cfg config.ProtocolConfig) error {
	_, draftHasFee := draft["Fee"]
	switch {
	case draftHasFee && instructions.Fee != nil:
		return tx.NewValidationError(
			"instructions.fee and Fee on the draft are mutually exclusive")
	case draftHasFee:
		// keep as-is, unscaled
	case instructions.Fee != nil:
		multiplier := int64(1)
		if instructions.SignersCount != nil {
			multiplier = int64(*instructions.SignersCount) + 1
		}
		cmp, err := amount.Compare(*instructions.Fee, cfg.MaxFeeXRP)
		if err != nil {
			return tx.NewValidationError(fmt.Sprintf("instructions.fee: %v", err))
		}
		if cmp > 0 {
			return tx.NewValidationError(fmt.Sprintf(
				"fee of %s XRP exceeds max of %s XRP", *instructions.Fee, cfg.MaxFeeXRP))
		}
		drops, err := amount.XRPToDrops(*instructions.Fee)
		if err != nil {
			return tx.NewValidationError(fmt.Sprintf("instructions.fee: %v", err))
		}
		scaled, err := amount.ScaleValue(drops, multiplier, 0)
		if err != nil {
			return tx.NewValidationError(fmt.Sprintf("instructions.fee: %v", err))
		}
		draft["Fee"] = scaled
	default:
		return tx.NewFatalPreparationError("could not determine fee")
	}
	return nil
}

func reconcileSequence(draft map[string]any, instructions *Instructions) error {
	current, draftHasSequence := toUint32(draft["Sequence"])
	switch {
	case instructions.Sequence != nil:
		if draftHasSequence && current != *instructions.Sequence {
			return tx.NewValidationError(
				"instructions.sequence conflicts with Sequence already on the draft")
		}
		draft["Sequence"] = *instructions.Sequence
	case draftHasSequence:
		// keep
	default:
		return tx.NewFatalPreparationError("could not determine sequence")
	}
	return nil
}

// emit serializes the finalized draft and derives the summary. Map
// serialization sorts keys, so output order is stable.
func emit(draft map[string]any) (*Prepared, error) {
	raw, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("serialize prepared transaction: %w", err)
	}

	fee, ok := draft["Fee"].(string)
	if !ok {
		fee = fmt.Sprint(draft["Fee"])
	}
	feeXRP, err := amount.DropsToXRP(fee)
	if err != nil {
		return nil, tx.NewValidationError(fmt.Sprintf("draft Fee: %v", err))
	}

	sequence, _ := toUint32(draft["Sequence"])

	var maxLedgerVersion *uint32
	if v, ok := toUint32(draft["LastLedgerSequence"]); ok {
		maxLedgerVersion = &v
	}

	return &Prepared{
		TxJSON: string(raw),
		Instructions: Summary{
			Fee:              feeXRP,
			Sequence:         sequence,
			MaxLedgerVersion: maxLedgerVersion,
		},
	}, nil
}

// toUint32 reads a numeric draft value regardless of how the caller
// represented it (typed flatten output or decoded JSON).
func toUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case uint32:
		return n, true
	case uint64:
		return uint32(n), true
	case int:
		return uint32(n), true
	case int64:
		return uint32(n), true
	case float64:
		return uint32(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return uint32(i), true
	default:
		return 0, false
	}
}
