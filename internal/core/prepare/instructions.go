package prepare

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/LeJamon/xrplprep/internal/core/amount"
	"github.com/LeJamon/xrplprep/internal/core/tx"
)

// LedgerVersion is an explicitly provided ledger validity bound. A nil
// Value means the caller explicitly asked for an unbounded window, which
// is distinct from not providing the instruction at all.
type LedgerVersion struct {
	Value *uint32
}

// NewLedgerVersion returns a bounded ledger version instruction.
func NewLedgerVersion(v uint32) *LedgerVersion {
	return &LedgerVersion{Value: &v}
}

// UnboundedLedgerVersion returns the explicit "no upper bound" instruction.
func UnboundedLedgerVersion() *LedgerVersion {
	return &LedgerVersion{}
}

func (l *LedgerVersion) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		l.Value = nil
		return nil
	}
	var v uint32
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	l.Value = &v
	return nil
}

func (l LedgerVersion) MarshalJSON() ([]byte, error) {
	if l.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*l.Value)
}

// Instructions shape the prepared transaction: fee, sequence and ledger
// validity window. Each belongs here and only here, never on the draft
// directly.
type Instructions struct {
	// Fee in XRP. Scaled by signersCount+1 for multi-signed transactions.
	Fee                    *string        `json:"fee,omitempty" validate:"omitempty,xrpvalue"`
	Sequence               *uint32        `json:"sequence,omitempty"`
	MaxLedgerVersion       *LedgerVersion `json:"maxLedgerVersion,omitempty"`
	MaxLedgerVersionOffset *uint32        `json:"maxLedgerVersionOffset,omitempty"`
	SignersCount           *uint32        `json:"signersCount,omitempty"`
}

// UnmarshalJSON keeps an explicit "maxLedgerVersion": null observable.
// encoding/json assigns nil to pointer fields on null, which would
// collapse explicit absence into not-provided.
func (i *Instructions) UnmarshalJSON(b []byte) error {
	type alias Instructions
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["maxLedgerVersion"]; ok && string(v) == "null" {
		a.MaxLedgerVersion = UnboundedLedgerVersion()
	}
	*i = Instructions(a)
	return nil
}

var (
	schemaValidate *validator.Validate
	schemaOnce     sync.Once
)

// schemaValidator returns the shared instruction validator. The xrpvalue
// rule accepts plain decimal numerals only.
func schemaValidator() *validator.Validate {
	schemaOnce.Do(func() {
		schemaValidate = validator.New(validator.WithRequiredStructEnabled())
		_ = schemaValidate.RegisterValidation("xrpvalue", func(fl validator.FieldLevel) bool {
			return amount.IsPlainDecimal(fl.Field().String())
		})
	})
	return schemaValidate
}

// validateSchema is the schema gate over the instructions and the draft:
// field shapes only, no cross-field reconciliation.
func validateSchema(draft map[string]any, instructions *Instructions) error {
	if err := schemaValidator().Struct(instructions); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return tx.NewValidationError(fmt.Sprintf(
				"instructions.%s failed %s validation", fieldErrs[0].Field(), fieldErrs[0].Tag()))
		}
		return tx.NewValidationError(fmt.Sprintf("instructions are invalid: %v", err))
	}
	if instructions.MaxLedgerVersion != nil && instructions.MaxLedgerVersionOffset != nil {
		return tx.NewValidationError(
			"instructions.maxLedgerVersion and instructions.maxLedgerVersionOffset are mutually exclusive")
	}

	if s, ok := draft["Account"].(string); !ok || s == "" {
		return tx.NewValidationError("transaction draft requires an Account")
	}
	if s, ok := draft["TransactionType"].(string); !ok || s == "" {
		return tx.NewValidationError("transaction draft requires a TransactionType")
	}
	return nil
}
