package prepare

import (
	"github.com/LeJamon/xrplprep/internal/config"
	"github.com/LeJamon/xrplprep/internal/core/payment"
)

// Prepare is the single public operation of the engine: it builds an
// unsigned Payment transaction from the caller's intent, reconciles the
// shaping instructions and returns the prepared output. The first
// failure aborts the call; no partial output is ever returned.
func Prepare(address string, intent *payment.Intent, instructions *Instructions, cfg config.ProtocolConfig) (*Prepared, error) {
	draft, err := payment.BuildPayment(address, intent)
	if err != nil {
		return nil, err
	}
	return Finalize(draft.Flatten(), instructions, cfg)
}
