package config

import (
	"fmt"

	"github.com/LeJamon/xrplprep/internal/core/amount"
)

// ProtocolConfig carries the protocol defaults preparation needs. It is
// passed by value through every call; nothing reads mutable globals.
type ProtocolConfig struct {
	// MaxFeeXRP is the highest fee, in XRP, preparation will accept
	// before scaling for multi-signing.
	MaxFeeXRP string `mapstructure:"max_fee_xrp"`
}

// Validate checks the configuration values.
func (c *ProtocolConfig) Validate() error {
	if !amount.IsPlainDecimal(c.MaxFeeXRP) {
		return fmt.Errorf("max_fee_xrp must be a decimal XRP value, got %q", c.MaxFeeXRP)
	}
	if cmp, err := amount.Compare(c.MaxFeeXRP, "0"); err != nil || cmp <= 0 {
		return fmt.Errorf("max_fee_xrp must be positive, got %q", c.MaxFeeXRP)
	}
	return nil
}
