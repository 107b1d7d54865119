package config

import "github.com/spf13/viper"

// defaultMaxFeeXRP matches the conventional client-side fee ceiling.
const defaultMaxFeeXRP = "2"

// Default returns the built-in protocol defaults.
func Default() ProtocolConfig {
	return ProtocolConfig{
		MaxFeeXRP: defaultMaxFeeXRP,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_fee_xrp", defaultMaxFeeXRP)
}
