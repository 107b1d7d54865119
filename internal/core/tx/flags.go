package tx

// Universal transaction flag constants matching rippled TxFlags.h.
const (
	// TfFullyCanonicalSig requires a fully canonical signature encoding
	TfFullyCanonicalSig uint32 = 0x80000000
)

// Payment-specific flag bits.
const (
	// TfNoDirectRipple prevents direct rippling (tfNoRippleDirect in rippled)
	TfNoDirectRipple uint32 = 0x00010000
	// TfPartialPayment allows delivery of less than the declared Amount
	TfPartialPayment uint32 = 0x00020000
	// TfLimitQuality limits the quality of consumed paths
	TfLimitQuality uint32 = 0x00040000
)
