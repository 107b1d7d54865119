package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrplprep/internal/core/tx"
)

func ptrUint32(v uint32) *uint32 { return &v }

func xrp(value string) *tx.Amount {
	return &tx.Amount{Value: value, Currency: "XRP"}
}

func drops(value string) *tx.Amount {
	return &tx.Amount{Value: value, Currency: "drops"}
}

func issued(value, currency, counterparty string) *tx.Amount {
	return &tx.Amount{Value: value, Currency: currency, Counterparty: counterparty}
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsMaxAdjustment(Adjustment{MaxAmount: xrp("1")}))
	assert.False(t, IsMaxAdjustment(Adjustment{Amount: xrp("1")}))
	assert.True(t, IsMinAdjustment(Adjustment{MinAmount: xrp("1")}))
	assert.False(t, IsMinAdjustment(Adjustment{Amount: xrp("1")}))

	// XRP and drops are the same asset in different units.
	assert.True(t, IsXRPToXRP(Intent{
		Source:      Adjustment{MaxAmount: xrp("1")},
		Destination: Adjustment{Amount: drops("1000000")},
	}))
	assert.False(t, IsXRPToXRP(Intent{
		Source:      Adjustment{MaxAmount: issued("1", "USD", "rGateway")},
		Destination: Adjustment{Amount: xrp("1")},
	}))

	assert.True(t, IsIssuedWithoutCounterparty(tx.Amount{Value: "1", Currency: "USD"}))
	assert.False(t, IsIssuedWithoutCounterparty(tx.Amount{Value: "1", Currency: "USD", Counterparty: "rGateway"}))
	assert.False(t, IsIssuedWithoutCounterparty(tx.Amount{Value: "1", Currency: "XRP"}))
}

func TestBuildPaymentXRPToXRP(t *testing.T) {
	intent := &Intent{
		Source:      Adjustment{Address: "rAlice", MaxAmount: xrp("1")},
		Destination: Adjustment{Address: "rBob", Amount: xrp("1")},
	}

	draft, err := BuildPayment("rAlice", intent)
	require.NoError(t, err)

	assert.Equal(t, "Payment", draft.TransactionType)
	assert.Equal(t, "rAlice", draft.Account)
	assert.Equal(t, "rBob", draft.Destination)
	assert.Equal(t, "1000000", draft.Amount)
	assert.Nil(t, draft.SendMax)
	assert.Nil(t, draft.DeliverMin)
	assert.Equal(t, uint32(0), draft.Flags)
}

func TestBuildPaymentAddressMismatch(t *testing.T) {
	intent := &Intent{
		Source:      Adjustment{Address: "rAlice", MaxAmount: xrp("1")},
		Destination: Adjustment{Address: "rBob", Amount: xrp("1")},
	}

	_, err := BuildPayment("rCharlie", intent)
	var verr *tx.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "source.address")
}

func TestBuildPaymentBoundedSideInvariant(t *testing.T) {
	tests := []struct {
		name   string
		source Adjustment
		dest   Adjustment
	}{
		{
			name:   "both sides bounded",
			source: Adjustment{Address: "rAlice", MaxAmount: xrp("1")},
			dest:   Adjustment{Address: "rBob", MinAmount: xrp("1")},
		},
		{
			name:   "neither side bounded",
			source: Adjustment{Address: "rAlice", Amount: xrp("1")},
			dest:   Adjustment{Address: "rBob", Amount: xrp("1")},
		},
		{
			name:   "source carries both amount and cap",
			source: Adjustment{Address: "rAlice", Amount: xrp("1"), MaxAmount: xrp("1")},
			dest:   Adjustment{Address: "rBob", Amount: xrp("1")},
		},
		{
			name:   "no amounts at all",
			source: Adjustment{Address: "rAlice"},
			dest:   Adjustment{Address: "rBob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPayment("rAlice", &Intent{Source: tt.source, Destination: tt.dest})
			var verr *tx.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Reason, "source.maxAmount")
		})
	}
}

func TestBuildPaymentXRPToXRPPartialRejected(t *testing.T) {
	intent := &Intent{
		Source:              Adjustment{Address: "rAlice", MaxAmount: xrp("1")},
		Destination:         Adjustment{Address: "rBob", Amount: xrp("1")},
		AllowPartialPayment: true,
	}

	_, err := BuildPayment("rAlice", intent)
	var verr *tx.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "partial payments")
}

func TestBuildPaymentIssuedWithMinBound(t *testing.T) {
	intent := &Intent{
		Source:      Adjustment{Address: "rAlice", Amount: issued("10", "USD", "rGateway")},
		Destination: Adjustment{Address: "rBob", MinAmount: issued("9", "USD", "rGateway")},
	}

	draft, err := BuildPayment("rAlice", intent)
	require.NoError(t, err)

	// Declared Amount is the synthetic maximal value, not the bound.
	assert.Equal(t, tx.CurrencyAmount{
		Currency: "USD",
		Value:    "9999999999999999e80",
		Issuer:   "rGateway",
	}, draft.Amount)
	assert.Equal(t, tx.CurrencyAmount{
		Currency: "USD",
		Value:    "10",
		Issuer:   "rGateway",
	}, draft.SendMax)
	assert.Equal(t, tx.CurrencyAmount{
		Currency: "USD",
		Value:    "9",
		Issuer:   "rGateway",
	}, draft.DeliverMin)
	assert.Equal(t, tx.TfPartialPayment, draft.Flags&tx.TfPartialPayment)
}

func TestBuildPaymentNativeMinBoundUsesXRPCeiling(t *testing.T) {
	intent := &Intent{
		Source:      Adjustment{Address: "rAlice", Amount: issued("10", "USD", "rGateway")},
		Destination: Adjustment{Address: "rBob", MinAmount: xrp("1")},
	}

	draft, err := BuildPayment("rAlice", intent)
	require.NoError(t, err)

	// 100,000,000,000 XRP in drops.
	assert.Equal(t, "100000000000000000", draft.Amount)
	assert.Equal(t, "1000000", draft.DeliverMin)
}

func TestBuildPaymentResolvesAnyCounterparty(t *testing.T) {
	intent := &Intent{
		Source:      Adjustment{Address: "rAlice", Amount: issued("10", "USD", "")},
		Destination: Adjustment{Address: "rDest", MinAmount: issued("9", "USD", "")},
	}

	draft, err := BuildPayment("rAlice", intent)
	require.NoError(t, err)

	sendMax, ok := draft.SendMax.(tx.CurrencyAmount)
	require.True(t, ok)
	assert.Equal(t, "rAlice", sendMax.Issuer)

	deliverMin, ok := draft.DeliverMin.(tx.CurrencyAmount)
	require.True(t, ok)
	assert.Equal(t, "rDest", deliverMin.Issuer)

	// The caller's intent stays untouched.
	assert.Equal(t, "", intent.Source.Amount.Counterparty)
	assert.Equal(t, "", intent.Destination.MinAmount.Counterparty)
}

func TestBuildPaymentOptionalFields(t *testing.T) {
	intent := &Intent{
		Source: Adjustment{
			Address:   "rAlice",
			Tag:       ptrUint32(1),
			MaxAmount: issued("10", "USD", "rGateway"),
		},
		Destination: Adjustment{
			Address: "rBob",
			Tag:     ptrUint32(2),
			Amount:  issued("10", "USD", "rGateway"),
		},
		InvoiceID:      "A98FD36C17BE2B8511AD36DC335478E7E89F06262949F36EB88E2D683BBCC50A",
		Memos:          []Memo{{Data: "first"}, {Data: "second"}},
		NoDirectRipple: true,
		LimitQuality:   true,
	}

	draft, err := BuildPayment("rAlice", intent)
	require.NoError(t, err)

	require.NotNil(t, draft.SourceTag)
	assert.Equal(t, uint32(1), *draft.SourceTag)
	require.NotNil(t, draft.DestinationTag)
	assert.Equal(t, uint32(2), *draft.DestinationTag)
	assert.Equal(t, intent.InvoiceID, draft.InvoiceID)

	require.Len(t, draft.Memos, 2)
	assert.Equal(t, "6669727374", draft.Memos[0].Memo.MemoData)
	assert.Equal(t, "7365636F6E64", draft.Memos[1].Memo.MemoData)

	assert.NotZero(t, draft.Flags&tx.TfNoDirectRipple)
	assert.NotZero(t, draft.Flags&tx.TfLimitQuality)
	assert.Zero(t, draft.Flags&tx.TfPartialPayment)
}

func TestBuildPaymentPaths(t *testing.T) {
	intent := &Intent{
		Source:      Adjustment{Address: "rAlice", MaxAmount: issued("10", "USD", "rGateway")},
		Destination: Adjustment{Address: "rBob", Amount: issued("10", "USD", "rGateway")},
		Paths:       `[[{"account":"rHop"}],[{"currency":"USD","issuer":"rGate"}]]`,
	}

	draft, err := BuildPayment("rAlice", intent)
	require.NoError(t, err)

	require.Len(t, draft.Paths, 2)
	assert.Equal(t, "rHop", draft.Paths[0][0].Account)
	assert.Equal(t, "USD", draft.Paths[1][0].Currency)
}

func TestBuildPaymentInvalidPaths(t *testing.T) {
	tests := []struct {
		name  string
		paths string
	}{
		{name: "not JSON", paths: "not-a-path-set"},
		{name: "account mixed with currency", paths: `[[{"account":"rHop","currency":"USD"}]]`},
		{name: "empty element", paths: `[[{}]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := &Intent{
				Source:      Adjustment{Address: "rAlice", MaxAmount: issued("10", "USD", "rGateway")},
				Destination: Adjustment{Address: "rBob", Amount: issued("10", "USD", "rGateway")},
				Paths:       tt.paths,
			}
			_, err := BuildPayment("rAlice", intent)
			var verr *tx.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestBuildPaymentPathsIgnoredForXRPToXRP(t *testing.T) {
	intent := &Intent{
		Source:      Adjustment{Address: "rAlice", MaxAmount: xrp("1")},
		Destination: Adjustment{Address: "rBob", Amount: xrp("1")},
		Paths:       `[[{"account":"rHop"}]]`,
	}

	draft, err := BuildPayment("rAlice", intent)
	require.NoError(t, err)
	assert.Nil(t, draft.Paths)
}
