package tx

// Signer is one entry of a multi-signing list.
type Signer struct {
	Account       string `json:"Account"`
	SigningPubKey string `json:"SigningPubKey"`
	TxnSignature  string `json:"TxnSignature"`
}

// SignerWrapper wraps a Signer for JSON serialization.
type SignerWrapper struct {
	Signer Signer `json:"Signer"`
}

// PathStep is a single element of a payment path.
type PathStep struct {
	Account  string `json:"account,omitempty"`
	Currency string `json:"currency,omitempty"`
	Issuer   string `json:"issuer,omitempty"`
}

// Payment is an unsigned Payment transaction draft. The payment builder
// creates it, the finalizer completes it; after finalization it is
// never mutated again.
type Payment struct {
	Account            string
	TransactionType    string
	Flags              uint32
	Fee                string // drops
	Sequence           *uint32
	LastLedgerSequence *uint32
	Destination        string
	// Amount, SendMax and DeliverMin hold protocol-formatted amounts:
	// a drops numeral string or a CurrencyAmount.
	Amount         any
	SendMax        any
	DeliverMin     any
	SourceTag      *uint32
	DestinationTag *uint32
	InvoiceID      string
	Memos          []MemoWrapper
	Paths          [][]PathStep
	SignerQuorum   *uint32
	Signers        []SignerWrapper
}

// NewPayment creates a Payment draft between two accounts.
func NewPayment(account, destination string) *Payment {
	return &Payment{
		Account:         account,
		TransactionType: "Payment",
		Destination:     destination,
	}
}

// Flatten returns the draft as a protocol field map. Optional fields are
// present only when set, so absence stays observable downstream.
func (p *Payment) Flatten() map[string]any {
	m := map[string]any{
		"Account":         p.Account,
		"TransactionType": p.TransactionType,
		"Destination":     p.Destination,
		"Flags":           p.Flags,
	}
	if p.Fee != "" {
		m["Fee"] = p.Fee
	}
	if p.Sequence != nil {
		m["Sequence"] = *p.Sequence
	}
	if p.LastLedgerSequence != nil {
		m["LastLedgerSequence"] = *p.LastLedgerSequence
	}
	if p.Amount != nil {
		m["Amount"] = p.Amount
	}
	if p.SendMax != nil {
		m["SendMax"] = p.SendMax
	}
	if p.DeliverMin != nil {
		m["DeliverMin"] = p.DeliverMin
	}
	if p.SourceTag != nil {
		m["SourceTag"] = *p.SourceTag
	}
	if p.DestinationTag != nil {
		m["DestinationTag"] = *p.DestinationTag
	}
	if p.InvoiceID != "" {
		m["InvoiceID"] = p.InvoiceID
	}
	if len(p.Memos) > 0 {
		m["Memos"] = p.Memos
	}
	if len(p.Paths) > 0 {
		m["Paths"] = p.Paths
	}
	if p.SignerQuorum != nil {
		m["SignerQuorum"] = *p.SignerQuorum
	}
	if len(p.Signers) > 0 {
		m["Signers"] = p.Signers
	}
	return m
}
