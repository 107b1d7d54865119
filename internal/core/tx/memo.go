package tx

import (
	"encoding/hex"
	"strings"
)

// Memo carries the protocol-encoded memo fields. Each field is the
// upper-case hex encoding of the caller's UTF-8 text; fields the caller
// did not supply stay empty and are omitted from serialization.
type Memo struct {
	MemoData   string `json:"MemoData,omitempty"`
	MemoType   string `json:"MemoType,omitempty"`
	MemoFormat string `json:"MemoFormat,omitempty"`
}

// MemoWrapper wraps a Memo so a memo list serializes as an ordered
// sequence of single-key objects.
type MemoWrapper struct {
	Memo Memo `json:"Memo"`
}

// EncodeMemo hex-encodes the present memo fields. Absent fields are
// never emitted as empty values.
func EncodeMemo(data, memoType, format string) MemoWrapper {
	var m Memo
	if data != "" {
		m.MemoData = hexUpper(data)
	}
	if memoType != "" {
		m.MemoType = hexUpper(memoType)
	}
	if format != "" {
		m.MemoFormat = hexUpper(format)
	}
	return MemoWrapper{Memo: m}
}

func hexUpper(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}
