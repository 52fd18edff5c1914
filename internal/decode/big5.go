package decode

import (
	"golang.org/x/text/encoding/traditionalchinese"
)

// Big5 decodes the feed's legacy single/double-byte encoding. Invalid byte
// sequences become U+FFFD; decoding never fails.
type Big5 struct{}

// DecodeString implements TextDecoder.
func (Big5) DecodeString(b []byte) string {
	// x/text transformers are stateful, so a fresh decoder per call keeps
	// this safe for concurrent use. The Big5 decoder substitutes U+FFFD for
	// invalid input instead of returning an error, so any partial output is
	// still the correct lenient result.
	out, _ := traditionalchinese.Big5.NewDecoder().Bytes(b)
	return string(out)
}
