package crypto

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// ToHex encodes bytes as lowercase hex with no 0x prefix.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hex string, tolerating an optional 0x prefix and
// uppercase digits.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

// UTF8ToBytes converts text to its UTF-8 byte encoding.
func UTF8ToBytes(s string) []byte {
	return []byte(s)
}

// BytesToUTF8 converts bytes to text. It fails on invalid UTF-8 rather
// than silently substituting replacement runes.
func BytesToUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
