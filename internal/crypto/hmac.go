package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// ComputeHMAC computes an HMAC-SHA256 tag over data. Any key length is
// accepted; the underlying construction hashes long keys and pads short
// ones, with no implicit truncation here.
func ComputeHMAC(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// VerifyHMAC recomputes the tag over data and compares it to tag in
// constant time. A short-circuiting comparison would leak the position of
// the first differing byte through timing.
func VerifyHMAC(key, data, tag []byte) bool {
	return hmac.Equal(ComputeHMAC(key, data), tag)
}
