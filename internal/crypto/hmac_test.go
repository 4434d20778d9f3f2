package crypto

import (
	"bytes"
	"testing"
)

// Vectors from RFC 4231.
func TestComputeHMAC_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		data []byte
		want string
	}{
		{
			name: "rfc4231 case 1",
			key:  bytes.Repeat([]byte{0x0b}, 20),
			data: []byte("Hi There"),
			want: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			name: "rfc4231 case 2",
			key:  []byte("Jefe"),
			data: []byte("what do ya want for nothing?"),
			want: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := ComputeHMAC(tt.key, tt.data)

			if len(tag) != TagSize {
				t.Errorf("tag length = %d, want %d", len(tag), TagSize)
			}
			if got := ToHex(tag); got != tt.want {
				t.Errorf("tag = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestVerifyHMAC(t *testing.T) {
	key := []byte("authentication key of any length")
	data := []byte("payload bytes")
	tag := ComputeHMAC(key, data)

	if !VerifyHMAC(key, data, tag) {
		t.Error("valid tag rejected")
	}

	tests := []struct {
		name string
		key  []byte
		data []byte
		tag  []byte
	}{
		{"wrong key", []byte("different key"), data, tag},
		{"wrong data", key, []byte("other payload"), tag},
		{"flipped tag bit", key, data, flipBit(tag, 0)},
		{"truncated tag", key, data, tag[:TagSize-1]},
		{"empty tag", key, data, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyHMAC(tt.key, tt.data, tt.tag) {
				t.Error("invalid tag accepted")
			}
		})
	}
}

func TestComputeHMAC_KeyNotTruncated(t *testing.T) {
	data := []byte("payload")

	// Keys longer than the hash block size are hashed by the HMAC
	// construction, not truncated: a 65-byte key and its 64-byte prefix
	// must produce different tags.
	long := bytes.Repeat([]byte{0x42}, 65)
	if bytes.Equal(ComputeHMAC(long, data), ComputeHMAC(long[:64], data)) {
		t.Error("long key appears to be truncated")
	}
}

func flipBit(data []byte, pos int) []byte {
	out := append([]byte(nil), data...)
	out[pos/8] ^= 1 << (pos % 8)
	return out
}
