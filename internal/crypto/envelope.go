package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for IV and key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// EncryptedPayload is the wire format for a sealed message. All fields are
// hex-encoded with no 0x prefix.
type EncryptedPayload struct {
	// Data is the AES-256-CBC ciphertext.
	Data string `json:"data"`
	// Hmac is the HMAC-SHA256 tag over ciphertext || iv.
	Hmac string `json:"hmac"`
	// Iv is the 16-byte CBC initialization vector.
	Iv string `json:"iv"`
}

// GenerateKey returns a fresh random 256-bit symmetric key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader(), key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// Seal encrypts plaintext under key with a fresh random IV and
// authenticates the result. The tag covers ciphertext || iv so that IV
// tampering is detected without decrypting anything.
func Seal(plaintext, key []byte) (*EncryptedPayload, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(reader(), iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	return SealWithIV(plaintext, key, iv)
}

// SealWithIV seals plaintext with an explicit IV. Reusing an IV with the
// same key for two different plaintexts breaks CBC confidentiality; use
// Seal unless the IV comes from a source that guarantees freshness.
func SealWithIV(plaintext, key, iv []byte) (*EncryptedPayload, error) {
	ciphertext, err := EncryptCBC(key, iv, plaintext)
	if err != nil {
		return nil, err
	}

	tag := ComputeHMAC(key, macInput(ciphertext, iv))

	return &EncryptedPayload{
		Data: ToHex(ciphertext),
		Hmac: ToHex(tag),
		Iv:   ToHex(iv),
	}, nil
}

// Open verifies and decrypts a sealed payload.
//
// The HMAC is recomputed over ciphertext || iv and compared in constant
// time BEFORE any decryption. On mismatch, ErrAuthenticationFailed is
// returned and the ciphertext is never passed to the cipher, which closes
// the padding-oracle and bit-flipping attack classes of unauthenticated CBC.
func Open(payload *EncryptedPayload, key []byte) ([]byte, error) {
	ciphertext, err := FromHex(payload.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode data: %v", ErrInvalidPayload, err)
	}

	iv, err := FromHex(payload.Iv)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %v", ErrInvalidPayload, err)
	}

	tag, err := FromHex(payload.Hmac)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hmac: %v", ErrInvalidPayload, err)
	}

	if !VerifyHMAC(key, macInput(ciphertext, iv), tag) {
		return nil, ErrAuthenticationFailed
	}

	return DecryptCBC(key, iv, ciphertext)
}

// macInput concatenates ciphertext then IV. The order is part of the wire
// protocol and must match between Seal and Open.
func macInput(ciphertext, iv []byte) []byte {
	buf := make([]byte, 0, len(ciphertext)+len(iv))
	buf = append(buf, ciphertext...)
	return append(buf, iv...)
}
