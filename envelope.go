package bridgelock

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bridgelock/envelope-go/internal/crypto"
)

// KeySize is the required symmetric session key size in bytes.
const KeySize = crypto.KeySize

// EncryptionPayload is the wire format of a sealed message: a JSON object
// with three hex-encoded fields. The hmac field authenticates the
// concatenation of the ciphertext and IV bytes, in that order — not the
// plaintext. Immutable once constructed; consumed only by Open.
type EncryptionPayload struct {
	// Data is the AES-256-CBC ciphertext.
	Data string `json:"data"`
	// Hmac is the HMAC-SHA256 tag over ciphertext || iv.
	Hmac string `json:"hmac"`
	// Iv is the 16-byte initialization vector, fresh per message.
	Iv string `json:"iv"`
}

// GenerateKey returns a fresh random 256-bit symmetric session key.
func GenerateKey() ([]byte, error) {
	return crypto.GenerateKey()
}

// Seal serializes message to JSON and encrypts it under key with a fresh
// random IV, returning the authenticated wire payload. The same key is used
// for encryption and authentication, per the wire protocol.
func Seal(message any, key []byte) (*EncryptionPayload, error) {
	if len(key) == 0 {
		return nil, ErrMissingKey
	}

	plaintext, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("serialize message: %w", err)
	}

	sealed, err := crypto.Seal(plaintext, key)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return fromInternalPayload(sealed), nil
}

// sealWithIV seals message with an explicit IV. Only for pinned test
// vectors; IV reuse under one key breaks CBC confidentiality.
func sealWithIV(message any, key, iv []byte) (*EncryptionPayload, error) {
	if len(key) == 0 {
		return nil, ErrMissingKey
	}

	plaintext, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("serialize message: %w", err)
	}

	sealed, err := crypto.SealWithIV(plaintext, key, iv)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return fromInternalPayload(sealed), nil
}

// Open verifies and decrypts a sealed payload, returning the serialized
// message. The HMAC is recomputed over ciphertext || iv and compared in
// constant time BEFORE any decryption; on mismatch ErrAuthenticationFailed
// is returned and the ciphertext is never handed to the cipher.
//
// The decrypted plaintext must be valid UTF-8 JSON; anything else is
// reported as ErrMalformedPayload, which indicates a protocol mismatch
// rather than tampering since authentication already passed.
func Open(payload *EncryptionPayload, key []byte) (json.RawMessage, error) {
	if len(key) == 0 {
		return nil, ErrMissingKey
	}

	if payload == nil {
		return nil, &MalformedPayloadError{Err: errors.New("nil payload")}
	}

	plaintext, err := crypto.Open(toInternalPayload(payload), key)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	if _, err := crypto.BytesToUTF8(plaintext); err != nil {
		return nil, wrapCryptoError(err)
	}

	if !json.Valid(plaintext) {
		return nil, &MalformedPayloadError{Err: errors.New("plaintext is not valid JSON")}
	}

	return json.RawMessage(plaintext), nil
}

// OpenInto opens a sealed payload and unmarshals the message into v.
func OpenInto(payload *EncryptionPayload, key []byte, v any) error {
	raw, err := Open(payload, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &MalformedPayloadError{Err: err}
	}

	return nil
}

func toInternalPayload(p *EncryptionPayload) *crypto.EncryptedPayload {
	return &crypto.EncryptedPayload{Data: p.Data, Hmac: p.Hmac, Iv: p.Iv}
}

func fromInternalPayload(p *crypto.EncryptedPayload) *EncryptionPayload {
	return &EncryptionPayload{Data: p.Data, Hmac: p.Hmac, Iv: p.Iv}
}
