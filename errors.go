package bridgelock

import (
	"errors"
	"fmt"

	"github.com/bridgelock/envelope-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingKey is returned when Seal or Open is called without a
	// symmetric key. No cipher primitive is touched in that case.
	ErrMissingKey = errors.New("symmetric key is required")

	// ErrInvalidKeySize is returned when key material has the wrong length
	// for the requested algorithm.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrAuthenticationFailed is returned when HMAC verification of a sealed
	// payload fails. It is the expected outcome for a tampered or
	// misdirected message, not a bug; the ciphertext is never decrypted and
	// no detail about the mismatch is reported.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrInvalidCiphertext is returned when ciphertext or its padding is
	// malformed.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrMalformedPayload is returned when a payload's structure or its
	// authenticated plaintext cannot be decoded. Distinct from
	// ErrAuthenticationFailed: when the MAC has already passed, a decode
	// failure indicates a protocol mismatch rather than tampering.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrDecryptionFailed is returned when asymmetric decryption fails,
	// either because the payload was produced for a different key pair or
	// because it has been tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPrivateKey is returned when private key material is not a
	// valid secp256k1 scalar.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned when public key material is not a
	// valid secp256k1 point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignature is returned when a signature cannot be parsed or
	// its public key cannot be recovered.
	ErrInvalidSignature = errors.New("invalid signature")
)

// CipherError wraps a symmetric cipher failure: ciphertext whose length is
// not a multiple of the block size, or malformed padding after decryption.
type CipherError struct {
	Err error
}

func (e *CipherError) Error() string {
	return fmt.Sprintf("cipher: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CipherError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *CipherError) Is(target error) bool {
	return target == ErrInvalidCiphertext
}

// MalformedPayloadError wraps a payload decoding failure.
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

// DecryptionError wraps an asymmetric decryption failure.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// wrapCryptoError converts internal crypto errors to public sentinel errors
// so that errors.Is() checks work correctly.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		// Deliberately detail-free: callers learn only that the message
		// was rejected.
		return ErrAuthenticationFailed
	case errors.Is(err, crypto.ErrInvalidKeySize):
		return ErrInvalidKeySize
	case errors.Is(err, crypto.ErrInvalidCiphertext),
		errors.Is(err, crypto.ErrInvalidPadding),
		errors.Is(err, crypto.ErrInvalidIVSize):
		return &CipherError{Err: err}
	case errors.Is(err, crypto.ErrInvalidPayload),
		errors.Is(err, crypto.ErrInvalidUTF8):
		return &MalformedPayloadError{Err: err}
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return &DecryptionError{Err: err}
	case errors.Is(err, crypto.ErrInvalidPrivateKey):
		return ErrInvalidPrivateKey
	case errors.Is(err, crypto.ErrInvalidPublicKey):
		return ErrInvalidPublicKey
	case errors.Is(err, crypto.ErrInvalidSignature):
		return ErrInvalidSignature
	}

	return err
}
