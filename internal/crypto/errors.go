package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the symmetric key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV size is invalid.
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrInvalidCiphertext is returned when the ciphertext length is not a
	// multiple of the cipher block size.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrInvalidPadding is returned when PKCS#7 padding is malformed after
	// decryption.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrAuthenticationFailed is returned when HMAC verification fails.
	// It deliberately carries no detail about why.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidPayload is returned when an encrypted payload structure is
	// invalid, such as fields that do not decode as hex.
	ErrInvalidPayload = errors.New("invalid payload")

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

	// ErrInvalidSignature is returned when a signature has the wrong length
	// or an unrecoverable recovery id.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidUTF8 is returned when bytes are not a valid UTF-8 sequence.
	ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")
)
