package crypto

const (
	// KeySize is the size of an AES-256 / HMAC-SHA256 session key in bytes.
	KeySize = 32
	// IVSize is the size of a CBC initialization vector in bytes.
	IVSize = 16
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// TagSize is the size of an HMAC-SHA256 authentication tag in bytes.
	TagSize = 32

	// PrivateKeySize is the size of a secp256k1 private scalar in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of an uncompressed secp256k1 public key in
	// bytes (0x04 prefix plus the two 32-byte coordinates).
	PublicKeySize = 65
	// SignatureSize is the size of a compact ECDSA signature in bytes:
	// r (32) || s (32) || recovery id (1).
	SignatureSize = 65
	// SharedSecretSize is the size of an ECDH shared secret in bytes.
	SharedSecretSize = 32
)
