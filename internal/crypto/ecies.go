package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ECIESPayload is the structured ciphertext produced by public-key
// encryption. The layout is wire-compatible with the eccrypto scheme:
// an ephemeral public key for the key agreement, a CBC IV, the ciphertext,
// and an HMAC-SHA256 tag over iv || ephemeral public key || ciphertext.
type ECIESPayload struct {
	IV             []byte
	EphemPublicKey []byte
	Ciphertext     []byte
	MAC            []byte
}

// EncryptECIES encrypts plaintext to a secp256k1 public key (compressed or
// uncompressed encoding). Only the holder of the matching private key can
// invert this.
func EncryptECIES(publicKey, plaintext []byte) (*ECIESPayload, error) {
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	ephem, err := secp256k1.GeneratePrivateKeyFromRand(reader())
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral key: %w", err)
	}

	encKey, macKey := deriveECIESKeys(ephem, pub)

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(reader(), iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, err := EncryptCBC(encKey, iv, plaintext)
	if err != nil {
		return nil, err
	}

	ephemPub := ephem.PubKey().SerializeUncompressed()
	mac := ComputeHMAC(macKey, eciesMACInput(iv, ephemPub, ciphertext))

	return &ECIESPayload{
		IV:             iv,
		EphemPublicKey: ephemPub,
		Ciphertext:     ciphertext,
		MAC:            mac,
	}, nil
}

// DecryptECIES decrypts an ECIES payload with the recipient's private key.
// The MAC is checked in constant time before any decryption; every failure
// mode after key parsing collapses into ErrDecryptionFailed so that a
// wrong key pair and a tampered payload are indistinguishable.
func DecryptECIES(privateKey []byte, payload *ECIESPayload) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		return nil, ErrDecryptionFailed
	}

	ephemPub, err := secp256k1.ParsePubKey(payload.EphemPublicKey)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	encKey, macKey := deriveECIESKeys(priv, ephemPub)

	if !VerifyHMAC(macKey, eciesMACInput(payload.IV, payload.EphemPublicKey, payload.Ciphertext), payload.MAC) {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := DecryptCBC(encKey, payload.IV, payload.Ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// deriveECIESKeys hashes the ECDH shared X coordinate with SHA-512 and
// splits the digest into the cipher key and the MAC key. Unlike the
// symmetric envelope, the two halves are independent keys.
func deriveECIESKeys(priv *secp256k1.PrivateKey, pub *secp256k1.PublicKey) (encKey, macKey []byte) {
	shared := secp256k1.GenerateSharedSecret(priv, pub)
	derived := sha512.Sum512(shared)
	return derived[:32], derived[32:]
}

func eciesMACInput(iv, ephemPublicKey, ciphertext []byte) []byte {
	buf := make([]byte, 0, len(iv)+len(ephemPublicKey)+len(ciphertext))
	buf = append(buf, iv...)
	buf = append(buf, ephemPublicKey...)
	return append(buf, ciphertext...)
}
