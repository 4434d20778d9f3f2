package crypto

import (
	"fmt"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// Keypair represents a secp256k1 key pair.
type Keypair struct {
	// PrivateKey is the raw 32-byte private scalar.
	PrivateKey []byte
	// PublicKey is the raw 65-byte uncompressed public point.
	PublicKey []byte
	// PublicKeyHex is the public key encoded as hex with no 0x prefix.
	PublicKeyHex string
}

// GenerateKeypair creates a new random secp256k1 keypair.
func GenerateKeypair() (*Keypair, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(reader())
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return keypairFromPrivate(priv), nil
}

// KeypairFromPrivateKey re-derives the public half from a 32-byte private
// scalar. The public key is always deterministically derivable from the
// private key.
func KeypairFromPrivateKey(privateKey []byte) (*Keypair, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return keypairFromPrivate(priv), nil
}

func keypairFromPrivate(priv *secp256k1.PrivateKey) *Keypair {
	pub := priv.PubKey().SerializeUncompressed()
	return &Keypair{
		PrivateKey:   priv.Serialize(),
		PublicKey:    pub,
		PublicKeyHex: ToHex(pub),
	}
}

func parsePrivateKey(privateKey []byte) (*secp256k1.PrivateKey, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(privateKey), PrivateKeySize)
	}

	priv := secp256k1.PrivKeyFromBytes(privateKey)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}

	return priv, nil
}

// Keccak256 computes the legacy Keccak-256 digest used for signing. This
// is the pre-NIST Keccak padding, not standard SHA3-256.
func Keccak256(data []byte) []byte {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	return d.Sum(nil)
}

// Sign produces a 65-byte compact ECDSA signature r || s || v over the
// Keccak-256 digest of message, where v is the recovery id (0-3). The
// recovery id lets verifiers recover the signer's public key without it
// being transmitted separately.
func Sign(privateKey, message []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	// SignCompact places the recovery byte first, offset by 27; the wire
	// layout here is r || s || recovery id.
	compact := secpecdsa.SignCompact(priv, Keccak256(message), false)

	sig := make([]byte, SignatureSize)
	copy(sig, compact[1:])
	sig[SignatureSize-1] = compact[0] - 27

	return sig, nil
}

// RecoverPublicKey recovers the signer's uncompressed public key from a
// compact signature and the original (unhashed) message. The recovery id
// may be 0-3 or carry the legacy 27 offset.
func RecoverPublicKey(signature, message []byte) ([]byte, error) {
	if len(signature) != SignatureSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignature, len(signature), SignatureSize)
	}

	v := signature[SignatureSize-1]
	if v >= 27 {
		v -= 27
	}
	if v > 3 {
		return nil, fmt.Errorf("%w: recovery id %d", ErrInvalidSignature, signature[SignatureSize-1])
	}

	compact := make([]byte, SignatureSize)
	compact[0] = 27 + v
	copy(compact[1:], signature[:SignatureSize-1])

	pub, _, err := secpecdsa.RecoverCompact(compact, Keccak256(message))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	return pub.SerializeUncompressed(), nil
}

// SharedSecret computes the raw ECDH shared secret (the 32-byte X
// coordinate of the shared point) between a private and a public key.
func SharedSecret(privateKey, publicKey []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	return secp256k1.GenerateSharedSecret(priv, pub), nil
}
