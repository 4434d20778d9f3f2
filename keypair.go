package bridgelock

import (
	"github.com/bridgelock/envelope-go/internal/crypto"
)

// KeyPair holds a secp256k1 key pair as hex strings with no 0x prefix:
// a 32-byte private scalar and the matching 65-byte uncompressed public
// point. The private half must never leave the generating endpoint.
type KeyPair struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// GenerateKeyPair generates a new secp256k1 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return &KeyPair{
		PrivateKey: crypto.ToHex(kp.PrivateKey),
		PublicKey:  kp.PublicKeyHex,
	}, nil
}

// KeyPairFromPrivateKey re-derives the public half from a private key hex
// string. The public key is always deterministically derivable from the
// private key.
func KeyPairFromPrivateKey(privateKey string) (*KeyPair, error) {
	priv, err := decodePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	kp, err := crypto.KeypairFromPrivateKey(priv)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return &KeyPair{
		PrivateKey: crypto.ToHex(kp.PrivateKey),
		PublicKey:  kp.PublicKeyHex,
	}, nil
}

// Sign hashes message with Keccak-256 and produces a 65-byte compact ECDSA
// signature r || s || v, where v is the recovery id. The signer's public
// key can be recovered from the signature alone via RecoverPublicKey.
func Sign(privateKey string, message []byte) ([]byte, error) {
	priv, err := decodePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(priv, message)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return sig, nil
}

// RecoverPublicKey hashes message identically to Sign and recovers the
// signer's uncompressed public key hex from the signature, without the
// public key being transmitted separately.
func RecoverPublicKey(signature, message []byte) (string, error) {
	pub, err := crypto.RecoverPublicKey(signature, message)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	return crypto.ToHex(pub), nil
}

// AsymmetricPayload is the structured ciphertext produced by
// EncryptToPublicKey. Its fields are hex-encoded and round-trip through
// JSON, but the internal layout is an implementation detail of the ECIES
// scheme — treat the payload as an opaque blob.
type AsymmetricPayload struct {
	Iv             string `json:"iv"`
	EphemPublicKey string `json:"ephemPublicKey"`
	Ciphertext     string `json:"ciphertext"`
	Mac            string `json:"mac"`
}

// EncryptToPublicKey performs ECIES hybrid encryption to a public key hex
// string: an ephemeral key agreement against the recipient key, symmetric
// encryption of plaintext, and authentication of the result. Only the
// holder of the matching private key can invert this.
func EncryptToPublicKey(publicKey string, plaintext []byte) (*AsymmetricPayload, error) {
	pub, err := crypto.FromHex(publicKey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	sealed, err := crypto.EncryptECIES(pub, plaintext)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return &AsymmetricPayload{
		Iv:             crypto.ToHex(sealed.IV),
		EphemPublicKey: crypto.ToHex(sealed.EphemPublicKey),
		Ciphertext:     crypto.ToHex(sealed.Ciphertext),
		Mac:            crypto.ToHex(sealed.MAC),
	}, nil
}

// DecryptWithPrivateKey inverts EncryptToPublicKey. It fails with
// ErrDecryptionFailed if the payload was not produced for this key pair or
// has been tampered with; the payload's MAC is checked before decryption.
func DecryptWithPrivateKey(privateKey string, payload *AsymmetricPayload) ([]byte, error) {
	priv, err := decodePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		return nil, &DecryptionError{Err: crypto.ErrDecryptionFailed}
	}

	sealed, err := decodeAsymmetricPayload(payload)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.DecryptECIES(priv, sealed)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return plaintext, nil
}

// DeriveSharedKey computes the ECDH shared secret between a local private
// key and a peer public key. Both sides derive the same 32-byte value,
// which is suitable as an envelope session key.
func DeriveSharedKey(privateKey, publicKey string) ([]byte, error) {
	priv, err := decodePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	pub, err := crypto.FromHex(publicKey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	shared, err := crypto.SharedSecret(priv, pub)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return shared, nil
}

func decodePrivateKey(privateKey string) ([]byte, error) {
	priv, err := crypto.FromHex(privateKey)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return priv, nil
}

// decodeAsymmetricPayload hex-decodes all fields up front so that a
// syntactically broken payload is distinguishable from a cryptographically
// rejected one.
func decodeAsymmetricPayload(payload *AsymmetricPayload) (*crypto.ECIESPayload, error) {
	iv, err := crypto.FromHex(payload.Iv)
	if err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	ephem, err := crypto.FromHex(payload.EphemPublicKey)
	if err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	ciphertext, err := crypto.FromHex(payload.Ciphertext)
	if err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	mac, err := crypto.FromHex(payload.Mac)
	if err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	return &crypto.ECIESPayload{
		IV:             iv,
		EphemPublicKey: ephem,
		Ciphertext:     ciphertext,
		MAC:            mac,
	}, nil
}
