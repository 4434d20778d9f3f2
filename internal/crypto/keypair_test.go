package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateKeypair(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if len(kp.PrivateKey) != PrivateKeySize {
		t.Errorf("private key length = %d, want %d", len(kp.PrivateKey), PrivateKeySize)
	}
	if len(kp.PublicKey) != PublicKeySize {
		t.Errorf("public key length = %d, want %d", len(kp.PublicKey), PublicKeySize)
	}
	if kp.PublicKey[0] != 0x04 {
		t.Errorf("public key prefix = %#x, want 0x04", kp.PublicKey[0])
	}
	if kp.PublicKeyHex != ToHex(kp.PublicKey) {
		t.Error("PublicKeyHex does not match PublicKey bytes")
	}
}

func TestGenerateKeypair_DeterministicWithFixedRand(t *testing.T) {
	seed := make([]byte, PrivateKeySize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	restore := SetRandReaderForTesting(bytes.NewReader(seed))
	a, err := GenerateKeypair()
	restore()
	if err != nil {
		t.Fatal(err)
	}

	restore = SetRandReaderForTesting(bytes.NewReader(seed))
	b, err := GenerateKeypair()
	restore()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a.PrivateKey, b.PrivateKey) || a.PublicKeyHex != b.PublicKeyHex {
		t.Error("keypair generation is not deterministic for a fixed random source")
	}
}

func TestKeypairFromPrivateKey(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	derived, err := KeypairFromPrivateKey(kp.PrivateKey)
	if err != nil {
		t.Fatalf("KeypairFromPrivateKey() error = %v", err)
	}

	if !bytes.Equal(derived.PublicKey, kp.PublicKey) {
		t.Error("derived public key does not match generated public key")
	}
}

func TestKeypairFromPrivateKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		priv []byte
	}{
		{"nil", nil},
		{"short", make([]byte, 16)},
		{"long", make([]byte, 33)},
		{"zero scalar", make([]byte, PrivateKeySize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := KeypairFromPrivateKey(tt.priv); !errors.Is(err, ErrInvalidPrivateKey) {
				t.Errorf("expected ErrInvalidPrivateKey, got %v", err)
			}
		})
	}
}

func TestSign_RecoverPublicKey(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	messages := [][]byte{
		[]byte(""),
		[]byte("hello"),
		[]byte(`{"jsonrpc":"2.0","method":"wc_sessionRequest","id":1}`),
		bytes.Repeat([]byte{0x00}, 1000),
	}

	for _, message := range messages {
		sig, err := Sign(kp.PrivateKey, message)
		if err != nil {
			t.Fatalf("Sign() error = %v", err)
		}
		if len(sig) != SignatureSize {
			t.Fatalf("signature length = %d, want %d", len(sig), SignatureSize)
		}
		if v := sig[SignatureSize-1]; v > 3 {
			t.Fatalf("recovery id = %d, want 0-3", v)
		}

		recovered, err := RecoverPublicKey(sig, message)
		if err != nil {
			t.Fatalf("RecoverPublicKey() error = %v", err)
		}
		if !bytes.Equal(recovered, kp.PublicKey) {
			t.Errorf("recovered key %x, want %x", recovered, kp.PublicKey)
		}
	}
}

func TestRecoverPublicKey_LegacyRecoveryID(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("legacy offset")
	sig, err := Sign(kp.PrivateKey, message)
	if err != nil {
		t.Fatal(err)
	}

	// Some peer SDKs emit the recovery id with the legacy 27 offset.
	legacy := append([]byte(nil), sig...)
	legacy[SignatureSize-1] += 27

	recovered, err := RecoverPublicKey(legacy, message)
	if err != nil {
		t.Fatalf("RecoverPublicKey() error = %v", err)
	}
	if !bytes.Equal(recovered, kp.PublicKey) {
		t.Error("recovery with legacy id offset failed")
	}
}

func TestRecoverPublicKey_WrongMessage(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	sig, err := Sign(kp.PrivateKey, []byte("signed message"))
	if err != nil {
		t.Fatal(err)
	}

	recovered, err := RecoverPublicKey(sig, []byte("different message"))
	if err == nil && bytes.Equal(recovered, kp.PublicKey) {
		t.Error("recovery over a different message yielded the signer's key")
	}
}

func TestRecoverPublicKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		sig  []byte
	}{
		{"nil", nil},
		{"truncated", make([]byte, SignatureSize-1)},
		{"oversized", make([]byte, SignatureSize+1)},
		{"bad recovery id", append(make([]byte, SignatureSize-1), 0x04)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RecoverPublicKey(tt.sig, []byte("msg")); !errors.Is(err, ErrInvalidSignature) {
				t.Errorf("expected ErrInvalidSignature, got %v", err)
			}
		})
	}
}

func TestSharedSecret_Symmetric(t *testing.T) {
	alice, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}
	bob, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	ab, err := SharedSecret(alice.PrivateKey, bob.PublicKey)
	if err != nil {
		t.Fatalf("SharedSecret() error = %v", err)
	}
	ba, err := SharedSecret(bob.PrivateKey, alice.PublicKey)
	if err != nil {
		t.Fatalf("SharedSecret() error = %v", err)
	}

	if !bytes.Equal(ab, ba) {
		t.Error("shared secrets differ between the two directions")
	}
	if len(ab) != SharedSecretSize {
		t.Errorf("shared secret length = %d, want %d", len(ab), SharedSecretSize)
	}
}

func TestSharedSecret_InvalidPublicKey(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := SharedSecret(kp.PrivateKey, []byte{0x04, 0x01}); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("expected ErrInvalidPublicKey, got %v", err)
	}
}

func TestKeccak256(t *testing.T) {
	// Keccak-256 of the empty input, distinct from SHA3-256.
	const want = "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

	if got := ToHex(Keccak256(nil)); got != want {
		t.Errorf("Keccak256(nil) = %s, want %s", got, want)
	}
}
