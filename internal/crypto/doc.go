// Package crypto provides the cryptographic primitives for the bridgelock
// envelope protocol. It implements authenticated symmetric encryption for
// session payloads and a secp256k1 subsystem for trust bootstrap and
// session-key exchange.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - AES-256-CBC with PKCS#7 padding: symmetric encryption of serialized
//     payloads. CBC requires a random, never-reused 16-byte IV per message.
//
//   - HMAC-SHA256: message authentication. The envelope tag covers
//     ciphertext || iv, so tampering with either is detected before any
//     decryption is attempted.
//
//   - secp256k1 ECDSA (compact signatures): signing over Keccak-256 digests.
//     Signatures carry a recovery id, so the signer's public key can be
//     recovered from the signature and message alone.
//
//   - ECIES (eccrypto-compatible): hybrid public-key encryption. An
//     ephemeral ECDH agreement is hashed with SHA-512; the first half keys
//     AES-256-CBC, the second half keys an HMAC-SHA256 tag over
//     iv || ephemeral public key || ciphertext.
//
// # Security Model
//
// The envelope follows Encrypt-then-MAC discipline: [Open] recomputes the
// tag over ciphertext || iv and compares it in constant time before the
// ciphertext is ever handed to the cipher. Decrypting unauthenticated CBC
// ciphertext exposes padding oracles and bit-flipping attacks; the gate is
// a correctness requirement, not an optimization.
//
// CBC IVs MUST be unique per encryption under a given key. [Seal] draws a
// fresh IV from a cryptographically secure source on every call;
// [SealWithIV] exists for callers whose IVs come from a protocol that
// guarantees freshness, and for pinned test vectors.
//
// The envelope uses the one session key for both encryption and
// authentication, matching the wire protocol it interoperates with.
// Deriving independent keys would be stronger but would change the format.
// The ECIES scheme, by contrast, derives independent cipher and MAC keys
// from the shared secret.
//
// Key material is never logged, persisted, or retained beyond the duration
// of a call.
//
// # Encoding
//
// All wire values are lowercase hex with no 0x prefix. [FromHex] tolerates
// a 0x prefix on input. [BytesToUTF8] fails on invalid UTF-8 rather than
// substituting replacement runes, so a corrupted-but-authenticated payload
// surfaces as an error instead of mojibake.
package crypto
