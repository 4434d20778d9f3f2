// Package bridgelock protects JSON-RPC-style messages exchanged between two
// mutually untrusted endpoints over a relay that offers no confidentiality
// or integrity guarantees of its own, such as a bridge between a wallet and
// a decentralized application.
//
// Messages are wrapped in an Encrypt-then-MAC envelope (AES-256-CBC plus
// HMAC-SHA256) under a shared 256-bit session key. A secp256k1 subsystem
// provides key pairs, ECIES public-key encryption, and recoverable ECDSA
// signatures for bootstrapping trust and exchanging session keys.
//
// Basic usage:
//
//	key, err := bridgelock.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, err := bridgelock.Seal(map[string]any{
//	    "jsonrpc": "2.0",
//	    "method":  "ping",
//	    "id":      1,
//	}, key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... payload travels through the relay ...
//
//	message, err := bridgelock.Open(payload, key)
//	if errors.Is(err, bridgelock.ErrAuthenticationFailed) {
//	    // tampered or misdirected; the ciphertext was never decrypted
//	}
package bridgelock
