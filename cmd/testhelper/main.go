// Command testhelper exposes the envelope primitives on the command line
// for cross-SDK compatibility harnesses. Payloads and messages travel as
// JSON on stdin/stdout; key material is passed as hex arguments.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	bridgelock "github.com/bridgelock/envelope-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <command> [args]")
	}

	switch os.Args[1] {
	case "generate-key":
		generateKey()
	case "generate-keypair":
		generateKeyPair()
	case "seal":
		requireArgs(3, "usage: testhelper seal <key-hex>")
		seal(os.Args[2])
	case "open":
		requireArgs(3, "usage: testhelper open <key-hex>")
		open(os.Args[2])
	case "sign":
		requireArgs(3, "usage: testhelper sign <private-key-hex>")
		sign(os.Args[2])
	case "recover":
		requireArgs(3, "usage: testhelper recover <signature-hex>")
		recoverKey(os.Args[2])
	case "encrypt":
		requireArgs(3, "usage: testhelper encrypt <public-key-hex>")
		encrypt(os.Args[2])
	case "decrypt":
		requireArgs(3, "usage: testhelper decrypt <private-key-hex>")
		decrypt(os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func generateKey() {
	key, err := bridgelock.GenerateKey()
	if err != nil {
		fatal("generate key: %v", err)
	}
	fmt.Println(hex.EncodeToString(key))
}

func generateKeyPair() {
	kp, err := bridgelock.GenerateKeyPair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}
	writeJSON(kp)
}

func seal(keyHex string) {
	key := decodeHexArg("key", keyHex)

	message := json.RawMessage(readStdin())
	payload, err := bridgelock.Seal(message, key)
	if err != nil {
		fatal("seal: %v", err)
	}
	writeJSON(payload)
}

func open(keyHex string) {
	key := decodeHexArg("key", keyHex)

	var payload bridgelock.EncryptionPayload
	if err := json.Unmarshal(readStdin(), &payload); err != nil {
		fatal("decode payload: %v", err)
	}

	message, err := bridgelock.Open(&payload, key)
	if err != nil {
		fatal("open: %v", err)
	}
	os.Stdout.Write(append(message, '\n'))
}

func sign(privateKey string) {
	sig, err := bridgelock.Sign(privateKey, readStdin())
	if err != nil {
		fatal("sign: %v", err)
	}
	fmt.Println(hex.EncodeToString(sig))
}

func recoverKey(sigHex string) {
	sig := decodeHexArg("signature", sigHex)

	pub, err := bridgelock.RecoverPublicKey(sig, readStdin())
	if err != nil {
		fatal("recover: %v", err)
	}
	fmt.Println(pub)
}

func encrypt(publicKey string) {
	payload, err := bridgelock.EncryptToPublicKey(publicKey, readStdin())
	if err != nil {
		fatal("encrypt: %v", err)
	}
	writeJSON(payload)
}

func decrypt(privateKey string) {
	var payload bridgelock.AsymmetricPayload
	if err := json.Unmarshal(readStdin(), &payload); err != nil {
		fatal("decode payload: %v", err)
	}

	plaintext, err := bridgelock.DecryptWithPrivateKey(privateKey, &payload)
	if err != nil {
		fatal("decrypt: %v", err)
	}
	os.Stdout.Write(plaintext)
}

func requireArgs(n int, usage string) {
	if len(os.Args) < n {
		fatal(usage)
	}
}

func decodeHexArg(name, s string) []byte {
	data, err := hex.DecodeString(s)
	if err != nil {
		fatal("decode %s: %v", name, err)
	}
	return data
}

func readStdin() []byte {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return data
}

func writeJSON(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
