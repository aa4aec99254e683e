// Package test holds fixed key, message and signature vectors plus signers
// that exist only to produce fixtures for tests. Nothing outside _test.go
// files should import it.
package test

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const (
	// CosmosPubKeyBase64 is a compressed secp256k1 key as exported by Keplr.
	CosmosPubKeyBase64 = "A7U3vhjbQ1HtcJmS3Z70X9ViIqhH3OvpPTeuUcbM9Iwf"
	// CosmosAddress is the cosmos-prefixed address of CosmosPubKeyBase64.
	CosmosAddress = "cosmos1eemk8jxhh04ajhz2yg5w5wpzntpy2hrds7akay"

	// EthereumPrivKeyHex is a fixed Ethereum private key.
	EthereumPrivKeyHex = "0a6231f9f5cda82e2d71652fb5f7cfb60b19575e5dd3b91b03a3845e7399700a"
	// EthereumAddress is the address of EthereumPrivKeyHex.
	EthereumAddress = "0xd9e45357b93225e94ab50bd859a767d542b8f881"
)

// CanonicalMessage is a JSON payload serialized with sorted keys and no
// whitespace, the form wallets sign.
var CanonicalMessage = []byte(`{"action":"login","nonce":"4f3c2a","timestamp":1700000000}`)

// OtherMessage differs from CanonicalMessage only in the nonce.
var OtherMessage = []byte(`{"action":"login","nonce":"4f3c2b","timestamp":1700000000}`)

// CosmosPubKeyBytes returns CosmosPubKeyBase64 decoded.
func CosmosPubKeyBytes() []byte {
	bz, err := base64.StdEncoding.DecodeString(CosmosPubKeyBase64)
	if err != nil {
		panic(err)
	}
	return bz
}

// PrivKeyFromSecret deterministically derives a 32 byte private key from a
// secret, so every run of a test uses the same keys.
func PrivKeyFromSecret(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// MustHex decodes s or panics.
func MustHex(s string) []byte {
	bz, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return bz
}
