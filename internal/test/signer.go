package test

import (
	"crypto/sha256"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// The signers below use two unrelated implementations on purpose: btcec with
// RFC 6979 nonces and go-ethereum's recoverable signing. A verifier has to
// accept signatures from both, the way it has to accept signatures from any
// wallet.

// CosmosPubKey returns the compressed SEC1 public key of priv.
func CosmosPubKey(priv []byte) []byte {
	_, pub := secp256k1.PrivKeyFromBytes(priv)
	return pub.SerializeCompressed()
}

// CosmosPubKeyUncompressed returns the uncompressed SEC1 public key of priv.
func CosmosPubKeyUncompressed(priv []byte) []byte {
	_, pub := secp256k1.PrivKeyFromBytes(priv)
	return pub.SerializeUncompressed()
}

// CosmosSign signs SHA256(msg) with btcec and returns R || S in lower-S form.
func CosmosSign(priv, msg []byte) []byte {
	key, _ := secp256k1.PrivKeyFromBytes(priv)
	sum := sha256.Sum256(msg)
	// SignCompact returns V || R || S.
	compact, err := ecdsa.SignCompact(key, sum[:], true)
	if err != nil {
		panic(err)
	}
	return compact[1:]
}

// CosmosSignWithEthereumLib signs SHA256(msg) with go-ethereum and drops the
// recovery id, mimicking a wallet that doesn't use btcec.
func CosmosSignWithEthereumLib(priv, msg []byte) []byte {
	key, err := ethcrypto.ToECDSA(priv)
	if err != nil {
		panic(err)
	}
	sum := sha256.Sum256(msg)
	sig, err := ethcrypto.Sign(sum[:], key)
	if err != nil {
		panic(err)
	}
	return sig[:64]
}

// EthereumPubKey returns the raw 64 byte X || Y public key of priv.
func EthereumPubKey(priv []byte) []byte {
	key, err := ethcrypto.ToECDSA(priv)
	if err != nil {
		panic(err)
	}
	return ethcrypto.FromECDSAPub(&key.PublicKey)[1:]
}

// EthereumSign signs KECCAK256(msg) with go-ethereum and returns
// R || S || V with V in {0, 1}.
func EthereumSign(priv, msg []byte) []byte {
	key, err := ethcrypto.ToECDSA(priv)
	if err != nil {
		panic(err)
	}
	sig, err := ethcrypto.Sign(ethcrypto.Keccak256(msg), key)
	if err != nil {
		panic(err)
	}
	return sig
}

// EthereumSignLegacyV is EthereumSign with V in {27, 28}, the form most
// browser wallets return.
func EthereumSignLegacyV(priv, msg []byte) []byte {
	sig := EthereumSign(priv, msg)
	sig[64] += 27
	return sig
}

// EthereumSignWithBtcec signs KECCAK256(msg) with btcec compact signing and
// rearranges the result into R || S || V.
func EthereumSignWithBtcec(priv, msg []byte) []byte {
	key, _ := secp256k1.PrivKeyFromBytes(priv)
	compact, err := ecdsa.SignCompact(key, ethcrypto.Keccak256(msg), false)
	if err != nil {
		panic(err)
	}
	sig := make([]byte, 65)
	copy(sig, compact[1:])
	sig[64] = compact[0] - 27
	return sig
}
