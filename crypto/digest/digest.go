// Package digest implements the hash pipelines chains use to turn public keys
// into addresses and messages into signing digests.
//
// Algorithm choice, input framing and ordering are part of each chain's wire
// contract. CosmosAddress and EthereumAddress must stay byte-for-byte
// compatible with real wallets.
package digest

import (
	"errors"
	"fmt"
	"strconv"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint: staticcheck
)

const (
	// Size is the size of a SHA-256 or Keccak-256 digest.
	Size = sha256.Size
	// AddressSize is the size of the account hash both Cosmos SDK chains and
	// Ethereum put into an address.
	AddressSize = 20
)

// ErrEmptyDigest is returned by Pipeline.Sum when a stage produced no output.
var ErrEmptyDigest = errors.New("digest: empty output")

// Func is a single stage of a pipeline.
type Func func([]byte) []byte

// Sha256 returns the SHA-256 of bz.
func Sha256(bz []byte) []byte {
	h := sha256.Sum256(bz)
	return h[:]
}

// Ripemd160 returns the RIPEMD-160 of bz.
func Ripemd160(bz []byte) []byte {
	h := ripemd160.New()
	h.Write(bz)
	return h.Sum(nil)
}

// Keccak256 returns the legacy Keccak-256 of bz, as used by Ethereum. It is
// not FIPS-202 SHA3-256.
func Keccak256(bz []byte) []byte {
	return ethcrypto.Keccak256(bz)
}

// Last returns a stage keeping the trailing n bytes of its input. Inputs
// shorter than n produce no output.
func Last(n int) Func {
	return func(bz []byte) []byte {
		if len(bz) < n {
			return nil
		}
		out := make([]byte, n)
		copy(out, bz[len(bz)-n:])
		return out
	}
}

// Pipeline applies its stages in order, feeding each stage the output of the
// previous one.
type Pipeline []Func

// Sum runs the pipeline over bz. It fails if bz is empty or if any stage
// produced no output.
func (p Pipeline) Sum(bz []byte) ([]byte, error) {
	if len(bz) == 0 {
		return nil, ErrEmptyDigest
	}
	out := bz
	for i, f := range p {
		out = f(out)
		if len(out) == 0 {
			return nil, fmt.Errorf("stage %d: %w", i, ErrEmptyDigest)
		}
	}
	return out, nil
}

var (
	// CosmosAddress is RIPEMD160(SHA256(pubkey)).
	CosmosAddress = Pipeline{Sha256, Ripemd160}
	// EthereumAddress is the last 20 bytes of KECCAK256(pubkey).
	EthereumAddress = Pipeline{Keccak256, Last(AddressSize)}
)

const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// PersonalMessage frames msg the way EIP-191 personal_sign does:
// "\x19Ethereum Signed Message:\n" + decimal len(msg) + msg.
// The result still has to be hashed.
func PersonalMessage(msg []byte) []byte {
	n := strconv.Itoa(len(msg))
	framed := make([]byte, 0, len(personalMessagePrefix)+len(n)+len(msg))
	framed = append(framed, personalMessagePrefix...)
	framed = append(framed, n...)
	return append(framed, msg...)
}
