package secp256k1

import (
	"errors"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/cometbft/sigverify/crypto"
)

// SignatureSize is the size of an R || S signature.
const SignatureSize = 64

var (
	// ErrSignatureOutOfRange is returned when R or S is zero or not below the
	// curve order.
	ErrSignatureOutOfRange = errors.New("secp256k1: signature scalar out of range")
	// ErrSignatureNotLowS is returned for a signature whose S is in the upper
	// half of the curve order.
	ErrSignatureNotLowS = errors.New("secp256k1: signature is not in lower-S form")
)

// Signature is an ECDSA signature without recovery id, serialized as
// 32 bytes big-endian R followed by 32 bytes big-endian S.
type Signature struct {
	r, s secp256k1.ModNScalar
}

// ParseSignature decodes a 64 byte R || S signature. It does not check for
// lower-S form, see IsLowS.
func ParseSignature(bz []byte) (Signature, error) {
	var sig Signature
	if len(bz) != SignatureSize {
		return sig, crypto.ErrInvalidLength{Got: len(bz), Want: SignatureSize}
	}
	if overflow := sig.r.SetByteSlice(bz[:32]); overflow || sig.r.IsZero() {
		return Signature{}, ErrSignatureOutOfRange
	}
	if overflow := sig.s.SetByteSlice(bz[32:]); overflow || sig.s.IsZero() {
		return Signature{}, ErrSignatureOutOfRange
	}
	return sig, nil
}

// NewSignature builds a Signature from its scalars.
func NewSignature(r, s *secp256k1.ModNScalar) Signature {
	return Signature{r: *r, s: *s}
}

// R returns the 32 byte big-endian R.
func (sig Signature) R() []byte {
	b := sig.r.Bytes()
	return b[:]
}

// S returns the 32 byte big-endian S.
func (sig Signature) S() []byte {
	b := sig.s.Bytes()
	return b[:]
}

// IsLowS reports whether S <= N/2.
func (sig Signature) IsLowS() bool {
	return !sig.s.IsOverHalfOrder()
}

// Normalize returns the lower-S form of sig.
func (sig Signature) Normalize() Signature {
	if sig.IsLowS() {
		return sig
	}
	out := sig
	out.s.Negate()
	return out
}

// Bytes serializes sig as R || S.
func (sig Signature) Bytes() []byte {
	bz := make([]byte, SignatureSize)
	sig.r.PutBytesUnchecked(bz[:32])
	sig.s.PutBytesUnchecked(bz[32:])
	return bz
}

func (sig Signature) verify(hash []byte, pub *secp256k1.PublicKey) bool {
	return ecdsa.NewSignature(&sig.r, &sig.s).Verify(hash, pub)
}
