package secp256k1eth

import (
	"errors"
	"fmt"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/crypto/digest"
)

var (
	// ErrInvalidRecoveryID is returned when V is not one of 0, 1, 27 or 28.
	ErrInvalidRecoveryID = errors.New("secp256k1eth: invalid recovery id")
	// ErrSignatureOutOfRange is returned when R or S is zero or not below the
	// curve order.
	ErrSignatureOutOfRange = errors.New("secp256k1eth: signature scalar out of range")
	// ErrRecoveryFailed is returned when no public key can be recovered from a
	// well formed signature.
	ErrRecoveryFailed = errors.New("secp256k1eth: public key recovery failed")
)

// RecoverableSignature is an ECDSA signature with the recovery id needed to
// rebuild the signer's public key from the message hash.
//
// V is stored normalized to 0 or 1. Both the raw {0, 1} convention used by
// go-ethereum and the legacy {27, 28} convention used by most wallets are
// accepted on input; EIP-155 chain-id encoded values are not.
type RecoverableSignature struct {
	r, s [32]byte
	v    byte
}

// ParseRecoverableSignature decodes a 65 byte R || S || V signature.
// High S values are accepted, as ecrecover does.
func ParseRecoverableSignature(bz []byte) (RecoverableSignature, error) {
	var sig RecoverableSignature
	if len(bz) != SignatureLength {
		return sig, crypto.ErrInvalidLength{Got: len(bz), Want: SignatureLength}
	}

	v, err := NormalizeRecoveryID(bz[RecoveryIDOffset])
	if err != nil {
		return sig, err
	}
	r := new(big.Int).SetBytes(bz[:32])
	s := new(big.Int).SetBytes(bz[32:64])
	if !ethcrypto.ValidateSignatureValues(v, r, s, false) {
		return sig, ErrSignatureOutOfRange
	}

	copy(sig.r[:], bz[:32])
	copy(sig.s[:], bz[32:64])
	sig.v = v
	return sig, nil
}

// NormalizeRecoveryID maps V from {27, 28} to {0, 1} and leaves {0, 1}
// untouched. Any other value is rejected.
func NormalizeRecoveryID(v byte) (byte, error) {
	switch v {
	case 0, 1:
		return v, nil
	case 27, 28:
		return v - 27, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidRecoveryID, v)
	}
}

// V returns the normalized recovery id, 0 or 1.
func (sig RecoverableSignature) V() byte {
	return sig.v
}

// R returns the 32 byte big-endian R.
func (sig RecoverableSignature) R() []byte {
	return append([]byte(nil), sig.r[:]...)
}

// S returns the 32 byte big-endian S.
func (sig RecoverableSignature) S() []byte {
	return append([]byte(nil), sig.s[:]...)
}

// Bytes serializes sig as R || S || V with V in {0, 1}.
func (sig RecoverableSignature) Bytes() []byte {
	bz := make([]byte, SignatureLength)
	copy(bz[:32], sig.r[:])
	copy(bz[32:64], sig.s[:])
	bz[RecoveryIDOffset] = sig.v
	return bz
}

// BytesLegacyV serializes sig as R || S || V with V in {27, 28}.
func (sig RecoverableSignature) BytesLegacyV() []byte {
	bz := sig.Bytes()
	bz[RecoveryIDOffset] += 27
	return bz
}

// Recover returns the raw 64 byte public key that produced sig over hash.
func (sig RecoverableSignature) Recover(hash []byte) (PubKey, error) {
	if len(hash) != digest.Size {
		return nil, fmt.Errorf("%w: %v", ErrRecoveryFailed, crypto.ErrInvalidLength{Got: len(hash), Want: digest.Size})
	}
	pub, err := ethcrypto.Ecrecover(hash, sig.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecoveryFailed, err)
	}
	// Ecrecover returns the uncompressed form with its 0x04 prefix.
	return PubKey(pub[1:]), nil
}
