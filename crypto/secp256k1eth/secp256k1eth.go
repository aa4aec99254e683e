package secp256k1eth

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/crypto/digest"
)

var _ crypto.PubKey = PubKey{}

// PubKey implements crypto.PubKey for Ethereum.
// It is the raw 64 byte (x,y) point, without the 0x04 prefix.
type PubKey []byte

// ParsePubKey checks that bz is a raw 64 byte point on secp256k1.
// A wrong length is reported as crypto.ErrInvalidLength, a point off the
// curve as crypto.InvalidPublicKeyError.
func ParsePubKey(bz []byte) (PubKey, error) {
	if len(bz) != PubKeySize {
		return nil, crypto.ErrInvalidLength{Got: len(bz), Want: PubKeySize}
	}
	uncompressed := make([]byte, 0, PubKeySize+1)
	uncompressed = append(uncompressed, 0x04)
	uncompressed = append(uncompressed, bz...)
	if _, err := secp256k1.ParsePubKey(uncompressed); err != nil {
		return nil, crypto.InvalidPublicKeyError{KeyType: KeyType, Err: err}
	}
	return PubKey(uncompressed[1:]), nil
}

// AddressBytes returns Last_20_Bytes(KECCAK256(pubkey)).
func (pubKey PubKey) AddressBytes() ([]byte, error) {
	if len(pubKey) != PubKeySize {
		return nil, crypto.AddressDerivationError{
			Err: crypto.ErrInvalidLength{Got: len(pubKey), Want: PubKeySize},
		}
	}
	sum, err := digest.EthereumAddress.Sum(pubKey)
	if err != nil {
		return nil, crypto.AddressDerivationError{Err: err}
	}
	return sum, nil
}

// HexAddress returns AddressBytes as lowercase hex with a 0x prefix. There
// is no EIP-55 checksum casing.
func (pubKey PubKey) HexAddress() (crypto.Address, error) {
	sum, err := pubKey.AddressBytes()
	if err != nil {
		return "", err
	}
	return crypto.Address(hexutil.Encode(sum)), nil
}

func (pubKey PubKey) Bytes() []byte {
	return []byte(pubKey)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeySecp256k1eth{%X}", []byte(pubKey))
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}

func (PubKey) Type() string {
	return KeyType
}

// VerifySignature verifies a signature of the form R || S || V over
// KECCAK256(msg), with no prefix or other framing added to msg.
// It recovers the signer and compares it with pubKey.
func (pubKey PubKey) VerifySignature(msg []byte, sigStr []byte) bool {
	ok, err := pubKey.Verify(msg, sigStr)
	return err == nil && ok
}

// Verify is VerifySignature, but reports why a key or signature was
// rejected. See VerifyDigest.
func (pubKey PubKey) Verify(msg []byte, sigStr []byte) (bool, error) {
	return pubKey.VerifyDigest(digest.Keccak256(msg), sigStr)
}

// VerifyDigest verifies sigStr against an already hashed, 32 byte message.
// Key problems are returned as crypto.ErrInvalidLength or
// crypto.InvalidPublicKeyError and signature problems as the errors from
// ParseRecoverableSignature or ErrRecoveryFailed. A signature that recovers
// to another key is (false, nil).
func (pubKey PubKey) VerifyDigest(hash []byte, sigStr []byte) (bool, error) {
	if _, err := ParsePubKey(pubKey); err != nil {
		return false, err
	}
	sig, err := ParseRecoverableSignature(sigStr)
	if err != nil {
		return false, err
	}
	recovered, err := sig.Recover(hash)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(recovered, pubKey) == 1, nil
}

// IsSignatureError reports whether err was caused by the signature rather
// than by the public key.
func IsSignatureError(err error) bool {
	var il crypto.ErrInvalidLength
	return errors.Is(err, ErrInvalidRecoveryID) ||
		errors.Is(err, ErrSignatureOutOfRange) ||
		errors.Is(err, ErrRecoveryFailed) ||
		(errors.As(err, &il) && il.Want == SignatureLength)
}
