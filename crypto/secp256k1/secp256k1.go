package secp256k1

import (
	"bytes"
	"errors"
	"fmt"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"

	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/crypto/digest"
	"github.com/cometbft/sigverify/libs/bech32"
)

const (
	KeyType = "secp256k1"

	// PubKeySize is the size of a compressed SEC1 public key: a 0x02 or 0x03
	// prefix followed by the x-coordinate.
	PubKeySize = 33
	// PubKeySizeUncompressed is the size of an uncompressed SEC1 public key:
	// a 0x04 prefix followed by the (x,y)-coordinates.
	PubKeySizeUncompressed = 65
)

var _ crypto.PubKey = PubKey{}

// PubKey implements crypto.PubKey for Cosmos SDK chains.
// It holds SEC1 bytes, compressed (33 bytes) or uncompressed (65 bytes),
// exactly as the caller supplied them. The address is computed over these
// bytes, so the two forms of one key have different addresses.
type PubKey []byte

// ParsePubKey checks that bz is a SEC1 encoded point on secp256k1.
// A wrong length is reported as crypto.ErrInvalidLength, anything else as a
// crypto.InvalidPublicKeyError.
func ParsePubKey(bz []byte) (PubKey, error) {
	if _, err := parse(bz); err != nil {
		return nil, err
	}
	pk := make(PubKey, len(bz))
	copy(pk, bz)
	return pk, nil
}

func parse(bz []byte) (*secp256k1.PublicKey, error) {
	switch len(bz) {
	case PubKeySize:
	case PubKeySizeUncompressed:
		// btcec also accepts the hybrid 0x06/0x07 forms, which no wallet emits.
		if bz[0] != 0x04 {
			return nil, crypto.InvalidPublicKeyError{
				KeyType: KeyType,
				Err:     fmt.Errorf("unexpected uncompressed prefix 0x%02x", bz[0]),
			}
		}
	default:
		return nil, crypto.ErrInvalidLength{Got: len(bz), Want: PubKeySize}
	}
	pub, err := secp256k1.ParsePubKey(bz)
	if err != nil {
		return nil, crypto.InvalidPublicKeyError{KeyType: KeyType, Err: err}
	}
	return pub, nil
}

// AddressBytes returns RIPEMD160(SHA256(pubkey)).
func (pubKey PubKey) AddressBytes() ([]byte, error) {
	sum, err := digest.CosmosAddress.Sum(pubKey)
	if err != nil {
		return nil, crypto.AddressDerivationError{Err: err}
	}
	return sum, nil
}

// Bech32Address returns the bech32 encoding of AddressBytes under prefix.
func (pubKey PubKey) Bech32Address(prefix string) (crypto.Address, error) {
	if prefix == "" {
		return "", crypto.ErrEmptyPrefix
	}
	sum, err := pubKey.AddressBytes()
	if err != nil {
		return "", err
	}
	addr, err := bech32.ConvertAndEncode(prefix, sum)
	if err != nil {
		return "", crypto.AddressDerivationError{Err: err}
	}
	return crypto.Address(addr), nil
}

func (pubKey PubKey) Bytes() []byte {
	return []byte(pubKey)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", []byte(pubKey))
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

// VerifySignature verifies a 64 byte R || S signature over SHA256(msg).
// It rejects signatures which are not in lower-S form.
func (pubKey PubKey) VerifySignature(msg []byte, sigStr []byte) bool {
	ok, err := pubKey.Verify(msg, sigStr)
	return err == nil && ok
}

// Verify is VerifySignature, but reports why a key or signature was
// rejected. Signature problems are returned as ErrSignature* errors, key
// problems as crypto.ErrInvalidLength or crypto.InvalidPublicKeyError.
// A well formed signature that doesn't match is (false, nil).
func (pubKey PubKey) Verify(msg []byte, sigStr []byte) (bool, error) {
	pub, err := parse(pubKey)
	if err != nil {
		return false, err
	}
	sig, err := ParseSignature(sigStr)
	if err != nil {
		return false, err
	}
	if !sig.IsLowS() {
		return false, ErrSignatureNotLowS
	}
	return sig.verify(digest.Sha256(msg), pub), nil
}

// IsSignatureError reports whether err was caused by the signature rather
// than by the public key.
func IsSignatureError(err error) bool {
	var il crypto.ErrInvalidLength
	return errors.Is(err, ErrSignatureOutOfRange) ||
		errors.Is(err, ErrSignatureNotLowS) ||
		(errors.As(err, &il) && il.Want == SignatureSize)
}
