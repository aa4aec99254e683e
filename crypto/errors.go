package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrefix is returned when a bech32 based verifier is built
	// without a human readable prefix.
	ErrEmptyPrefix = errors.New("crypto: empty bech32 prefix")
	// ErrEmptyInput is returned when an input that must not be empty is.
	ErrEmptyInput = errors.New("crypto: empty input")
)

// ErrInvalidLength describes decoded bytes whose length doesn't match the
// layout expected by the chain.
type ErrInvalidLength struct {
	Got, Want int
}

func (e ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: got %d, want %d", e.Got, e.Want)
}

// DecodeError describes an input string that isn't valid in its expected
// encoding, or that decodes to the wrong number of bytes.
type DecodeError struct {
	// Field names the input, e.g. "public key" or "signature".
	Field string
	// Encoding names the expected encoding, e.g. "hex" or "base64".
	Encoding string
	Err      error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("crypto: can't decode %s as %s: %v", e.Field, e.Encoding, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// InvalidPublicKeyError describes public key bytes that are well formed but
// don't represent a point on the curve.
type InvalidPublicKeyError struct {
	KeyType string
	Err     error
}

func (e InvalidPublicKeyError) Error() string {
	return fmt.Sprintf("crypto: invalid %s public key: %v", e.KeyType, e.Err)
}

func (e InvalidPublicKeyError) Unwrap() error {
	return e.Err
}

// AddressDerivationError is returned when the digest or encoding stage of an
// address pipeline can't produce output.
type AddressDerivationError struct {
	Err error
}

func (e AddressDerivationError) Error() string {
	return fmt.Sprintf("crypto: can't derive address: %v", e.Err)
}

func (e AddressDerivationError) Unwrap() error {
	return e.Err
}
