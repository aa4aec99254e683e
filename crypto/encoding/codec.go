package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/cometbft/sigverify/crypto"
)

// Encoding identifies how a field is turned into text at the boundary.
type Encoding string

const (
	// Hex is case-insensitive hexadecimal, with or without a 0x prefix.
	Hex Encoding = "hex"
	// Base64 is standard, padded base64 (RFC 4648 section 4).
	Base64 Encoding = "base64"
)

// ErrUnsupportedEncoding describes an encoding name this package doesn't know.
type ErrUnsupportedEncoding struct {
	Encoding string
}

func (e ErrUnsupportedEncoding) Error() string {
	return fmt.Sprintf("encoding: unsupported encoding %q", e.Encoding)
}

// ParseEncoding returns the Encoding named s.
func ParseEncoding(s string) (Encoding, error) {
	switch enc := Encoding(strings.ToLower(strings.TrimSpace(s))); enc {
	case Hex, Base64:
		return enc, nil
	default:
		return "", ErrUnsupportedEncoding{Encoding: s}
	}
}

func (e Encoding) String() string {
	return string(e)
}

// Decode decodes s. field names the input in the returned crypto.DecodeError.
func (e Encoding) Decode(field, s string) ([]byte, error) {
	var (
		bz  []byte
		err error
	)
	switch e {
	case Hex:
		bz, err = DecodeHex(s)
	case Base64:
		bz, err = base64.StdEncoding.DecodeString(s)
	default:
		err = ErrUnsupportedEncoding{Encoding: string(e)}
	}
	if err != nil {
		return nil, crypto.DecodeError{Field: field, Encoding: string(e), Err: err}
	}
	if len(bz) == 0 {
		return nil, crypto.DecodeError{Field: field, Encoding: string(e), Err: crypto.ErrEmptyInput}
	}
	return bz, nil
}

// DecodeFixed decodes s and checks it is exactly size bytes long.
func (e Encoding) DecodeFixed(field, s string, size int) ([]byte, error) {
	bz, err := e.Decode(field, s)
	if err != nil {
		return nil, err
	}
	if len(bz) != size {
		return nil, crypto.DecodeError{
			Field:    field,
			Encoding: string(e),
			Err:      crypto.ErrInvalidLength{Got: len(bz), Want: size},
		}
	}
	return bz, nil
}

// Encode is the inverse of Decode. Hex output is lowercase without prefix.
func (e Encoding) Encode(bz []byte) string {
	if e == Base64 {
		return base64.StdEncoding.EncodeToString(bz)
	}
	return hex.EncodeToString(bz)
}

// DecodeHex decodes hexadecimal with an optional 0x or 0X prefix.
func DecodeHex(s string) ([]byte, error) {
	if has0xPrefix(s) {
		return hexutil.Decode("0x" + s[2:])
	}
	return hex.DecodeString(s)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
