// Package bech32 converts between raw account bytes and bech32 strings with a
// human readable prefix, regrouping 8-bit bytes into 5-bit words and back.
package bech32

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ErrEmptyData is returned when there is nothing to encode, or when the
// regrouped words are empty.
var ErrEmptyData = errors.New("bech32: empty data")

// ConvertAndEncode regroups data into 5-bit words and encodes them with hrp.
func ConvertAndEncode(hrp string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyData
	}
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32: regrouping bits: %w", err)
	}
	if len(converted) == 0 {
		return "", ErrEmptyData
	}
	return bech32.Encode(hrp, converted)
}

// DecodeAndConvert decodes a bech32 string and regroups its words back into
// bytes. It returns the human readable prefix and the bytes.
func DecodeAndConvert(bech string) (string, []byte, error) {
	hrp, data, err := bech32.Decode(bech)
	if err != nil {
		return "", nil, fmt.Errorf("bech32: decoding %q: %w", bech, err)
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("bech32: regrouping bits: %w", err)
	}
	return hrp, converted, nil
}
