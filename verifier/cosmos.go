package verifier

import (
	"errors"
	"fmt"

	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/crypto/encoding"
	"github.com/cometbft/sigverify/crypto/secp256k1"
	"github.com/cometbft/sigverify/libs/bech32"
)

const (
	fieldPubKey    = "public key"
	fieldSignature = "signature"
)

// CosmosConfig configures a Cosmos SDK chain verifier.
type CosmosConfig struct {
	// Prefix is the bech32 human readable part, e.g. "cosmos" or "stride".
	Prefix string
	// PubKeyEncoding defaults to base64.
	PubKeyEncoding encoding.Encoding
	// SignatureEncoding defaults to hex.
	SignatureEncoding encoding.Encoding
}

// DefaultCosmosConfig returns a config for prefix with the default field
// encodings.
func DefaultCosmosConfig(prefix string) CosmosConfig {
	return CosmosConfig{
		Prefix:            prefix,
		PubKeyEncoding:    encoding.Base64,
		SignatureEncoding: encoding.Hex,
	}
}

// ValidateBasic performs basic validation.
func (cfg CosmosConfig) ValidateBasic() error {
	if cfg.Prefix == "" {
		return crypto.ErrEmptyPrefix
	}
	// Round trip a dummy account hash: decoding rejects prefixes bech32
	// can't carry.
	bech, err := bech32.ConvertAndEncode(cfg.Prefix, make([]byte, 20))
	if err == nil {
		var hrp string
		hrp, _, err = bech32.DecodeAndConvert(bech)
		if err == nil && hrp != cfg.Prefix {
			err = fmt.Errorf("prefix is not lowercase")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid bech32 prefix %q: %w", cfg.Prefix, err)
	}
	for _, enc := range []encoding.Encoding{cfg.PubKeyEncoding, cfg.SignatureEncoding} {
		if _, err := encoding.ParseEncoding(string(enc)); err != nil {
			return err
		}
	}
	return nil
}

// Cosmos verifies secp256k1 signatures over SHA256(msg) and derives bech32
// addresses from RIPEMD160(SHA256(pubkey)).
type Cosmos struct {
	cfg CosmosConfig
}

var _ crypto.Verifier = (*Cosmos)(nil)

// NewCosmos returns a Cosmos verifier. Empty encodings in cfg take their
// defaults.
func NewCosmos(cfg CosmosConfig) (*Cosmos, error) {
	if cfg.PubKeyEncoding == "" {
		cfg.PubKeyEncoding = encoding.Base64
	}
	if cfg.SignatureEncoding == "" {
		cfg.SignatureEncoding = encoding.Hex
	}
	if err := cfg.ValidateBasic(); err != nil {
		return nil, err
	}
	// ValidateBasic accepted both names, so these can't fail.
	cfg.PubKeyEncoding, _ = encoding.ParseEncoding(string(cfg.PubKeyEncoding))
	cfg.SignatureEncoding, _ = encoding.ParseEncoding(string(cfg.SignatureEncoding))
	return &Cosmos{cfg: cfg}, nil
}

// Config returns a copy of the verifier's configuration.
func (v *Cosmos) Config() CosmosConfig {
	return v.cfg
}

// VerifySignature implements crypto.Verifier. pubKey is a SEC1 key (33 or
// 65 bytes) and sig a 64 byte R || S signature in lower-S form.
func (v *Cosmos) VerifySignature(pubKey string, msg []byte, sig string) (bool, error) {
	pk, err := v.pubKey(pubKey)
	if err != nil {
		return false, err
	}
	sigBz, err := v.cfg.SignatureEncoding.Decode(fieldSignature, sig)
	if err != nil {
		return false, nil
	}
	ok, err := pk.Verify(msg, sigBz)
	if err != nil {
		if secp256k1.IsSignatureError(err) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// GenerateAddress implements crypto.Verifier.
func (v *Cosmos) GenerateAddress(pubKey string) (crypto.Address, error) {
	pk, err := v.pubKey(pubKey)
	if err != nil {
		return "", err
	}
	return pk.Bech32Address(v.cfg.Prefix)
}

func (v *Cosmos) pubKey(s string) (secp256k1.PubKey, error) {
	bz, err := v.cfg.PubKeyEncoding.Decode(fieldPubKey, s)
	if err != nil {
		return nil, err
	}
	pk, err := secp256k1.ParsePubKey(bz)
	var il crypto.ErrInvalidLength
	if errors.As(err, &il) {
		return nil, crypto.DecodeError{Field: fieldPubKey, Encoding: v.cfg.PubKeyEncoding.String(), Err: il}
	}
	return pk, err
}
