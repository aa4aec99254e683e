package verifier

import (
	"errors"
	"fmt"

	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/crypto/digest"
	"github.com/cometbft/sigverify/crypto/encoding"
	"github.com/cometbft/sigverify/crypto/secp256k1eth"
)

// Framing selects what is hashed before an Ethereum signature is checked.
type Framing string

const (
	// FramingRaw hashes the message bytes as they are.
	FramingRaw Framing = "raw"
	// FramingPersonalMessage hashes the EIP-191 personal_sign framing of the
	// message, which is what browser wallets sign for eth_sign and
	// personal_sign requests.
	FramingPersonalMessage Framing = "personal_message"
)

// ErrUnknownFraming is returned for a Framing value that isn't defined.
var ErrUnknownFraming = errors.New("unknown message framing")

// EthereumConfig configures an Ethereum verifier.
type EthereumConfig struct {
	// PubKeyEncoding defaults to hex.
	PubKeyEncoding encoding.Encoding
	// SignatureEncoding defaults to hex.
	SignatureEncoding encoding.Encoding
	// Framing defaults to FramingRaw.
	Framing Framing
}

// DefaultEthereumConfig returns the default Ethereum config.
func DefaultEthereumConfig() EthereumConfig {
	return EthereumConfig{
		PubKeyEncoding:    encoding.Hex,
		SignatureEncoding: encoding.Hex,
		Framing:           FramingRaw,
	}
}

// ValidateBasic performs basic validation.
func (cfg EthereumConfig) ValidateBasic() error {
	for _, enc := range []encoding.Encoding{cfg.PubKeyEncoding, cfg.SignatureEncoding} {
		if _, err := encoding.ParseEncoding(string(enc)); err != nil {
			return err
		}
	}
	switch cfg.Framing {
	case FramingRaw, FramingPersonalMessage:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFraming, cfg.Framing)
	}
}

// Ethereum verifies recoverable secp256k1 signatures over KECCAK256(msg) and
// derives 0x-prefixed hex addresses.
type Ethereum struct {
	cfg EthereumConfig
}

var _ crypto.Verifier = (*Ethereum)(nil)

// NewEthereum returns an Ethereum verifier. Empty fields in cfg take their
// defaults.
func NewEthereum(cfg EthereumConfig) (*Ethereum, error) {
	def := DefaultEthereumConfig()
	if cfg.PubKeyEncoding == "" {
		cfg.PubKeyEncoding = def.PubKeyEncoding
	}
	if cfg.SignatureEncoding == "" {
		cfg.SignatureEncoding = def.SignatureEncoding
	}
	if cfg.Framing == "" {
		cfg.Framing = def.Framing
	}
	if err := cfg.ValidateBasic(); err != nil {
		return nil, err
	}
	// ValidateBasic accepted both names, so these can't fail.
	cfg.PubKeyEncoding, _ = encoding.ParseEncoding(string(cfg.PubKeyEncoding))
	cfg.SignatureEncoding, _ = encoding.ParseEncoding(string(cfg.SignatureEncoding))
	return &Ethereum{cfg: cfg}, nil
}

// Config returns a copy of the verifier's configuration.
func (v *Ethereum) Config() EthereumConfig {
	return v.cfg
}

// VerifySignature implements crypto.Verifier. pubKey is the raw 64 byte
// point and sig a 65 byte R || S || V signature with V in {0, 1, 27, 28}.
func (v *Ethereum) VerifySignature(pubKey string, msg []byte, sig string) (bool, error) {
	pk, err := v.pubKey(pubKey)
	if err != nil {
		return false, err
	}
	sigBz, err := v.cfg.SignatureEncoding.Decode(fieldSignature, sig)
	if err != nil {
		return false, nil
	}
	ok, err := pk.VerifyDigest(v.hash(msg), sigBz)
	if err != nil {
		if secp256k1eth.IsSignatureError(err) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// GenerateAddress implements crypto.Verifier.
func (v *Ethereum) GenerateAddress(pubKey string) (crypto.Address, error) {
	pk, err := v.pubKey(pubKey)
	if err != nil {
		return "", err
	}
	return pk.HexAddress()
}

func (v *Ethereum) hash(msg []byte) []byte {
	if v.cfg.Framing == FramingPersonalMessage {
		msg = digest.PersonalMessage(msg)
	}
	return digest.Keccak256(msg)
}

func (v *Ethereum) pubKey(s string) (secp256k1eth.PubKey, error) {
	bz, err := v.cfg.PubKeyEncoding.DecodeFixed(fieldPubKey, s, secp256k1eth.PubKeySize)
	if err != nil {
		return nil, err
	}
	return secp256k1eth.ParsePubKey(bz)
}
