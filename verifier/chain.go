package verifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cometbft/sigverify/crypto"
	"github.com/cometbft/sigverify/crypto/encoding"
)

// BIP-44 coin types of the supported families.
const (
	CoinTypeEthereum uint32 = 60
	CoinTypeCosmos   uint32 = 118
)

// ErrUnsupportedCoinType describes a coin type with no verifier.
type ErrUnsupportedCoinType struct {
	CoinType uint32
}

func (e ErrUnsupportedCoinType) Error() string {
	return fmt.Sprintf("unsupported coin type %d (supported: %s)", e.CoinType, SupportedCoinTypesStr())
}

// ChainConfig is everything needed to build the verifier of one chain.
// Fields that don't apply to the chain's family are ignored.
type ChainConfig struct {
	// Name identifies the chain to the caller, e.g. "cosmoshub-4".
	Name     string
	CoinType uint32
	// Prefix is the bech32 prefix of Cosmos family chains.
	Prefix            string
	PubKeyEncoding    encoding.Encoding
	SignatureEncoding encoding.Encoding
	// Framing applies to Ethereum family chains.
	Framing Framing
}

var families = map[uint32]func(ChainConfig) (crypto.Verifier, error){
	CoinTypeCosmos: func(cc ChainConfig) (crypto.Verifier, error) {
		return NewCosmos(CosmosConfig{
			Prefix:            cc.Prefix,
			PubKeyEncoding:    cc.PubKeyEncoding,
			SignatureEncoding: cc.SignatureEncoding,
		})
	},
	CoinTypeEthereum: func(cc ChainConfig) (crypto.Verifier, error) {
		return NewEthereum(EthereumConfig{
			PubKeyEncoding:    cc.PubKeyEncoding,
			SignatureEncoding: cc.SignatureEncoding,
			Framing:           cc.Framing,
		})
	},
}

// New returns the verifier for cc's coin type.
func New(cc ChainConfig) (crypto.Verifier, error) {
	newF, ok := families[cc.CoinType]
	if !ok {
		return nil, ErrUnsupportedCoinType{CoinType: cc.CoinType}
	}
	v, err := newF(cc)
	if err != nil {
		return nil, fmt.Errorf("chain %q: %w", cc.Name, err)
	}
	return v, nil
}

// SupportsCoinType reports whether New can build a verifier for coinType.
func SupportsCoinType(coinType uint32) bool {
	_, ok := families[coinType]
	return ok
}

// ListSupportedCoinTypes returns the supported coin types in ascending order.
func ListSupportedCoinTypes() []uint32 {
	coinTypes := make([]uint32, 0, len(families))
	for ct := range families {
		coinTypes = append(coinTypes, ct)
	}
	sort.Slice(coinTypes, func(i, j int) bool { return coinTypes[i] < coinTypes[j] })
	return coinTypes
}

func SupportedCoinTypesStr() string {
	coinTypes := ListSupportedCoinTypes()
	strs := make([]string, len(coinTypes))
	for i, ct := range coinTypes {
		strs[i] = fmt.Sprint(ct)
	}
	return strings.Join(strs, ", ")
}
