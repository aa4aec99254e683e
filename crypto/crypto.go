package crypto

// Address is the human readable form of an account, e.g. a bech32 string for
// Cosmos SDK chains or a 0x-prefixed hex string for Ethereum.
type Address string

func (a Address) String() string {
	return string(a)
}

// PubKey is a public key of a concrete curve and chain convention.
type PubKey interface {
	// AddressBytes returns the account hash the chain's address is built
	// from, before any text encoding.
	AddressBytes() ([]byte, error)
	Bytes() []byte
	// VerifySignature reports whether sig is a valid signature of msg.
	// Malformed signatures are reported as false.
	VerifySignature(msg []byte, sig []byte) bool
	Type() string
}

// Verifier verifies signatures and derives addresses for one chain family.
//
// Public keys and signatures are passed in their encoded string form. Each
// implementation documents which encoding it expects for which field.
// Implementations must be safe for concurrent use.
type Verifier interface {
	// VerifySignature reports whether sig is a signature of msg by pubKey.
	//
	// A structurally invalid signature is not an error: it yields false.
	// A public key that can't be decoded yields a DecodeError and one that
	// decodes to something that isn't a curve point yields an
	// InvalidPublicKeyError.
	VerifySignature(pubKey string, msg []byte, sig string) (bool, error)

	// GenerateAddress derives the address of pubKey. It fails with a
	// DecodeError, InvalidPublicKeyError or AddressDerivationError and never
	// returns a partial address.
	GenerateAddress(pubKey string) (Address, error)
}
