// crypto holds the chain-agnostic pieces of sigverify: the Verifier
// capability, the Address type and the error taxonomy shared by every chain
// family.
//
// Chain families plug in by implementing Verifier:
//
//	type Verifier interface {
//		VerifySignature(pubKey string, msg []byte, sig string) (bool, error)
//		GenerateAddress(pubKey string) (Address, error)
//	}
//
// The curve specific work lives in crypto/secp256k1 (Cosmos SDK chains) and
// crypto/secp256k1eth (Ethereum). Both expose a byte level PubKey:
//
//	type PubKey interface {
//		AddressBytes() ([]byte, error)
//		Bytes() []byte
//		VerifySignature(msg []byte, sig []byte) bool
//		Type() string
//	}
//
// Messages are never re-serialized here. Callers hand over the exact bytes
// that were signed, e.g. JSON with sorted keys and no whitespace.
package crypto
