package secp256k1eth

const (
	// PubKeySize is the size of a raw public key: the (x,y)-coordinates
	// without the 0x04 prefix byte, as Ethereum tooling passes them around.
	PubKeySize = 64
	// SignatureLength is the size of an R || S || V signature.
	SignatureLength = 65
	// RecoveryIDOffset is the position of V in a signature.
	RecoveryIDOffset = 64
	// KeyType is the string constant for Ethereum-compatible Secp256k1.
	KeyType = "secp256k1eth"
)
