package crypto

import (
	"github.com/cometbft/sigverify/crypto/digest"
)

// Sha256 returns the SHA-256 digest of bytes.
func Sha256(bytes []byte) []byte {
	return digest.Sha256(bytes)
}
