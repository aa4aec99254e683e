package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVectors(t *testing.T) {
	testCases := []struct {
		name string
		f    Func
		in   string
		want string
	}{
		{"sha256", Sha256, "test", "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"},
		{"sha256 empty", Sha256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"keccak256", Keccak256, "test", "9c22ff5f21f0b81b113e63f7db6da94fedef11b2119b4088b89664fb9a3cb658"},
		{"keccak256 empty", Keccak256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"ripemd160", Ripemd160, "abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{"ripemd160 empty", Ripemd160, "", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hex.EncodeToString(tc.f([]byte(tc.in))))
		})
	}
}

func TestPipelineOrder(t *testing.T) {
	in := []byte("order matters")

	got, err := CosmosAddress.Sum(in)
	require.NoError(t, err)
	assert.Equal(t, Ripemd160(Sha256(in)), got)
	assert.Len(t, got, AddressSize)

	reversed, err := Pipeline{Ripemd160, Sha256}.Sum(in)
	require.NoError(t, err)
	assert.NotEqual(t, got, reversed)

	eth, err := EthereumAddress.Sum(in)
	require.NoError(t, err)
	assert.Equal(t, Keccak256(in)[12:], eth)
}

func TestPipelineEmpty(t *testing.T) {
	_, err := CosmosAddress.Sum(nil)
	require.ErrorIs(t, err, ErrEmptyDigest)

	_, err = Pipeline{Sha256, Last(Size + 1)}.Sum([]byte("x"))
	require.ErrorIs(t, err, ErrEmptyDigest)
}

func TestLastDoesNotAlias(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	out := Last(2)(in)
	out[0] = 9
	assert.Equal(t, []byte{1, 2, 3, 4}, in)
}

func TestPersonalMessage(t *testing.T) {
	assert.Equal(t, []byte("\x19Ethereum Signed Message:\n5hello"), PersonalMessage([]byte("hello")))
	assert.Equal(t, []byte("\x19Ethereum Signed Message:\n0"), PersonalMessage(nil))
}
