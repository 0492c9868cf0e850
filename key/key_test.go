package key

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "fancy lemon deliver stock castle eye answer palm nerve exchange sibling asset"

const (
	testMasterKeyHex   = "0adeeb9e937708e56934e0c930ca5c32120bb0b0d7db65c7d863c3d8f37ad74d"
	testMasterChainHex = "ed3c5ea5d2b9aa9205d53d56b48108a1f6911fe9c905d4edfb8da49f036399c5"
	testCompressedPub  = "03dafb7df037fd4623009af2d4231fc015f0f194da5b5b197dd1d893bea2bae509"
	testUncompressedPub = "04dafb7df037fd4623009af2d4231fc015f0f194da5b5b197dd1d893bea2bae509" +
		"4bf6d01b09912642b69f6ccbba9e79eb621189184dfbf6148eccc23a66c43255"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func testMasterKey(t *testing.T, network Network, compress bool) *Key {
	t.Helper()
	k, err := New(testMnemonic, network, compress)
	require.NoError(t, err)
	return k
}

// --- Master key construction ---

func TestNew_MasterVector(t *testing.T) {
	k := testMasterKey(t, Mainnet, true)

	assert.Equal(t, testMasterKeyHex, k.Hex())
	assert.Equal(t, mustHex(t, testMasterChainHex), k.ChainCode())
	assert.Equal(t, Mainnet, k.Network())
	assert.True(t, k.CompressPublicKeys())
}

func TestNew_InvalidMnemonic(t *testing.T) {
	_, err := New("foo bar baz qux quux corge grault garply waldo fred plugh xyzzy", Mainnet, true)
	assert.ErrorIs(t, err, ErrBadMnemonic)
}

func TestNewFromSeed_WrongLength(t *testing.T) {
	_, err := NewFromSeed(make([]byte, 32), Mainnet, true)
	assert.ErrorIs(t, err, ErrInvalidSeed)

	_, err = NewFromSeed(nil, Mainnet, true)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestNewFromSeed_Deterministic(t *testing.T) {
	seed := make([]byte, SeedLen)
	for i := range seed {
		seed[i] = byte(i)
	}

	k1, err := NewFromSeed(seed, Testnet, false)
	require.NoError(t, err)
	k2, err := NewFromSeed(seed, Testnet, false)
	require.NoError(t, err)

	assert.Equal(t, k1.Bytes(), k2.Bytes())
	assert.Equal(t, k1.ChainCode(), k2.ChainCode())
}

// --- Public key serialization ---

func TestPublicKey_Compressed(t *testing.T) {
	k := testMasterKey(t, Mainnet, true)

	pub := k.PublicKey()
	assert.Len(t, pub, 33)
	assert.Equal(t, testCompressedPub, hex.EncodeToString(pub))
}

func TestPublicKey_Uncompressed(t *testing.T) {
	k := testMasterKey(t, Mainnet, false)

	pub := k.PublicKey()
	assert.Len(t, pub, 65)
	assert.Equal(t, testUncompressedPub, hex.EncodeToString(pub))
}

func TestExtendedKeys(t *testing.T) {
	k := testMasterKey(t, Mainnet, true)

	xprv := k.ExtendedPrivateKey()
	assert.Equal(t, append(k.Bytes(), k.ChainCode()...), xprv)
	assert.Len(t, xprv, KeyLen+ChainCodeLen)

	xpub := k.ExtendedPublicKey()
	assert.Equal(t, append(k.PublicKey(), k.ChainCode()...), xpub)
	assert.Len(t, xpub, 33+ChainCodeLen)
}

// --- Addresses ---

func TestAddress_Vectors(t *testing.T) {
	tests := []struct {
		name    string
		network Network
		want    string
	}{
		{
			name:    "mainnet",
			network: Mainnet,
			want:    "1YeLh5cLf94yHkF7q9F9zXAhKdtyCFejHD1GKRYnvUpngaFSs1xY8q8ko8cUJ18VQAUC1JWV",
		},
		{
			name:    "testnet",
			network: Testnet,
			want:    "339YVHcvDfBjej5mX3cRtQjQibdDyXxfQ24DVnXj8jX2qoDdX6cjLsmsnYcwW5W4VfwbtRKdM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := testMasterKey(t, tt.network, true)

			addr, err := k.Address()
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

// --- Signing ---

func TestSignData(t *testing.T) {
	k := testMasterKey(t, Mainnet, true)

	digest := mustHex(t, "98b135496246b8bed3e045bae20da2339d01e1fd38dcceee8169d6dd000df70c")
	sig, err := k.SignData(digest)
	require.NoError(t, err)

	require.NotEmpty(t, sig)
	assert.Equal(t, byte(0x30), sig[0], "signature should be a DER sequence")
}

func TestSignData_WrongDigestLength(t *testing.T) {
	k := testMasterKey(t, Mainnet, true)

	_, err := k.SignData([]byte("too short"))
	assert.ErrorIs(t, err, ErrInvalidDigest)

	_, err = k.SignData(make([]byte, 64))
	assert.ErrorIs(t, err, ErrInvalidDigest)
}

// --- Networks ---

func TestNetworkFromName(t *testing.T) {
	n, err := NetworkFromName("mainnet")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, n)

	n, err = NetworkFromName("testnet")
	require.NoError(t, err)
	assert.Equal(t, Testnet, n)

	_, err = NetworkFromName("regtest")
	assert.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestNetwork_TextRoundTrip(t *testing.T) {
	for _, n := range []Network{Mainnet, Testnet} {
		text, err := n.MarshalText()
		require.NoError(t, err)

		var back Network
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, n, back)
	}
}
