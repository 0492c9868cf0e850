package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdwalletorg/libhdwallet-go/codec"
)

func TestToWIF_Vectors(t *testing.T) {
	tests := []struct {
		name     string
		network  Network
		compress bool
		want     string
	}{
		{
			name:     "mainnet compressed",
			network:  Mainnet,
			compress: true,
			want:     "KwaqodAc2b4WKB9cxqyE98bN27hXN1wsoMYmkqFz338ry2772316",
		},
		{
			name:     "testnet compressed",
			network:  Testnet,
			compress: true,
			want:     "cMwqGYATTekmUcctMFnMWT6ReLzw2U3ZsPhEsFiVY9nsDmDa5qda",
		},
		{
			name:     "mainnet uncompressed",
			network:  Mainnet,
			compress: false,
			want:     "5Hu5G6UYxBtYZfYrqT3mfYdLGCwVdUrbAbZaFTnzL3JBsL5EovX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := testMasterKey(t, tt.network, tt.compress)
			assert.Equal(t, tt.want, k.ToWIF())
		})
	}
}

func TestFromWIF_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		network  Network
		compress bool
	}{
		{"mainnet compressed", Mainnet, true},
		{"mainnet uncompressed", Mainnet, false},
		{"testnet compressed", Testnet, true},
		{"testnet uncompressed", Testnet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := testMasterKey(t, tt.network, tt.compress)

			imported, err := FromWIF(orig.ToWIF())
			require.NoError(t, err)

			assert.Equal(t, orig.Bytes(), imported.Bytes())
			assert.Equal(t, tt.network, imported.Network())
			assert.Equal(t, tt.compress, imported.CompressPublicKeys())
			assert.Len(t, imported.ChainCode(), ChainCodeLen)
			assert.Equal(t, orig.ToWIF(), imported.ToWIF())
		})
	}
}

// The chain code of an imported key is rebuilt from the key bytes, so two
// imports of the same WIF agree and the imported key can derive children.
func TestFromWIF_RegeneratedChainCode(t *testing.T) {
	wif := testMasterKey(t, Mainnet, true).ToWIF()

	k1, err := FromWIF(wif)
	require.NoError(t, err)
	k2, err := FromWIF(wif)
	require.NoError(t, err)

	assert.Equal(t, k1.ChainCode(), k2.ChainCode())

	child, err := k1.DeriveChildPrivateKey(1, Normal)
	require.NoError(t, err)
	assert.Len(t, child.Bytes(), KeyLen)
}

func TestFromWIF_ChecksumMismatch(t *testing.T) {
	wif := []byte(testMasterKey(t, Mainnet, true).ToWIF())
	if wif[len(wif)-1] == '6' {
		wif[len(wif)-1] = '7'
	} else {
		wif[len(wif)-1] = '6'
	}

	_, err := FromWIF(string(wif))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestFromWIF_UnknownVersionByte(t *testing.T) {
	payload := make([]byte, 0, 1+KeyLen+1)
	payload = append(payload, 0x22)
	payload = append(payload, testMasterKey(t, Mainnet, true).Bytes()...)
	payload = append(payload, compressionSuffix)

	_, err := FromWIF(codec.Base58CheckEncode(payload, codec.ChecksumLen))
	assert.ErrorIs(t, err, ErrInvalidNetworkByte)
}

func TestFromWIF_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"invalid base58", "0OIl-not-a-wif"},
		{"truncated payload", codec.Base58CheckEncode([]byte{wifVersionMainnet, 0x01, 0x02}, codec.ChecksumLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromWIF(tt.input)
			assert.ErrorIs(t, err, ErrMalformedWIF)
		})
	}
}
