package key

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyJSON_RoundTrip(t *testing.T) {
	orig := testMasterKey(t, Testnet, false)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Key
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, orig.Bytes(), back.Bytes())
	assert.Equal(t, orig.ChainCode(), back.ChainCode())
	assert.Equal(t, Testnet, back.Network())
	assert.False(t, back.CompressPublicKeys())
}

func TestKeyJSON_RejectsCorruptScalar(t *testing.T) {
	orig := testMasterKey(t, Mainnet, true)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	zeroed := strings.Replace(string(data), orig.Hex(), strings.Repeat("0", 64), 1)

	var back Key
	err = json.Unmarshal([]byte(zeroed), &back)
	assert.ErrorIs(t, err, ErrInvalidScalar)
}

func TestKeyJSON_RejectsBadChainCode(t *testing.T) {
	k := testMasterKey(t, Mainnet, true)

	enc := struct {
		Bytes              string `json:"bytes"`
		ChainCode          string `json:"chain_code"`
		Network            string `json:"network"`
		CompressPublicKeys bool   `json:"compress_public_keys"`
	}{
		Bytes:              k.Hex(),
		ChainCode:          "abcd",
		Network:            "mainnet",
		CompressPublicKeys: true,
	}
	data, err := json.Marshal(enc)
	require.NoError(t, err)

	var back Key
	assert.Error(t, json.Unmarshal(data, &back))
}

func TestKeyJSON_RejectsBadHex(t *testing.T) {
	var back Key
	err := json.Unmarshal([]byte(`{"bytes":"zz","chain_code":"","network":"mainnet","compress_public_keys":true}`), &back)
	assert.Error(t, err)
}
