package codec

import "math/big"

// SignedLE interprets b as a little-endian two's-complement integer. The
// sign bit is the top bit of the final byte.
func SignedLE(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}

	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}

	v := new(big.Int).SetBytes(be)
	if b[len(b)-1]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return v
}

// SignedLEBytes encodes v as a minimal-width little-endian two's-complement
// byte slice: the inverse of SignedLE.
func SignedLEBytes(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0}
	}

	n := (v.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}

	if v.Sign() > 0 {
		// Positive values need a clear sign bit.
		if v.Bit(8*n-1) == 1 {
			n++
		}
		out := make([]byte, n)
		be := v.Bytes()
		for i, c := range be {
			out[len(be)-1-i] = c
		}
		return out
	}

	// Negative: two's complement over the minimal width that still
	// represents v. -(1 << (8n-1)) is the most negative n-byte value.
	limit := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	if new(big.Int).Neg(v).Cmp(limit) > 0 {
		n++
	}

	tc := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	tc.Add(tc, v)

	be := tc.FillBytes(make([]byte, n))
	out := make([]byte, n)
	for i, c := range be {
		out[n-1-i] = c
	}
	return out
}
