package sha1ref

import (
	"encoding/binary"
	"math/big"
	"testing"
)

/* Each round constant is the integer part of 2^30 times the square root of 2, 3, 5 and 10. */
func TestRoundConstants_Roots(t *testing.T) {
	two30 := new(big.Float).SetPrec(128).SetMantExp(big.NewFloat(1), 30)
	for i, root := range [4]uint64{2, 3, 5, 10} {
		f := new(big.Float).SetPrec(128).SetUint64(root)
		f.Sqrt(f).Mul(f, two30)
		want, _ := f.Uint64()
		if uint64(roundK[i]) != want {
			t.Errorf("K%d = %08X, want %08X (2^30·√%d)", i, roundK[i], want, root)
		}
	}
}

/* Read little-endian, H0..H3 count the hex digits up and back down again. */
func TestInit_Pattern(t *testing.T) {
	var le [16]byte
	h := Init()
	for i, v := range h[:4] {
		binary.LittleEndian.PutUint32(le[i<<2:], v)
	}
	want := [16]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0xFE, 0xDC, 0xBA, 0x98, 0x76, 0x54, 0x32, 0x10}
	if le != want {
		t.Errorf("H0..H3 little-endian = % X, want % X", le, want)
	}
	if h[4] != 0xC3D2E1F0 {
		t.Errorf("H4 = %08X, want C3D2E1F0", h[4])
	}
}
