package keccak

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Known-answer test for Keccak-256 (legacy padding), independent of NIST
// SHA3-256: the empty-message digest below is the widely published
// Keccak-256("") value.
func TestSum256Empty(t *testing.T) {
	want, err := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if err != nil {
		t.Fatal(err)
	}

	got := Sum256(nil)
	if !bytes.Equal(got[:], want) {
		t.Errorf("Sum256(empty) = %x, want %x", got, want)
	}
}

func TestSum256Abc(t *testing.T) {
	want, err := hex.DecodeString("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	if err != nil {
		t.Fatal(err)
	}

	got := Sum256([]byte("abc"))
	if !bytes.Equal(got[:], want) {
		t.Errorf("Sum256(\"abc\") = %x, want %x", got, want)
	}
}

// Permute must be an involution-free, deterministic, bijective-looking
// transform: applying it to the zero state must not leave the state
// unchanged (a permutation with a fixed all-zero point would break the
// sponge).
func TestPermuteChangesZeroState(t *testing.T) {
	var st State
	before := st
	Permute(&st)
	if st == before {
		t.Fatal("Permute left the zero state unchanged")
	}
}

func TestStateBytesRoundTrip(t *testing.T) {
	var st State
	for i := range st {
		st[i] = uint64(i)*0x0101010101010101 + 1
	}
	b := StateBytes(&st)

	var got State
	SetStateBytes(&got, b)
	if got != st {
		t.Fatalf("StateBytes/SetStateBytes round trip mismatch: got %v, want %v", got, st)
	}
}

func TestAbsorbDeterministic(t *testing.T) {
	var st1, st2 State
	data := []byte("the quick brown fox jumps over the lazy dog")
	Absorb(&st1, data)
	Absorb(&st2, data)
	if st1 != st2 {
		t.Fatal("Absorb is not deterministic for identical input")
	}
}

func TestAbsorbDiffersOnRateBoundary(t *testing.T) {
	short := bytes.Repeat([]byte{0x42}, rate-1)
	long := bytes.Repeat([]byte{0x42}, rate+1)

	var stShort, stLong State
	Absorb(&stShort, short)
	Absorb(&stLong, long)
	if stShort == stLong {
		t.Fatal("Absorb produced identical state across a rate-block boundary")
	}
}
