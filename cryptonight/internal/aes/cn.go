// Package aes implements the AES building blocks CryptoNight needs: a
// single non-standard AES round (SubBytes, ShiftRows, MixColumns, then XOR
// with the round key, with no special-cased first or last round) and the
// AES-256 key schedule that expands a 32-byte key into 15 round keys.
//
// This is CryptoNight specific. It is not a general-purpose AES
// implementation and must not be used for anything else.
package aes

import "encoding/binary"

// NumRoundKeys is the number of 16-byte round keys DeriveKey produces.
const NumRoundKeys = 15

// DeriveKey expands a 32-byte AES-256 key into 15 round keys of 16 bytes
// each (240 bytes total), following the standard Rijndael key schedule with
// Rcon[1..7] = {01,02,04,08,10,20,40}. Only the first 10 round keys are used
// by the CryptoNight inner loop; callers that need fewer may slice the
// result.
func DeriveKey(key [32]byte) [NumRoundKeys * 16]byte {
	var w [NumRoundKeys * 4]uint32
	for i := 0; i < 8; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i : 4*i+4])
	}
	for i := 8; i < len(w); i++ {
		temp := w[i-1]
		switch {
		case i%8 == 0:
			temp = subWord(rotWord(temp)) ^ rcon[i/8-1]
		case i%8 == 4:
			temp = subWord(temp)
		}
		w[i] = w[i-8] ^ temp
	}

	var out [NumRoundKeys * 16]byte
	for i, word := range w {
		binary.BigEndian.PutUint32(out[4*i:4*i+4], word)
	}
	return out
}

// Round performs one CryptoNight AES round on a 16-byte block: SubBytes,
// ShiftRows, MixColumns, then XOR with roundKey. Unlike standard AES
// encryption, this is applied uniformly for all ten rounds — there is no
// special first or final round without MixColumns.
func Round(dst, src *[16]byte, roundKey *[16]byte) {
	var state [16]byte
	for i, b := range src {
		state[i] = sbox[b]
	}

	// ShiftRows, state laid out column-major (state[col*4+row]).
	shifted := [16]byte{
		state[0], state[5], state[10], state[15],
		state[4], state[9], state[14], state[3],
		state[8], state[13], state[2], state[7],
		state[12], state[1], state[6], state[11],
	}

	// MixColumns over GF(2^8), one column (4 bytes) at a time.
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := shifted[4*c], shifted[4*c+1], shifted[4*c+2], shifted[4*c+3]
		dst[4*c+0] = gmul2(a0) ^ gmul3(a1) ^ a2 ^ a3 ^ roundKey[4*c+0]
		dst[4*c+1] = a0 ^ gmul2(a1) ^ gmul3(a2) ^ a3 ^ roundKey[4*c+1]
		dst[4*c+2] = a0 ^ a1 ^ gmul2(a2) ^ gmul3(a3) ^ roundKey[4*c+2]
		dst[4*c+3] = gmul3(a0) ^ a1 ^ a2 ^ gmul2(a3) ^ roundKey[4*c+3]
	}
}

// TenRounds applies Round ten times in place using round keys rk[0..9],
// each 16 bytes, exactly as CryptoNight's scratchpad init and result stages
// require (CNS008 sec.3 and sec.5).
func TenRounds(block *[16]byte, rk *[NumRoundKeys * 16]byte) {
	for i := 0; i < 10; i++ {
		var key [16]byte
		copy(key[:], rk[i*16:i*16+16])
		var next [16]byte
		Round(&next, block, &key)
		*block = next
	}
}
