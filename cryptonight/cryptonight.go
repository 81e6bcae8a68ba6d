// Package cryptonight implements the CryptoNight memory-hard hash function
// as defined in CNS008 (https://cryptonote.org/cns/cns008.txt): Keccak-1600
// absorption, AES-256-derived scratchpad initialization, a 524,288-iteration
// memory-hard loop, and a four-way finalizer dispatch (BLAKE-256,
// Groestl-256, JH-256, Skein-256).
package cryptonight

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math/bits"

	"github.com/aead/skein"
	"github.com/dchest/blake256"
	"github.com/enceve/crypto/groestl"
	"github.com/enceve/crypto/jh"

	"go.monume.dev/libmonero/cryptonight/internal/aes"
	"go.monume.dev/libmonero/internal/keccak"
)

// scratchpadSize is the 2 MiB memory-hard working area CNS008 sec.3 defines.
const scratchpadSize = 2 * 1024 * 1024

// iterations is the number of passes the memory-hard loop makes, CNS008 sec.4.
const iterations = 524288

// Cache lets repeated Sum calls reuse the same 2 MiB backing array instead of
// allocating one per call. The zero value is ready to use.
//
// A Cache is not safe for concurrent Sum calls; give each goroutine its own
// Cache (or pool them) the way the reference miner code does.
type Cache struct {
	finalState keccak.State
	scratchpad [scratchpadSize]byte
}

// Sum computes the CryptoNight digest of data and returns it as 32 raw
// bytes.
func (c *Cache) Sum(data []byte) []byte {
	c.finalState = keccak.State{}
	keccak.Absorb(&c.finalState, data)
	state := keccak.StateBytes(&c.finalState)

	c.initScratchpad(&state)
	memoryHardLoop(&state, &c.scratchpad)
	c.computeResult(&state)

	keccak.SetStateBytes(&c.finalState, state)
	keccak.Permute(&c.finalState)
	final := keccak.StateBytes(&c.finalState)

	return finalize(&final)
}

// initScratchpad implements CNS008 sec.3: the first 32 bytes of the Keccak
// state become an AES-256 key; bytes 64..191 (8 blocks of 16 bytes) are
// encrypted with it 10 rounds at a time, each 128-byte chunk feeding the
// next, to fill the 2 MiB scratchpad.
func (c *Cache) initScratchpad(state *[200]byte) {
	var key [32]byte
	copy(key[:], state[0:32])
	rk := aes.DeriveKey(key)

	var blocks [128]byte
	copy(blocks[:], state[64:192])

	for off := 0; off < scratchpadSize; off += 128 {
		for j := 0; j < 128; j += 16 {
			var blk [16]byte
			copy(blk[:], blocks[j:j+16])
			aes.TenRounds(&blk, &rk)
			copy(blocks[j:j+16], blk[:])
		}
		copy(c.scratchpad[off:off+128], blocks[:])
	}
}

// computeResult implements CNS008 sec.5: bytes 32..63 of the Keccak state
// become a fresh AES-256 key; bytes 64..191 are XORed with each 128-byte
// scratchpad chunk in turn and re-encrypted, each chunk feeding forward into
// the next, and the final 128 bytes replace state[64:192].
func (c *Cache) computeResult(state *[200]byte) {
	var key [32]byte
	copy(key[:], state[32:64])
	rk := aes.DeriveKey(key)

	var block [128]byte
	copy(block[:], state[64:192])

	for off := 0; off < scratchpadSize; off += 128 {
		for j := 0; j < 128; j++ {
			block[j] ^= c.scratchpad[off+j]
		}
		for j := 0; j < 128; j += 16 {
			var blk [16]byte
			copy(blk[:], block[j:j+16])
			aes.TenRounds(&blk, &rk)
			copy(block[j:j+16], blk[:])
		}
	}

	copy(state[64:192], block[:])
}

// memoryHardLoop implements CNS008 sec.4. a and b are seeded by XORing
// bytes 0..31 with bytes 32..63 of the Keccak state, then updated for
// 524,288 iterations, each reading and writing one 16-byte scratchpad block
// addressed by the low 21 bits (16-byte aligned) of a or b in turn. The
// return values are unused by the caller; they are exposed only because the
// final a/b are not needed past this point (CNS008 discards them after the
// loop — the result comes from the scratchpad XOR-fold in computeResult).
func memoryHardLoop(state *[200]byte, scratchpad *[scratchpadSize]byte) (a, b [16]byte) {
	for i := 0; i < 16; i++ {
		a[i] = state[i] ^ state[32+i]
		b[i] = state[16+i] ^ state[48+i]
	}

	for iter := 0; iter < iterations; iter++ {
		addr := toAddr(a)
		var old [16]byte
		copy(old[:], scratchpad[addr:addr+16])

		var aesResult [16]byte
		aes.Round(&aesResult, &old, &a)

		bOld := b
		b = aesResult
		for k := 0; k < 16; k++ {
			scratchpad[addr+k] = aesResult[k] ^ bOld[k]
		}

		addr = toAddr(b)
		var spVal [16]byte
		copy(spVal[:], scratchpad[addr:addr+16])

		prod := mul128(b, spVal)
		sum := add128(a, prod)
		newA := xor128(spVal, sum)

		copy(scratchpad[addr:addr+16], sum[:])
		a = newA
	}

	return a, b
}

// toAddr converts a 16-byte value into a scratchpad byte offset: the low 21
// bits of its little-endian interpretation, with the low 4 bits cleared for
// 16-byte alignment.
func toAddr(v [16]byte) uint64 {
	return binary.LittleEndian.Uint64(v[:8]) & 0x1ffff0
}

// mul128 implements CNS008's 8byte_mul: the first 8 bytes of x and y are
// read as little-endian uint64s and multiplied into a 128-bit product,
// whose high and low 64-bit halves are then written back swapped (high
// half first) into the returned 16 bytes.
func mul128(x, y [16]byte) [16]byte {
	x0 := binary.LittleEndian.Uint64(x[:8])
	y0 := binary.LittleEndian.Uint64(y[:8])
	hi, lo := bits.Mul64(x0, y0)

	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], hi)
	binary.LittleEndian.PutUint64(out[8:16], lo)
	return out
}

// add128 implements CNS008's 8byte_add: each argument is split into two
// little-endian uint64 halves, which are added component-wise modulo 2^64
// (this is not a 128-bit add with carry propagation between halves).
func add128(x, y [16]byte) [16]byte {
	var out [16]byte
	x0 := binary.LittleEndian.Uint64(x[0:8])
	x1 := binary.LittleEndian.Uint64(x[8:16])
	y0 := binary.LittleEndian.Uint64(y[0:8])
	y1 := binary.LittleEndian.Uint64(y[8:16])
	binary.LittleEndian.PutUint64(out[0:8], x0+y0)
	binary.LittleEndian.PutUint64(out[8:16], x1+y1)
	return out
}

func xor128(x, y [16]byte) [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = x[i] ^ y[i]
	}
	return out
}

// finalize implements CNS008 sec.5's last step: the low 2 bits of the first
// byte of the post-permutation state select one of four finalizer hash
// functions, which is then applied to the full 200-byte state.
func finalize(state *[200]byte) []byte {
	var h hash.Hash
	switch state[0] & 0x03 {
	case 0x00:
		h = blake256.New()
	case 0x01:
		h = groestl.New256()
	case 0x02:
		h = jh.New256()
	default:
		h = skein.New256(nil)
	}
	h.Write(state[:])
	return h.Sum(nil)
}

// Sum computes the CryptoNight digest of data and returns it as 32 raw
// bytes. It allocates a fresh Cache; callers doing many hashes in sequence
// should keep their own Cache instead.
func Sum(data []byte) []byte {
	return new(Cache).Sum(data)
}

// CnSlowHash computes the CryptoNight digest of data and returns it as a
// lowercase hex string, matching cn_slow_hash's external surface.
func CnSlowHash(data []byte) string {
	return hex.EncodeToString(Sum(data))
}
