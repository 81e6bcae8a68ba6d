package address

import (
	"math/big"

	"go.monume.dev/libmonero/internal/errs"
)

// base58Alphabet is Monero's Base58 alphabet: the usual Bitcoin alphabet
// (no 0, O, I, l) encoded and decoded in 8-byte blocks rather than as one
// big integer, so that leading zero bytes aren't silently dropped.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const fullBlockSize = 8
const fullEncodedBlockSize = 11

// encodedBlockSizes[n] is the encoded character count for a final partial
// block of n raw bytes (0 < n < 8); index 0 is unused.
var encodedBlockSizes = [9]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// decodedBlockSizes maps an encoded block's character count back to its
// raw byte count; the inverse of encodedBlockSizes.
var decodedBlockSizes = map[int]int{2: 1, 3: 2, 5: 3, 6: 4, 7: 5, 9: 6, 10: 7, 11: 8}

func base58Encode(data []byte) string {
	var out []byte
	full := len(data) / fullBlockSize
	rem := len(data) % fullBlockSize

	for i := 0; i < full; i++ {
		out = append(out, encodeBlock(data[i*fullBlockSize:(i+1)*fullBlockSize], fullEncodedBlockSize)...)
	}
	if rem > 0 {
		out = append(out, encodeBlock(data[full*fullBlockSize:], encodedBlockSizes[rem])...)
	}
	return string(out)
}

// encodeBlock encodes up to 8 raw bytes as a big-endian integer in base 58,
// left-padded with the alphabet's first character to encodedSize digits.
func encodeBlock(block []byte, encodedSize int) []byte {
	num := new(big.Int).SetBytes(block)
	base := big.NewInt(58)
	zero := big.NewInt(0)
	mod := new(big.Int)

	digits := make([]byte, 0, encodedSize)
	for num.Cmp(zero) > 0 {
		num.DivMod(num, base, mod)
		digits = append(digits, base58Alphabet[mod.Int64()])
	}

	return padLeft(digits, encodedSize)
}

func padLeft(digits []byte, size int) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = base58Alphabet[0]
	}
	for i := 0; i < len(digits); i++ {
		out[size-1-i] = digits[i]
	}
	return out
}

func base58Decode(s string) ([]byte, error) {
	full := len(s) / fullEncodedBlockSize
	rem := len(s) % fullEncodedBlockSize

	var out []byte
	for i := 0; i < full; i++ {
		block, err := decodeBlock(s[i*fullEncodedBlockSize:(i+1)*fullEncodedBlockSize], fullBlockSize)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}

	if rem > 0 {
		rawSize, ok := decodedBlockSizes[rem]
		if !ok {
			return nil, errs.New(errs.InvalidArgument, "address: invalid base58 length", nil)
		}
		block, err := decodeBlock(s[full*fullEncodedBlockSize:], rawSize)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}

	return out, nil
}

// decodeBlock decodes an encoded block back into rawSize raw bytes.
func decodeBlock(block string, rawSize int) ([]byte, error) {
	num := big.NewInt(0)
	base := big.NewInt(58)

	for i := 0; i < len(block); i++ {
		idx := indexInAlphabet(block[i])
		if idx < 0 {
			return nil, errs.New(errs.InvalidArgument, "address: invalid base58 character", nil)
		}
		num.Mul(num, base)
		num.Add(num, big.NewInt(int64(idx)))
	}

	raw := num.Bytes()
	if len(raw) > rawSize {
		return nil, errs.New(errs.InvalidArgument, "address: base58 block overflows its raw size", nil)
	}
	return padBytes(raw, rawSize), nil
}

func padBytes(b []byte, size int) []byte {
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

func indexInAlphabet(c byte) int {
	for i := 0; i < len(base58Alphabet); i++ {
		if base58Alphabet[i] == c {
			return i
		}
	}
	return -1
}
