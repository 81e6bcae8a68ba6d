// Package keys derives Monero private and public keys from a hex seed, the
// way original_source/src/keys.rs's derive_priv_keys / derive_pub_key /
// derive_priv_vk_from_priv_sk do: a 64-hex-char seed is treated as an
// "original" 25-word seed, a 32-hex-char seed as a "mymonero" 13-word seed,
// and both paths end in an Ed25519 scalar reduction mod the group order.
package keys

import (
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"go.monume.dev/libmonero/internal/errs"
)

// ReduceScalar reduces a 32-byte little-endian value modulo the Ed25519
// group order L, the same operation as the reference sc_reduce32: any
// 256-bit value is accepted, not just ones already less than L.
func ReduceScalar(b [32]byte) [32]byte {
	var wide [64]byte
	copy(wide[:32], b[:])

	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails for inputs that are not exactly 64
		// bytes; wide is always exactly 64 bytes, so this is unreachable.
		panic("keys: SetUniformBytes rejected a 64-byte input: " + err.Error())
	}

	var out [32]byte
	copy(out[:], s.Bytes())
	return out
}

func keccak256(b []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	copy(out[:], h.Sum(nil))
	return out
}

func decodeHex32(s string, field string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, libmoneroInvalid(field, err)
	}
	if len(b) != 32 {
		return out, libmoneroInvalid(field, fmt.Errorf("want 32 bytes, got %d", len(b)))
	}
	copy(out[:], b)
	return out, nil
}

func libmoneroInvalid(field string, err error) error {
	return errs.New(errs.InvalidArgument, "keys: "+field, err)
}

// DerivePrivKeys derives the private spend and view keys from hexSeed.
// A 64-character hex seed is an "original" seed: the spend key is
// sc_reduce32(seed), and the view key is sc_reduce32(Keccak256(spend key)).
// A 32-character hex seed is a "mymonero" seed: the spend key is
// sc_reduce32(Keccak256(seed)), and the view key is
// sc_reduce32(Keccak256(Keccak256(seed))).
func DerivePrivKeys(hexSeed string) (privSpend, privView string, err error) {
	switch len(hexSeed) {
	case 64:
		seed, derr := decodeHex32(hexSeed, "hex seed")
		if derr != nil {
			return "", "", derr
		}
		spend := ReduceScalar(seed)
		spendHash := keccak256(spend[:])
		view := ReduceScalar(spendHash)
		return hex.EncodeToString(spend[:]), hex.EncodeToString(view[:]), nil

	case 32:
		raw, derr := hex.DecodeString(hexSeed)
		if derr != nil {
			return "", "", libmoneroInvalid("hex seed", derr)
		}
		spendHash := keccak256(raw)
		spend := ReduceScalar(spendHash)

		viewHash1 := keccak256(raw)
		viewHash2 := keccak256(viewHash1[:])
		view := ReduceScalar(viewHash2)
		return hex.EncodeToString(spend[:]), hex.EncodeToString(view[:]), nil

	default:
		return "", "", libmoneroInvalid("hex seed", fmt.Errorf("length %d is neither 32 nor 64", len(hexSeed)))
	}
}

// DerivePrivViewFromSpend derives a private view key directly from a
// private spend key: sc_reduce32(Keccak256(private spend key)). This is the
// general-purpose form original_source exposes as derive_priv_vk_from_priv_sk,
// independent of which seed type produced the spend key.
func DerivePrivViewFromSpend(privSpendHex string) (string, error) {
	spend, err := decodeHex32(privSpendHex, "private spend key")
	if err != nil {
		return "", err
	}
	hash := keccak256(spend[:])
	view := ReduceScalar(hash)
	return hex.EncodeToString(view[:]), nil
}

// DerivePubKey derives the public key (spend or view, the operation is
// identical) corresponding to privHex by Ed25519 base-point scalar
// multiplication: pub = priv * B, compressed to 32 bytes. privHex is
// reduced mod the group order on load, the same as ReduceScalar, so any
// 32-byte value is accepted rather than only already-canonical scalars.
func DerivePubKey(privHex string) (string, error) {
	priv, err := decodeHex32(privHex, "private key")
	if err != nil {
		return "", err
	}

	reduced := ReduceScalar(priv)
	s, serr := new(edwards25519.Scalar).SetCanonicalBytes(reduced[:])
	if serr != nil {
		// ReduceScalar's output is always < L, so SetCanonicalBytes never
		// rejects it; this is unreachable.
		panic("keys: SetCanonicalBytes rejected a ReduceScalar output: " + serr.Error())
	}

	pub := new(edwards25519.Point).ScalarBaseMult(s)
	return hex.EncodeToString(pub.Bytes()), nil
}
