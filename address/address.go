// Package address builds and decodes standard Monero addresses: a network
// byte, a public spend key and a public view key, Keccak-256 checksummed
// and encoded with Monero's 8-byte-block Base58 variant.
package address

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"go.monume.dev/libmonero/internal/errs"
)

// Network selects which network byte DeriveAddress tags an address with.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

func networkByte(network Network) (byte, error) {
	switch network {
	case Mainnet:
		return 0x12, nil
	case Testnet:
		return 0x35, nil
	default:
		return 0, errs.New(errs.InvalidArgument, "address: unknown network", nil)
	}
}

func networkFromByte(b byte) (Network, error) {
	switch b {
	case 0x12:
		return Mainnet, nil
	case 0x35:
		return Testnet, nil
	default:
		return 0, errs.New(errs.InvalidArgument, "address: unrecognized network byte", nil)
	}
}

func keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

func decodeHex32(s, field string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, errs.New(errs.InvalidArgument, "address: "+field, err)
	}
	if len(b) != 32 {
		return out, errs.New(errs.InvalidArgument, "address: "+field+" must be 32 bytes", nil)
	}
	copy(out[:], b)
	return out, nil
}

// DeriveAddress builds a standard Monero address from a 32-byte public
// spend key and a 32-byte public view key (each given as 64 hex
// characters), tagged with network, as:
//
//	base58(network_byte || spend_key || view_key || keccak256(...)[:4])
func DeriveAddress(publicSpendKeyHex, publicViewKeyHex string, network Network) (string, error) {
	netByte, err := networkByte(network)
	if err != nil {
		return "", err
	}
	spend, err := decodeHex32(publicSpendKeyHex, "public spend key")
	if err != nil {
		return "", err
	}
	view, err := decodeHex32(publicViewKeyHex, "public view key")
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, 1+32+32+4)
	payload = append(payload, netByte)
	payload = append(payload, spend[:]...)
	payload = append(payload, view[:]...)
	checksum := keccak256(payload)[:4]
	payload = append(payload, checksum...)

	return base58Encode(payload), nil
}

// Decoded is the result of reversing DeriveAddress.
type Decoded struct {
	Network        Network
	PublicSpendKey string
	PublicViewKey  string
}

// Decode reverses DeriveAddress: it Base58-decodes addr, verifies its
// length and Keccak-256 checksum, and returns the network and embedded
// keys. It returns a CryptoInvariant error on checksum mismatch, since a
// well-formed address that fails its own checksum indicates tampering or
// corruption rather than a simple malformed argument.
func Decode(addr string) (*Decoded, error) {
	raw, err := base58Decode(addr)
	if err != nil {
		return nil, err
	}
	if len(raw) != 1+32+32+4 {
		return nil, errs.New(errs.InvalidArgument, "address: decoded length is not 69 bytes", nil)
	}

	payload, checksum := raw[:65], raw[65:]
	want := keccak256(payload)[:4]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, errs.New(errs.CryptoInvariant, "address: checksum mismatch", nil)
		}
	}

	network, err := networkFromByte(raw[0])
	if err != nil {
		return nil, err
	}

	return &Decoded{
		Network:        network,
		PublicSpendKey: hex.EncodeToString(raw[1:33]),
		PublicViewKey:  hex.EncodeToString(raw[33:65]),
	}, nil
}
