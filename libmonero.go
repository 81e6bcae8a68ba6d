package libmonero

import (
	"go.monume.dev/libmonero/address"
	"go.monume.dev/libmonero/cryptonight"
	"go.monume.dev/libmonero/keys"
	"go.monume.dev/libmonero/mnemonics"
)

// Network selects which Monero network an address is tagged for.
type Network = address.Network

const (
	Mainnet = address.Mainnet
	Testnet = address.Testnet
)

// CnSlowHash computes the CryptoNight digest of data and returns it as a
// lowercase hex string.
func CnSlowHash(data []byte) string {
	return cryptonight.CnSlowHash(data)
}

// GenerateSeed produces a fresh mnemonic seed phrase for the given
// language ("en", "eo", "fr", "it", "ja", "jbo", "pt", "ru") and seed type
// ("original" for 24+1 words, "mymonero" for 12+1 words).
func GenerateSeed(language, seedType string) ([]string, error) {
	return mnemonics.GenerateSeed(language, seedType)
}

// DeriveHexSeedFromMnemonic decodes a mnemonic seed phrase into its
// underlying hex-encoded byte seed.
func DeriveHexSeedFromMnemonic(seed []string) (string, error) {
	return mnemonics.DeriveHexSeed(seed)
}

// DerivePrivKeys derives a hex-encoded private spend key and private view
// key from a hex seed. A 64-character seed is treated as an "original"
// (25-word) seed; a 32-character seed is treated as a "mymonero" (13-word)
// seed.
func DerivePrivKeys(hexSeed string) (privSpend, privView string, err error) {
	return keys.DerivePrivKeys(hexSeed)
}

// DerivePrivViewFromSpend derives the private view key that pairs with a
// given private spend key.
func DerivePrivViewFromSpend(privSpendHex string) (string, error) {
	return keys.DerivePrivViewFromSpend(privSpendHex)
}

// DerivePubKey derives the public key (spend or view) paired with a
// private key.
func DerivePubKey(privHex string) (string, error) {
	return keys.DerivePubKey(privHex)
}

// DeriveAddress builds a standard Monero address from a public spend key
// and a public view key, tagged for network.
func DeriveAddress(publicSpendKeyHex, publicViewKeyHex string, network Network) (string, error) {
	return address.DeriveAddress(publicSpendKeyHex, publicViewKeyHex, network)
}

// DecodeAddress reverses DeriveAddress, returning the network and the
// embedded public keys.
func DecodeAddress(addr string) (*address.Decoded, error) {
	return address.Decode(addr)
}
