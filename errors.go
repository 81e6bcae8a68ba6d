// Package libmonero is a batteries-included Monero cryptographic core:
// CryptoNight hashing, mnemonic seed generation and decoding, and key and
// address derivation. It has no network I/O and no persistent state — every
// function here except GenerateSeed, which reads the system CSPRNG, is a
// pure transform over the bytes and strings you give it.
package libmonero

import "go.monume.dev/libmonero/internal/errs"

// Kind classifies why an operation failed, so callers can branch on the
// category with errors.Is instead of string-matching messages.
type Kind = errs.Kind

// Error is the error type every exported function in this module returns.
type Error = errs.Error

const (
	InvalidArgument    = errs.InvalidArgument
	MnemonicIntegrity  = errs.MnemonicIntegrity
	CryptoInvariant    = errs.CryptoInvariant
	EntropyUnavailable = errs.EntropyUnavailable
)

// Sentinel errors for errors.Is comparisons; only Kind is compared.
var (
	ErrInvalidArgument    = errs.ErrInvalidArgument
	ErrMnemonicIntegrity  = errs.ErrMnemonicIntegrity
	ErrCryptoInvariant    = errs.ErrCryptoInvariant
	ErrEntropyUnavailable = errs.ErrEntropyUnavailable
)
