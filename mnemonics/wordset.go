// Package mnemonics implements the CRC32-checksummed 25-word ("original")
// and 13-word ("mymonero") Monero seed phrase encoding: generating a fresh
// seed from a language dictionary, and decoding a seed phrase back into its
// underlying hex bytes.
package mnemonics

import (
	"hash/crc32"
	"strings"

	"go.monume.dev/libmonero/mnemonics/languages"
)

// Wordset is a language-tagged, prefix-matched mnemonic dictionary.
type Wordset = languages.Wordset

// Registry lists every supported wordset: English, Esperanto, French,
// Italian, Japanese, Lojban, Portuguese, Russian. Chinese-Simplified,
// Dutch, German and Spanish are not present — original_source flags their
// dictionaries as broken and never constructs them either.
var Registry = languages.Registry

// FindByName returns the wordset with the given name (its ISO 639 tag), or
// false if none matches.
func FindByName(name string) (Wordset, bool) {
	for _, ws := range Registry {
		if ws.Name == name {
			return ws, true
		}
	}
	return Wordset{}, false
}

// findByWords returns the wordset that contains every one of words, or
// false if no registered wordset matches all of them. This is how a
// mnemonic seed is identified when its language isn't given explicitly.
func findByWords(words []string) (Wordset, bool) {
	for _, ws := range Registry {
		if containsAll(ws, words) {
			return ws, true
		}
	}
	return Wordset{}, false
}

func containsAll(ws Wordset, words []string) bool {
	for _, w := range words {
		if !contains(ws.Words[:], w) {
			return false
		}
	}
	return true
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

// truncate returns the first prefixLen runes of w, or w itself if prefixLen
// is 0 or w has fewer runes than that. Truncating by rune rather than by
// byte keeps this safe for non-ASCII dictionaries.
func truncate(w string, prefixLen int) string {
	if prefixLen <= 0 {
		return w
	}
	r := []rune(w)
	if prefixLen >= len(r) {
		return w
	}
	return string(r[:prefixLen])
}

// checksumIndex computes the CRC32 checksum index used to pick the
// checksum word of a seed: CRC32 of the concatenation of each word's
// (possibly truncated) prefix, modulo the number of words.
func checksumIndex(words []string, prefixLen int) int {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(truncate(w, prefixLen))
	}
	sum := crc32.ChecksumIEEE([]byte(sb.String()))
	return int(sum) % len(words)
}
