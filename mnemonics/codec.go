package mnemonics

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"go.monume.dev/libmonero/internal/errs"
)

// GenerateSeed generates a fresh mnemonic seed for the given language and
// seed type ("original" for 24+1 words, "mymonero" for 12+1 words), sampled
// from a cryptographically secure source, with a checksum word appended.
func GenerateSeed(language, seedType string) ([]string, error) {
	ws, ok := FindByName(language)
	if !ok {
		return nil, errs.New(errs.InvalidArgument, "mnemonics: unknown language "+language, nil)
	}

	var n int
	switch seedType {
	case "original":
		n = 24
	case "mymonero":
		n = 12
	case "polyseed":
		return nil, errs.New(errs.InvalidArgument, "mnemonics: polyseed seeds are not implemented", nil)
	default:
		return nil, errs.New(errs.InvalidArgument, "mnemonics: unknown seed type "+seedType, nil)
	}

	seed := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		w, err := randomWord(ws)
		if err != nil {
			return nil, err
		}
		seed = append(seed, w)
	}

	idx := checksumIndex(seed, ws.PrefixLen)
	seed = append(seed, seed[idx])
	return seed, nil
}

func randomWord(ws Wordset) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(ws.Words))))
	if err != nil {
		return "", errs.New(errs.EntropyUnavailable, "mnemonics: reading random seed word", err)
	}
	return ws.Words[n.Int64()], nil
}

// DeriveHexSeed decodes a mnemonic seed phrase back into its hex-encoded
// byte seed. The wordset is identified by finding the one dictionary that
// contains every word in the phrase, so every word must be a complete
// dictionary entry. The trailing checksum word is verified against
// checksumIndex (comparing first PrefixLen runes, or whole words for
// PrefixLen 0) and dropped before decoding.
func DeriveHexSeed(seed []string) (string, error) {
	ws, ok := findByWords(seed)
	if !ok {
		return "", errs.New(errs.MnemonicIntegrity, "mnemonics: no wordset matches every word in the seed", nil)
	}

	words := seed[:len(seed)-1]
	if len(words)%3 != 0 {
		return "", errs.New(errs.MnemonicIntegrity, "mnemonics: seed word count is not a multiple of 3 after dropping the checksum word", nil)
	}
	if len(words) > 0 {
		want := words[checksumIndex(words, ws.PrefixLen)]
		if truncate(seed[len(seed)-1], ws.PrefixLen) != truncate(want, ws.PrefixLen) {
			return "", errs.New(errs.MnemonicIntegrity, "mnemonics: checksum word does not match the seed", nil)
		}
	}

	n := len(ws.Words)
	hexSeed := make([]byte, 0, len(words)/3*8)

	for i := 0; i < len(words); i += 3 {
		w1, err := wordIndex(ws, words[i])
		if err != nil {
			return "", err
		}
		w2, err := wordIndex(ws, words[i+1])
		if err != nil {
			return "", err
		}
		w3, err := wordIndex(ws, words[i+2])
		if err != nil {
			return "", err
		}

		x := w1 + n*((n-w1+w2)%n) + n*n*((n-w2+w3)%n)
		hexSeed = append(hexSeed, swapEndian4Byte(fmt.Sprintf("%08x", x))...)
	}

	return string(hexSeed), nil
}

// wordIndex locates word in ws.Words. It always tries an exact full-word
// match first: generated seeds are always made of complete dictionary
// entries, and this dictionary's entries are not guaranteed to have unique
// PrefixLen-rune prefixes (unlike the real Monero wordlists, which are
// curated so that every entry's prefix is unique), so a prefix-only lookup
// can silently resolve to the wrong index. The prefix-based fallback is
// only meaningful for PrefixLen>0, to accept a caller-abbreviated word that
// doesn't appear in full.
func wordIndex(ws Wordset, word string) (int, error) {
	for i, w := range ws.Words {
		if w == word {
			return i, nil
		}
	}
	if ws.PrefixLen > 0 {
		prefix := truncate(word, ws.PrefixLen)
		for i, w := range ws.Words {
			if truncate(w, ws.PrefixLen) == prefix {
				return i, nil
			}
		}
	}
	return 0, errs.New(errs.MnemonicIntegrity, "mnemonics: word "+word+" not found in wordset "+ws.Name, nil)
}

// swapEndian4Byte swaps the byte order of an 8-character hex string
// representing a 4-byte little-endian value, matching the reference
// decoder's swap_endian_4_byte.
func swapEndian4Byte(s string) []byte {
	return []byte(s[6:8] + s[4:6] + s[2:4] + s[0:2])
}
