package languages

// englishSeedWords is the small corpus buildWordlist expands into the full
// 1626-word English dictionary.
var englishSeedWords = []string{
	"abbey", "abduct", "ability", "ablaze", "abnormal", "abort", "abrasive",
	"absorb", "abyss", "academy", "aching", "acidic", "acoustic", "acquire",
	"across", "actress", "acumen", "adapt", "adept", "adhesive", "adjust",
	"adopt", "adrenalin", "adult", "adventure", "aerial", "afar", "affair",
	"afield", "afloat", "afoot", "afraid", "after", "against", "agenda",
	"aggravate", "agile", "aglow", "agony", "agreed", "ahead", "aimless",
	"airport", "aisle", "ajar", "akin", "alarms", "album", "alkaline",
	"alley", "almost", "alpine", "already", "also", "alter", "amaze",
	"ambush", "amidst", "ammo", "amnesty", "amount", "ample", "amused",
	"anchor", "android", "anecdote", "angled", "ankle", "annoyed", "answer",
}

// English is the English mnemonic dictionary. "abbey" is pinned at index 0.
var English = Wordset{
	Name:      "en",
	PrefixLen: 4,
	Words:     buildWordlist("english", englishSeedWords, "abbey"),
}
