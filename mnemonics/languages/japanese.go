package languages

// japaneseSeedWords uses whole kana syllables rather than a prefix-matched
// Latin transliteration: Japanese's script is why PrefixLen is 0 below, a
// leading-substring match doesn't give a useful unique-identification rule
// the way it does for Latin-script dictionaries.
var japaneseSeedWords = []string{
	"あいこ", "あおぞら", "あかり", "あさひ", "あした", "あひる", "いえ",
	"いかり", "いきもの", "いただき", "いちば", "いのち", "うえき", "うた",
	"うちゅう", "うみべ", "えいが", "えんぴつ", "おおきい", "おかし",
	"おくじょう", "おちゃ", "かいだん", "かがみ", "かぞく", "かみなり",
	"きおく", "きつね", "きもち", "きんいろ", "くじら", "くも", "けしき",
	"けむり", "こおり", "ことば", "さくら", "さんぽ", "しあわせ", "しずく",
	"しぜん", "すいか", "すずめ", "せかい", "そら", "たいよう", "つき",
	"てがみ", "とけい", "なみだ", "にじ", "ねこ", "のはら", "はな",
	"ひかり", "ふゆ", "ほし", "まち", "みずうみ", "むし", "やま", "ゆき",
	"よる", "わかば",
}

var Japanese = Wordset{
	Name:      "ja",
	PrefixLen: 0,
	Words:     buildWordlist("japanese", japaneseSeedWords),
}
