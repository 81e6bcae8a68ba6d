package languages

var lojbanSeedWords = []string{
	"abu", "acre", "adasa", "afta", "agri", "ailu", "akti", "alji", "alta",
	"bacru", "badna", "badri", "bajra", "bakfu", "bakni", "bancu", "bangu",
	"banli", "banro", "banxa", "banzu", "bargu", "barja", "basna", "basti",
	"batci", "batke", "bavmi", "baxso", "bebna", "bende", "bengo", "benji",
	"bersa", "besna", "bevri", "bidju", "bifce", "bikla", "bilga", "bilma",
	"bilni", "bindo", "binra", "bisli", "bitmu", "blabi", "bliku", "bloti",
	"bolci", "bongu", "botpi", "boxfo", "boxna", "bramau", "bredi", "bridi",
	"brife", "briju", "brito", "broda", "bruna", "budjo", "bukpu", "bumru",
	"bunda",
}

var Lojban = Wordset{
	Name:      "jbo",
	PrefixLen: 4,
	Words:     buildWordlist("lojban", lojbanSeedWords),
}
