package languages

var frenchSeedWords = []string{
	"abaisser", "abandon", "abdomen", "abeille", "abolir", "abord", "abri",
	"absence", "absolu", "absurde", "abuser", "abyssal", "académie",
	"acajou", "acerbe", "acheter", "acier", "acompte", "acquis", "acronyme",
	"acteur", "actif", "actuel", "adepte", "adorer", "adresse", "adulte",
	"aération", "affaire", "affiche", "affreux", "agacer", "agile",
	"agiter", "agrafe", "agrume", "aider", "aigle", "aigu", "aimable",
	"ajouter", "alarme", "alerte", "algue", "aliment", "alliage", "allouer",
	"allumer", "alourdir", "alpaga", "altesse", "alvéole", "amande",
	"amateur", "ambre", "amertume", "amidon", "amiral", "amorcer", "amour",
	"amusant", "analyse", "anaphore", "ancien", "anguleux", "animal",
	"annonce", "annuel", "anodin",
}

var French = Wordset{
	Name:      "fr",
	PrefixLen: 4,
	Words:     buildWordlist("french", frenchSeedWords),
}
