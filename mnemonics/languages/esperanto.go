package languages

var esperantoSeedWords = []string{
	"abio", "abismo", "abomeno", "acida", "adiaŭ", "adreso", "aero", "afero",
	"agado", "agrabla", "akvo", "alia", "almenaŭ", "alta", "ambaŭ", "amiko",
	"amo", "angulo", "anim", "antaŭ", "aparta", "apenaŭ", "aperi", "apud",
	"arbo", "argumento", "armilo", "artikolo", "aspekti", "atendi", "atento",
	"aŭto", "aventuro", "averti", "avo", "azeno", "bano", "baldaŭ", "balo",
	"bela", "besto", "bezoni", "biero", "birdo", "blanka", "blua", "boato",
	"bona", "books", "brako", "brila", "bruna", "ĉambro", "ĉapelo", "ĉefa",
	"ĉemizo", "ĉevalo", "ĉiam", "ĉielo", "ĉirkaŭ", "ĉiu", "danci", "decido",
	"demandi", "deziri", "doloro", "domo", "donaci",
}

var Esperanto = Wordset{
	Name:      "eo",
	PrefixLen: 4,
	Words:     buildWordlist("esperanto", esperantoSeedWords),
}
