package languages

var italianSeedWords = []string{
	"abbaglio", "abbinato", "abete", "abisso", "abolire", "abrasivo",
	"abrogato", "accadere", "accenno", "accusato", "acido", "acquisito",
	"acronimo", "acuto", "adagio", "addebito", "addome", "adeguato",
	"aderire", "adipe", "adottare", "adulare", "affabile", "affetto",
	"affisso", "affranto", "aforisma", "afoso", "africano", "agave",
	"agente", "agevole", "aggancio", "agire", "agitare", "agonismo",
	"agricolo", "agrumeto", "aiutare", "alabarda", "alato", "albero",
	"alcol", "alettone", "alfa", "algebra", "alibi", "alimento", "allagato",
	"allegro", "allievo", "allodola", "allusivo", "almeno", "alogeno",
	"alpaca", "alpestre", "altalena", "alterno", "alticcio", "altrove",
	"alunno", "alveolo", "alzare", "amalgama", "amanita", "amarena",
}

var Italian = Wordset{
	Name:      "it",
	PrefixLen: 4,
	Words:     buildWordlist("italian", italianSeedWords),
}
