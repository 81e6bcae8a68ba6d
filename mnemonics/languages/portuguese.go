package languages

var portugueseSeedWords = []string{
	"abalar", "abater", "abdome", "abelha", "abismo", "abotoar", "abraço",
	"abrir", "abrupto", "absurdo", "abusar", "acabado", "acalmar", "acatar",
	"aceitar", "acenar", "acerto", "achado", "acidez", "acima", "acionar",
	"acolhe", "acordo", "acusar", "adaptar", "adega", "adentro", "adepto",
	"adereço", "adesivo", "adeus", "adiante", "adjunto", "admirar",
	"adotivo", "adquirir", "adriático", "adulto", "advogado", "aeronave",
	"afastar", "afetivo", "afinado", "afivelar", "afligir", "afluente",
	"afolgar", "afrontar", "agachado", "agasalho", "agencia", "agigantar",
	"agitado", "agora", "agradar", "agreste", "agrupar", "aguentar",
	"ajustar", "alameda", "alarme", "albergue", "alcatra", "aldeia",
	"alegria", "alentar", "alfabeto",
}

var Portuguese = Wordset{
	Name:      "pt",
	PrefixLen: 4,
	Words:     buildWordlist("portuguese", portugueseSeedWords),
}
