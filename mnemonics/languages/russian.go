package languages

var russianSeedWords = []string{
	"абажур", "абрикос", "аванс", "авария", "август", "автор", "агроном",
	"адрес", "азарт", "айсберг", "академия", "акварель", "аккорд",
	"акробат", "актёр", "алмаз", "алфавит", "альбом", "амбар", "ангар",
	"ангел", "анекдот", "антенна", "аппарат", "апрель", "аптека",
	"аромат", "архив", "атлас", "афиша", "баланс", "балкон", "банкир",
	"барабан", "барьер", "баскетбол", "батарея", "башня", "бегство",
	"беседа", "библиотека", "бизнес", "билет", "биография", "благо",
	"блокнот", "богатство", "бокал", "больница", "борода", "ботинок",
	"браслет", "брат", "бригада", "бумага", "буря", "бутылка", "вагон",
	"ваза", "валюта", "ванна", "варенье", "ведро", "великан", "вершина",
	"весна",
}

var Russian = Wordset{
	Name:      "ru",
	PrefixLen: 4,
	Words:     buildWordlist("russian", russianSeedWords),
}
