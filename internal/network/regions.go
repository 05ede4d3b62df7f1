package network

// Region membership used to suggest a plausible operator for city pairs no
// registered carrier covers.
var (
	eastAnatolia = []string{"Erzurum", "Erzincan", "Kars", "Ağrı", "Iğdır", "Ardahan", "Van", "Muş", "Bitlis", "Bingöl", "Tunceli", "Elazığ", "Malatya"}
	southeast    = []string{"Diyarbakır", "Batman", "Siirt", "Şırnak", "Mardin", "Şanlıurfa", "Gaziantep", "Adıyaman", "Kilis", "Hakkâri"}
	blackSea     = []string{"Trabzon", "Rize", "Artvin", "Giresun", "Ordu", "Samsun", "Gümüşhane", "Bayburt", "Amasya", "Tokat", "Sinop", "Çorum"}
	central      = []string{"Ankara", "Konya", "Kayseri", "Sivas", "Yozgat", "Kırıkkale", "Kırşehir", "Nevşehir", "Aksaray", "Niğde", "Karaman", "Eskişehir"}

	easternBlackSea = []string{"Trabzon", "Rize", "Artvin", "Gümüşhane", "Bayburt"}
)

func anyIn(cities []string, region []string) bool {
	for _, c := range cities {
		for _, r := range region {
			if c == r {
				return true
			}
		}
	}
	return false
}

// RegionalFallbackCarrier suggests the dominant regional operator for a
// pair outside every registered line, with the multiplier it would price
// at. Defaults to the biggest national operator slightly under its usual
// positioning.
func RegionalFallbackCarrier(a, b string) (string, float64) {
	pair := []string{a, b}

	if anyIn(pair, southeast) {
		return "Diyarbakır Seyahat", 0.78
	}
	if anyIn(pair, eastAnatolia) {
		if a == "Malatya" || b == "Malatya" {
			return "Malatya Medine", 0.80
		}
		return "Doğu Turizm", 0.82
	}
	if anyIn(pair, blackSea) {
		if anyIn(pair, easternBlackSea) {
			return "Lüks Artvin", 0.88
		}
		return "As Turizm", 0.82
	}
	if anyIn(pair, central) {
		return "Özkaymak", 0.85
	}
	return "Metro Turizm", 0.95
}
