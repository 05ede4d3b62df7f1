package network

// Tier classifies a carrier's service level.
type Tier string

const (
	TierPremium  Tier = "premium"
	TierStandard Tier = "standard"
	TierEconomy  Tier = "economy"
	TierRegional Tier = "regional"
)

// Carrier is a bus operator: the city pairs it serves, its price position
// relative to market average, and the transfer hubs it favors.
type Carrier struct {
	Name       string
	Tier       Tier
	Multiplier float64
	Lines      [][2]string
	Hubs       []string
}

var carriers = []Carrier{
	{
		Name:       "Metro Turizm",
		Tier:       TierPremium,
		Multiplier: 1.15,
		Lines: [][2]string{
			{"İstanbul", "Ankara"}, {"İstanbul", "İzmir"}, {"İstanbul", "Antalya"},
			{"İstanbul", "Bursa"}, {"İstanbul", "Trabzon"}, {"İstanbul", "Diyarbakır"},
			{"İstanbul", "Adana"},
			{"Ankara", "İzmir"}, {"Ankara", "Antalya"}, {"Ankara", "Adana"},
			{"Ankara", "Trabzon"}, {"Ankara", "Diyarbakır"}, {"Ankara", "Konya"},
			{"Ankara", "Samsun"},
			{"İzmir", "Antalya"}, {"İzmir", "Ankara"},
			{"Adana", "Gaziantep"}, {"Adana", "Diyarbakır"},
		},
		Hubs: []string{"İstanbul", "Ankara", "İzmir", "Adana"},
	},
	{
		Name:       "Kamil Koç",
		Tier:       TierPremium,
		Multiplier: 1.10,
		Lines: [][2]string{
			{"İstanbul", "Ankara"}, {"İstanbul", "İzmir"}, {"İstanbul", "Bursa"},
			{"İstanbul", "Antalya"}, {"İstanbul", "Konya"},
			{"Ankara", "İstanbul"}, {"Ankara", "İzmir"}, {"Ankara", "Konya"},
			{"Ankara", "Eskişehir"}, {"Ankara", "Samsun"}, {"Ankara", "Kayseri"},
			{"İzmir", "Denizli"}, {"İzmir", "Manisa"}, {"İzmir", "Aydın"}, {"İzmir", "Muğla"},
			{"Bursa", "Eskişehir"}, {"Bursa", "Balıkesir"},
		},
		Hubs: []string{"İstanbul", "Ankara", "İzmir", "Bursa"},
	},
	{
		Name:       "Pamukkale Turizm",
		Tier:       TierPremium,
		Multiplier: 1.08,
		Lines: [][2]string{
			{"İstanbul", "Denizli"}, {"İstanbul", "Muğla"}, {"İstanbul", "Aydın"},
			{"İstanbul", "İzmir"},
			{"Ankara", "Denizli"}, {"Ankara", "Muğla"}, {"Ankara", "İzmir"},
			{"İzmir", "Denizli"}, {"İzmir", "Muğla"}, {"İzmir", "Aydın"},
			{"Denizli", "Antalya"}, {"Denizli", "Muğla"}, {"Denizli", "Afyonkarahisar"},
		},
		Hubs: []string{"İstanbul", "Ankara", "İzmir", "Denizli"},
	},
	{
		Name:       "Ulusoy",
		Tier:       TierStandard,
		Multiplier: 1.0,
		Lines: [][2]string{
			{"İstanbul", "Ankara"}, {"İstanbul", "Trabzon"}, {"İstanbul", "Samsun"},
			{"İstanbul", "Rize"},
			{"Ankara", "Trabzon"}, {"Ankara", "Samsun"}, {"Ankara", "Erzurum"},
			{"Trabzon", "Rize"}, {"Trabzon", "Erzurum"},
			{"Samsun", "Ordu"}, {"Samsun", "Giresun"},
		},
		Hubs: []string{"İstanbul", "Ankara", "Trabzon", "Samsun"},
	},
	{
		Name:       "Süha Turizm",
		Tier:       TierStandard,
		Multiplier: 0.95,
		Lines: [][2]string{
			{"İstanbul", "Diyarbakır"}, {"İstanbul", "Van"}, {"İstanbul", "Erzurum"},
			{"İstanbul", "Malatya"},
			{"Ankara", "Diyarbakır"}, {"Ankara", "Van"}, {"Ankara", "Malatya"},
			{"Ankara", "Elazığ"},
			{"Diyarbakır", "Van"}, {"Diyarbakır", "Mardin"}, {"Diyarbakır", "Batman"},
			{"Malatya", "Elazığ"},
		},
		Hubs: []string{"İstanbul", "Ankara", "Diyarbakır", "Malatya"},
	},
	{
		Name:       "Özkaymak",
		Tier:       TierStandard,
		Multiplier: 0.92,
		Lines: [][2]string{
			{"İstanbul", "Adana"}, {"İstanbul", "Mersin"}, {"İstanbul", "Gaziantep"},
			{"İstanbul", "Şanlıurfa"},
			{"Ankara", "Adana"}, {"Ankara", "Gaziantep"}, {"Ankara", "Şanlıurfa"},
			{"Adana", "Gaziantep"}, {"Adana", "Mersin"}, {"Adana", "Şanlıurfa"},
			{"Gaziantep", "Şanlıurfa"}, {"Gaziantep", "Diyarbakır"},
		},
		Hubs: []string{"İstanbul", "Ankara", "Adana", "Gaziantep"},
	},
	{
		Name:       "Niğde Turizm",
		Tier:       TierEconomy,
		Multiplier: 0.85,
		Lines: [][2]string{
			{"İstanbul", "Niğde"}, {"İstanbul", "Nevşehir"}, {"İstanbul", "Kayseri"},
			{"İstanbul", "Aksaray"},
			{"Ankara", "Niğde"}, {"Ankara", "Nevşehir"}, {"Ankara", "Aksaray"},
			{"Niğde", "Adana"}, {"Niğde", "Mersin"},
			{"Kayseri", "Niğde"}, {"Kayseri", "Adana"}, {"Nevşehir", "Kayseri"},
		},
		Hubs: []string{"Ankara", "Kayseri", "Niğde", "Adana"},
	},
	{
		Name:       "Nilüfer Turizm",
		Tier:       TierStandard,
		Multiplier: 0.90,
		Lines: [][2]string{
			{"İstanbul", "Bursa"}, {"İstanbul", "Balıkesir"}, {"İstanbul", "Çanakkale"},
			{"Bursa", "İzmir"}, {"Bursa", "Balıkesir"}, {"Bursa", "Çanakkale"},
			{"Bursa", "Eskişehir"},
			{"Balıkesir", "İzmir"}, {"Balıkesir", "Çanakkale"},
		},
		Hubs: []string{"İstanbul", "Bursa", "Balıkesir"},
	},
	{
		Name:       "Lüks Artvin",
		Tier:       TierRegional,
		Multiplier: 0.88,
		Lines: [][2]string{
			{"İstanbul", "Artvin"}, {"İstanbul", "Rize"}, {"İstanbul", "Trabzon"},
			{"İstanbul", "Hopa"},
			{"Ankara", "Artvin"},
			{"Trabzon", "Artvin"}, {"Trabzon", "Rize"}, {"Rize", "Artvin"},
		},
		Hubs: []string{"İstanbul", "Trabzon"},
	},
	{
		Name:       "As Turizm",
		Tier:       TierRegional,
		Multiplier: 0.82,
		Lines: [][2]string{
			{"İstanbul", "Trabzon"}, {"İstanbul", "Giresun"}, {"İstanbul", "Ordu"},
			{"Ankara", "Trabzon"}, {"Ankara", "Samsun"},
			{"Samsun", "Trabzon"}, {"Samsun", "Ordu"},
		},
		Hubs: []string{"İstanbul", "Samsun", "Trabzon"},
	},
	{
		Name:       "Diyarbakır Seyahat",
		Tier:       TierRegional,
		Multiplier: 0.78,
		Lines: [][2]string{
			{"İstanbul", "Diyarbakır"}, {"Ankara", "Diyarbakır"},
			{"Diyarbakır", "Batman"}, {"Diyarbakır", "Mardin"}, {"Diyarbakır", "Şanlıurfa"},
			{"Diyarbakır", "Siirt"}, {"Diyarbakır", "Van"}, {"Diyarbakır", "Bingöl"},
			{"Diyarbakır", "Elazığ"},
			{"Gaziantep", "Diyarbakır"}, {"Adana", "Diyarbakır"},
		},
		Hubs: []string{"Diyarbakır", "Gaziantep"},
	},
	{
		Name:       "Mardin Seyahat",
		Tier:       TierRegional,
		Multiplier: 0.75,
		Lines: [][2]string{
			{"İstanbul", "Mardin"}, {"Ankara", "Mardin"},
			{"Diyarbakır", "Mardin"}, {"Mardin", "Şırnak"}, {"Mardin", "Batman"},
			{"Gaziantep", "Mardin"},
		},
		Hubs: []string{"Diyarbakır", "Mardin"},
	},
	{
		Name:       "Van Seyahat",
		Tier:       TierRegional,
		Multiplier: 0.80,
		Lines: [][2]string{
			{"İstanbul", "Van"}, {"Ankara", "Van"},
			{"Van", "Diyarbakır"}, {"Van", "Erzurum"}, {"Van", "Bitlis"},
			{"Van", "Muş"}, {"Van", "Hakkâri"},
		},
		Hubs: []string{"Van", "Diyarbakır", "Erzurum"},
	},
}

// Carriers returns the full registry.
func Carriers() []Carrier {
	return carriers
}

// CarriersServing returns every carrier with a registered line between the
// two cities, in either direction.
func CarriersServing(a, b string) []Carrier {
	var out []Carrier
	for _, c := range carriers {
		for _, line := range c.Lines {
			if (line[0] == a && line[1] == b) || (line[0] == b && line[1] == a) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// CheapestMultiplier returns the lowest price multiplier among the given
// carriers, or 1.0 when the slice is empty.
func CheapestMultiplier(cs []Carrier) float64 {
	if len(cs) == 0 {
		return 1.0
	}
	min := cs[0].Multiplier
	for _, c := range cs[1:] {
		if c.Multiplier < min {
			min = c.Multiplier
		}
	}
	return min
}
