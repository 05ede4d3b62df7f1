package network

import "sort"

// roadNetwork lists intercity bus corridors along the main highways. Links
// are bidirectional; some appear only on one side and are mirrored by
// Neighbors.
var roadNetwork = map[string][]string{
	"İstanbul":       {"Kocaeli", "Tekirdağ", "Edirne", "Bursa", "Sakarya", "Yalova", "Balıkesir", "Çanakkale"},
	"Kocaeli":        {"İstanbul", "Sakarya", "Bursa", "Yalova", "Bilecik"},
	"Sakarya":        {"İstanbul", "Kocaeli", "Bolu", "Düzce", "Bilecik"},
	"Yalova":         {"İstanbul", "Kocaeli", "Bursa"},
	"Tekirdağ":       {"İstanbul", "Edirne", "Kırklareli", "Çanakkale"},
	"Edirne":         {"İstanbul", "Tekirdağ", "Kırklareli"},
	"Kırklareli":     {"Edirne", "Tekirdağ"},
	"Bursa":          {"İstanbul", "Kocaeli", "Yalova", "Bilecik", "Balıkesir", "Kütahya", "Eskişehir"},
	"Balıkesir":      {"İstanbul", "Bursa", "Çanakkale", "İzmir", "Manisa", "Kütahya"},
	"Çanakkale":      {"İstanbul", "Tekirdağ", "Balıkesir", "İzmir"},
	"İzmir":          {"Balıkesir", "Çanakkale", "Manisa", "Aydın", "Denizli", "Uşak", "Muğla"},
	"Manisa":         {"İzmir", "Balıkesir", "Kütahya", "Uşak", "Denizli", "Aydın"},
	"Aydın":          {"İzmir", "Manisa", "Denizli", "Muğla"},
	"Muğla":          {"İzmir", "Aydın", "Denizli", "Antalya", "Burdur"},
	"Denizli":        {"İzmir", "Manisa", "Aydın", "Muğla", "Uşak", "Afyonkarahisar", "Burdur", "Antalya"},
	"Uşak":           {"İzmir", "Manisa", "Denizli", "Afyonkarahisar", "Kütahya"},
	"Bilecik":        {"Kocaeli", "Sakarya", "Bursa", "Eskişehir", "Kütahya", "Bolu"},
	"Eskişehir":      {"Bursa", "Bilecik", "Kütahya", "Afyonkarahisar", "Ankara"},
	"Kütahya":        {"Bursa", "Balıkesir", "Bilecik", "Eskişehir", "Afyonkarahisar", "Uşak", "Manisa"},
	"Afyonkarahisar": {"Eskişehir", "Kütahya", "Uşak", "Denizli", "Burdur", "Isparta", "Konya", "Ankara"},
	"Antalya":        {"Muğla", "Denizli", "Burdur", "Isparta", "Konya", "Karaman", "Mersin"},
	"Burdur":         {"Muğla", "Denizli", "Afyonkarahisar", "Isparta", "Antalya"},
	"Isparta":        {"Burdur", "Afyonkarahisar", "Konya", "Antalya"},
	"Mersin":         {"Antalya", "Karaman", "Konya", "Adana", "Niğde"},
	"Adana":          {"Mersin", "Niğde", "Kayseri", "Kahramanmaraş", "Osmaniye", "Hatay", "Gaziantep"},
	"Hatay":          {"Adana", "Osmaniye", "Gaziantep"},
	"Osmaniye":       {"Adana", "Hatay", "Gaziantep", "Kahramanmaraş"},
	"Ankara":         {"Eskişehir", "Afyonkarahisar", "Konya", "Kırıkkale", "Çankırı", "Bolu", "Kırşehir", "Aksaray", "Yozgat"},
	"Konya":          {"Afyonkarahisar", "Isparta", "Antalya", "Karaman", "Mersin", "Niğde", "Aksaray", "Ankara", "Kayseri"},
	"Karaman":        {"Antalya", "Konya", "Mersin", "Niğde"},
	"Aksaray":        {"Ankara", "Konya", "Niğde", "Nevşehir", "Kırşehir"},
	"Niğde":          {"Mersin", "Adana", "Kayseri", "Aksaray", "Nevşehir", "Konya", "Karaman"},
	"Nevşehir":       {"Aksaray", "Niğde", "Kayseri", "Kırşehir", "Yozgat"},
	"Kırşehir":       {"Ankara", "Aksaray", "Nevşehir", "Kayseri", "Yozgat", "Kırıkkale"},
	"Kırıkkale":      {"Ankara", "Yozgat", "Kırşehir", "Çankırı"},
	"Kayseri":        {"Konya", "Niğde", "Nevşehir", "Kırşehir", "Yozgat", "Sivas", "Kahramanmaraş", "Adana", "Malatya"},
	"Yozgat":         {"Ankara", "Kırıkkale", "Kırşehir", "Nevşehir", "Kayseri", "Sivas", "Çorum", "Tokat"},
	"Bolu":           {"Sakarya", "Düzce", "Ankara", "Çankırı", "Karabük", "Bilecik"},
	"Düzce":          {"Sakarya", "Bolu", "Zonguldak"},
	"Çankırı":        {"Ankara", "Bolu", "Karabük", "Kastamonu", "Kırıkkale", "Çorum"},
	"Karabük":        {"Bolu", "Çankırı", "Kastamonu", "Bartın", "Zonguldak"},
	"Zonguldak":      {"Düzce", "Karabük", "Bartın"},
	"Bartın":         {"Zonguldak", "Karabük", "Kastamonu"},
	"Kastamonu":      {"Çankırı", "Karabük", "Bartın", "Sinop", "Çorum"},
	"Sinop":          {"Kastamonu", "Samsun", "Çorum"},
	"Samsun":         {"Sinop", "Çorum", "Amasya", "Tokat", "Ordu"},
	"Amasya":         {"Samsun", "Çorum", "Tokat", "Yozgat"},
	"Çorum":          {"Çankırı", "Kastamonu", "Sinop", "Samsun", "Amasya", "Yozgat", "Tokat"},
	"Tokat":          {"Samsun", "Amasya", "Yozgat", "Sivas", "Ordu"},
	"Ordu":           {"Samsun", "Tokat", "Sivas", "Giresun"},
	"Giresun":        {"Ordu", "Sivas", "Erzincan", "Gümüşhane", "Trabzon"},
	"Trabzon":        {"Giresun", "Gümüşhane", "Bayburt", "Rize"},
	"Rize":           {"Trabzon", "Artvin", "Erzurum"},
	"Artvin":         {"Rize", "Erzurum", "Ardahan"},
	"Gümüşhane":      {"Giresun", "Trabzon", "Bayburt", "Erzincan"},
	"Bayburt":        {"Trabzon", "Gümüşhane", "Erzincan", "Erzurum"},
	"Erzincan":       {"Giresun", "Gümüşhane", "Bayburt", "Erzurum", "Tunceli", "Sivas"},
	"Erzurum":        {"Rize", "Artvin", "Bayburt", "Erzincan", "Bingöl", "Muş", "Ağrı", "Kars"},
	"Kars":           {"Erzurum", "Ardahan", "Iğdır", "Ağrı"},
	"Ardahan":        {"Artvin", "Kars"},
	"Iğdır":          {"Kars", "Ağrı"},
	"Ağrı":           {"Erzurum", "Kars", "Iğdır", "Van", "Muş"},
	"Tunceli":        {"Erzincan", "Bingöl", "Elazığ"},
	"Bingöl":         {"Erzurum", "Tunceli", "Elazığ", "Muş", "Diyarbakır"},
	"Muş":            {"Erzurum", "Ağrı", "Bingöl", "Bitlis", "Van"},
	"Bitlis":         {"Muş", "Van", "Siirt"},
	"Van":            {"Ağrı", "Muş", "Bitlis", "Hakkâri"},
	"Hakkâri":        {"Van", "Şırnak"},
	"Malatya":        {"Kayseri", "Sivas", "Elazığ", "Adıyaman", "Kahramanmaraş"},
	"Elazığ":         {"Malatya", "Tunceli", "Bingöl", "Diyarbakır"},
	"Sivas":          {"Yozgat", "Kayseri", "Malatya", "Tokat", "Ordu", "Giresun", "Erzincan"},
	"Kahramanmaraş":  {"Adana", "Osmaniye", "Kayseri", "Malatya", "Adıyaman", "Gaziantep"},
	"Adıyaman":       {"Kahramanmaraş", "Malatya", "Diyarbakır", "Şanlıurfa", "Gaziantep"},
	"Gaziantep":      {"Adana", "Hatay", "Osmaniye", "Kahramanmaraş", "Adıyaman", "Şanlıurfa", "Kilis"},
	"Kilis":          {"Gaziantep"},
	"Şanlıurfa":      {"Gaziantep", "Adıyaman", "Diyarbakır", "Mardin"},
	"Diyarbakır":     {"Bingöl", "Elazığ", "Adıyaman", "Şanlıurfa", "Mardin", "Batman", "Siirt"},
	"Mardin":         {"Şanlıurfa", "Diyarbakır", "Batman", "Şırnak"},
	"Batman":         {"Diyarbakır", "Mardin", "Siirt", "Şırnak"},
	"Siirt":          {"Bitlis", "Diyarbakır", "Batman", "Şırnak"},
	"Şırnak":         {"Hakkâri", "Mardin", "Batman", "Siirt"},
}

// Neighbors returns every city road-adjacent to the given one, in both
// directions, sorted for deterministic iteration.
func Neighbors(city string) []string {
	set := make(map[string]struct{})
	for _, n := range roadNetwork[city] {
		set[n] = struct{}{}
	}
	for other, links := range roadNetwork {
		for _, n := range links {
			if n == city {
				set[other] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// RoadConnected reports whether a direct road-graph edge exists between the
// two cities, in either direction.
func RoadConnected(a, b string) bool {
	for _, n := range roadNetwork[a] {
		if n == b {
			return true
		}
	}
	for _, n := range roadNetwork[b] {
		if n == a {
			return true
		}
	}
	return false
}
