package geo

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// cityCoordinates covers the 81 Turkish provinces. Loaded once, read-only
// for the process lifetime.
var cityCoordinates = map[string]Coordinate{
	"Adana":          {Lat: 37.0, Lon: 35.3213},
	"Adıyaman":       {Lat: 37.7648, Lon: 38.2786},
	"Afyonkarahisar": {Lat: 38.7507, Lon: 30.5567},
	"Ağrı":           {Lat: 39.7191, Lon: 43.0503},
	"Aksaray":        {Lat: 38.3687, Lon: 34.0370},
	"Amasya":         {Lat: 40.6499, Lon: 35.8353},
	"Ankara":         {Lat: 39.9334, Lon: 32.8597},
	"Antalya":        {Lat: 36.8969, Lon: 30.7133},
	"Ardahan":        {Lat: 41.1105, Lon: 42.7022},
	"Artvin":         {Lat: 41.1828, Lon: 41.8183},
	"Aydın":          {Lat: 37.8560, Lon: 27.8416},
	"Balıkesir":      {Lat: 39.6484, Lon: 27.8826},
	"Bartın":         {Lat: 41.6344, Lon: 32.3375},
	"Batman":         {Lat: 37.8812, Lon: 41.1351},
	"Bayburt":        {Lat: 40.2552, Lon: 40.2249},
	"Bilecik":        {Lat: 40.0567, Lon: 30.0665},
	"Bingöl":         {Lat: 38.8854, Lon: 40.4966},
	"Bitlis":         {Lat: 38.4006, Lon: 42.1095},
	"Bolu":           {Lat: 40.7392, Lon: 31.6089},
	"Burdur":         {Lat: 37.7203, Lon: 30.2903},
	"Bursa":          {Lat: 40.1828, Lon: 29.0665},
	"Çanakkale":      {Lat: 40.1553, Lon: 26.4142},
	"Çankırı":        {Lat: 40.6013, Lon: 33.6134},
	"Çorum":          {Lat: 40.5506, Lon: 34.9556},
	"Denizli":        {Lat: 37.7765, Lon: 29.0864},
	"Diyarbakır":     {Lat: 37.9144, Lon: 40.2306},
	"Düzce":          {Lat: 40.8438, Lon: 31.1565},
	"Edirne":         {Lat: 41.6818, Lon: 26.5623},
	"Elazığ":         {Lat: 38.6810, Lon: 39.2264},
	"Erzincan":       {Lat: 39.7500, Lon: 39.5000},
	"Erzurum":        {Lat: 39.9000, Lon: 41.2700},
	"Eskişehir":      {Lat: 39.7767, Lon: 30.5206},
	"Gaziantep":      {Lat: 37.0662, Lon: 37.3833},
	"Giresun":        {Lat: 40.9128, Lon: 38.3895},
	"Gümüşhane":      {Lat: 40.4386, Lon: 39.5086},
	"Hakkâri":        {Lat: 37.5833, Lon: 43.7333},
	"Hatay":          {Lat: 36.4018, Lon: 36.3498},
	"Iğdır":          {Lat: 39.9167, Lon: 44.0333},
	"Isparta":        {Lat: 37.7648, Lon: 30.5566},
	"İstanbul":       {Lat: 41.0082, Lon: 28.9784},
	"İzmir":          {Lat: 38.4237, Lon: 27.1428},
	"Kahramanmaraş":  {Lat: 37.5858, Lon: 36.9371},
	"Karabük":        {Lat: 41.2061, Lon: 32.6204},
	"Karaman":        {Lat: 37.1759, Lon: 33.2287},
	"Kars":           {Lat: 40.6167, Lon: 43.1000},
	"Kastamonu":      {Lat: 41.3887, Lon: 33.7827},
	"Kayseri":        {Lat: 38.7312, Lon: 35.4787},
	"Kilis":          {Lat: 36.7184, Lon: 37.1212},
	"Kırıkkale":      {Lat: 39.8468, Lon: 33.5153},
	"Kırklareli":     {Lat: 41.7333, Lon: 27.2167},
	"Kırşehir":       {Lat: 39.1425, Lon: 34.1709},
	"Kocaeli":        {Lat: 40.8533, Lon: 29.8815},
	"Konya":          {Lat: 37.8746, Lon: 32.4932},
	"Kütahya":        {Lat: 39.4167, Lon: 29.9833},
	"Malatya":        {Lat: 38.3552, Lon: 38.3095},
	"Manisa":         {Lat: 38.6191, Lon: 27.4289},
	"Mardin":         {Lat: 37.3212, Lon: 40.7245},
	"Mersin":         {Lat: 36.8121, Lon: 34.6415},
	"Muğla":          {Lat: 37.2153, Lon: 28.3636},
	"Muş":            {Lat: 38.9462, Lon: 41.7539},
	"Nevşehir":       {Lat: 38.6939, Lon: 34.6857},
	"Niğde":          {Lat: 37.9667, Lon: 34.6939},
	"Ordu":           {Lat: 40.9839, Lon: 37.8764},
	"Osmaniye":       {Lat: 37.0742, Lon: 36.2478},
	"Rize":           {Lat: 41.0201, Lon: 40.5234},
	"Sakarya":        {Lat: 40.6940, Lon: 30.4358},
	"Samsun":         {Lat: 41.2867, Lon: 36.3300},
	"Şanlıurfa":      {Lat: 37.1591, Lon: 38.7969},
	"Siirt":          {Lat: 37.9333, Lon: 41.9500},
	"Sinop":          {Lat: 42.0231, Lon: 35.1531},
	"Şırnak":         {Lat: 37.4187, Lon: 42.4918},
	"Sivas":          {Lat: 39.7477, Lon: 37.0179},
	"Tekirdağ":       {Lat: 40.9833, Lon: 27.5167},
	"Tokat":          {Lat: 40.3167, Lon: 36.5500},
	"Trabzon":        {Lat: 41.0015, Lon: 39.7178},
	"Tunceli":        {Lat: 39.1079, Lon: 39.5401},
	"Uşak":           {Lat: 38.6823, Lon: 29.4082},
	"Van":            {Lat: 38.4891, Lon: 43.4089},
	"Yalova":         {Lat: 40.6500, Lon: 29.2667},
	"Yozgat":         {Lat: 39.8181, Lon: 34.8147},
	"Zonguldak":      {Lat: 41.4564, Lon: 31.7987},
}

// Coordinates returns the coordinate for a city name.
func Coordinates(city string) (Coordinate, bool) {
	c, ok := cityCoordinates[city]
	return c, ok
}

// Known reports whether the city exists in the coordinate table.
func Known(city string) bool {
	_, ok := cityCoordinates[city]
	return ok
}

// Cities returns every known city name, unordered.
func Cities() []string {
	out := make([]string, 0, len(cityCoordinates))
	for name := range cityCoordinates {
		out = append(out, name)
	}
	return out
}
