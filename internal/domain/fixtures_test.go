package domain

var testCities = CityTable{
	"Gwangju":    {Ko: "광주", En: "Gwangju", Lat: 35.1595, Lng: 126.8526, Country: "KR"},
	"Bangkok":    {Ko: "방콕", En: "Bangkok", Lat: 13.7563, Lng: 100.5018, Country: "TH"},
	"Chiang Mai": {Ko: "치앙마이", En: "Chiang Mai", Lat: 18.7883, Lng: 98.9853, Country: "TH"},
	"Vientiane":  {Ko: "비엔티안", En: "Vientiane", Lat: 17.9757, Lng: 102.6331, Country: "LA"},
}

// threeStops is a start, a flight leg and a bus leg: 81 + 31 samples.
func threeStops() []Stop {
	return []Stop{
		{ID: 1, City: "Gwangju", Transport: TransportStart},
		{ID: 2, City: "Bangkok", Transport: TransportFlight},
		{ID: 3, City: "Chiang Mai", Transport: TransportBus},
	}
}

// progressAt returns a progress value that lands in the middle of sample i.
func progressAt(i, n int) float64 {
	return (float64(i) + 0.5) / float64(n)
}
