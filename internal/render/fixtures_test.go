package render

import "github.com/couchcryptid/journey-globe-service/internal/domain"

func testJourney() *domain.Journey {
	return &domain.Journey{
		Stops: []domain.Stop{
			{ID: 1, City: "Gwangju", Transport: domain.TransportStart, StartDate: "2016-09-15"},
			{ID: 2, City: "Lisbon", Transport: domain.TransportFlight, StartDate: "2016-09-20"},
			{ID: 3, City: "Bangkok", Transport: domain.TransportFlight, StartDate: "2016-10-02"},
			{ID: 4, City: "Chiang Mai", Transport: domain.TransportBus, EndDate: "2016-10-09"},
			{ID: 5, City: "Bangkok", Transport: domain.TransportBus},
			{ID: 6, City: "Vientiane", Transport: domain.TransportTrain, StartDate: "2016-10-15"},
		},
		Cities: domain.CityTable{
			"Gwangju":    {Ko: "광주", En: "Gwangju", Lat: 35.1595, Lng: 126.8526, Country: "KR"},
			"Lisbon":     {Ko: "리스본", En: "Lisbon", Lat: 38.7223, Lng: -9.1393, Country: "PT"},
			"Bangkok":    {Ko: "방콕", En: "Bangkok", Lat: 13.7563, Lng: 100.5018, Country: "TH"},
			"Chiang Mai": {Ko: "치앙마이", En: "Chiang Mai", Lat: 18.7883, Lng: 98.9853, Country: "TH"},
			"Vientiane":  {Ko: "비엔티안", En: "Vientiane", Lat: 17.9757, Lng: 102.6331, Country: "LA"},
		},
		Countries: []domain.Country{
			{Code: "KR", Name: domain.LocalizedName{Ko: "대한민국", En: "South Korea", Native: "대한민국"}, Coordinates: domain.LatLng{Lat: 36.5, Lng: 127.9}},
			{Code: "PT", Name: domain.LocalizedName{Ko: "포르투갈", En: "Portugal", Native: "Portugal"}, Coordinates: domain.LatLng{Lat: 39.4, Lng: -8.2}},
			{Code: "TH", Name: domain.LocalizedName{Ko: "태국", En: "Thailand", Native: "ประเทศไทย"}, Coordinates: domain.LatLng{Lat: 15.87, Lng: 100.99}},
			{Code: "LA", Name: domain.LocalizedName{Ko: "라오스", En: "Laos", Native: "ລາວ"}, Coordinates: domain.LatLng{Lat: 19.86, Lng: 102.5}},
		},
		CountryNames: map[string]domain.LocalizedName{
			"TH": {Ko: "태국", En: "Thailand"},
		},
		TransportLabels: map[domain.Transport]domain.LocalizedName{
			domain.TransportFlight: {Ko: "비행기", En: "Flight"},
			domain.TransportBus:    {Ko: "버스", En: "Bus"},
		},
		Photos: domain.PhotoIndex{
			"Bangkok": {CityCode: "BKK", Photos: []domain.Photo{{ID: "bkk-1", Date: "2016-10-03"}}},
		},
	}
}

func cityPoint(j *domain.Journey, key string) domain.Vec3 {
	c := j.Cities[key]
	return domain.LatLngToVector3(c.Lat, c.Lng, domain.ScenePathRadius)
}
