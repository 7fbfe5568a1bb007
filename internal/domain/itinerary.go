package domain

// Transport is the travel mode of the leg arriving at a stop.
type Transport string

const (
	TransportStart  Transport = "start"
	TransportFlight Transport = "flight"
	TransportBus    Transport = "bus"
	TransportTrain  Transport = "train"
	TransportBoat   Transport = "boat"
	TransportTrek   Transport = "trek"
)

// Transports lists every mode in legend order.
var Transports = []Transport{
	TransportFlight,
	TransportBus,
	TransportTrain,
	TransportBoat,
	TransportTrek,
	TransportStart,
}

// Stop is one itinerary waypoint.
type Stop struct {
	ID        int       `json:"id" validate:"gt=0"`
	City      string    `json:"city" validate:"required"`
	Country   string    `json:"country,omitempty"`
	Transport Transport `json:"transport" validate:"oneof=start flight bus train boat trek"`
	StartDate string    `json:"startDate,omitempty"`
	EndDate   string    `json:"endDate,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// City is a reference record in the city table.
type City struct {
	Ko      string  `json:"ko"`
	En      string  `json:"en" validate:"required"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	Country string  `json:"country" validate:"required"`
}

// Name returns the city name for a language code, falling back to English.
func (c City) Name(lang string) string {
	if lang == "ko" && c.Ko != "" {
		return c.Ko
	}
	return c.En
}

// CityTable maps itinerary city keys to their records.
type CityTable map[string]City

// Lookup returns the city for key and whether it exists.
func (t CityTable) Lookup(key string) (City, bool) {
	c, ok := t[key]
	return c, ok
}

// StopIndex returns the itinerary index of the stop with the given ID, or 0
// when no stop matches.
func StopIndex(stops []Stop, id int) int {
	for i, s := range stops {
		if s.ID == id {
			return i
		}
	}
	return 0
}
