package domain

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// LocalizedName holds a display name per language plus the native spelling.
type LocalizedName struct {
	Ko     string `json:"ko"`
	En     string `json:"en"`
	Native string `json:"native,omitempty"`
}

// In returns the name for lang. Korean falls back to English and vice versa.
func (n LocalizedName) In(lang string) string {
	if lang == "ko" {
		if n.Ko != "" {
			return n.Ko
		}
		return n.En
	}
	if n.En != "" {
		return n.En
	}
	return n.Ko
}

// Country is a label anchor on the globe.
type Country struct {
	Code        string        `json:"code" validate:"required"`
	Name        LocalizedName `json:"name"`
	Coordinates LatLng        `json:"coordinates"`
}

// Journey is the complete read-only input of the engine.
type Journey struct {
	Stops           []Stop
	Cities          CityTable
	Countries       []Country
	CountryNames    map[string]LocalizedName
	TransportLabels map[Transport]LocalizedName
	Photos          PhotoIndex
}

// Country returns the label anchor for code.
func (j *Journey) Country(code string) (Country, bool) {
	for _, c := range j.Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CountryOf returns the country code of the stop at itinerary index i, or ""
// when the index or its city is unknown.
func (j *Journey) CountryOf(i int) string {
	if i < 0 || i >= len(j.Stops) {
		return ""
	}
	city, ok := j.Cities.Lookup(j.Stops[i].City)
	if !ok {
		return ""
	}
	return city.Country
}

// VisitedCountries lists country codes in order of first visit.
func (j *Journey) VisitedCountries() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range j.Stops {
		city, ok := j.Cities.Lookup(s.City)
		if !ok || city.Country == "" || seen[city.Country] {
			continue
		}
		seen[city.Country] = true
		out = append(out, city.Country)
	}
	return out
}

// TransportLabel returns the legend label for t, or the mode itself.
func (j *Journey) TransportLabel(t Transport, lang string) string {
	if n, ok := j.TransportLabels[t]; ok {
		if s := n.In(lang); s != "" {
			return s
		}
	}
	return string(t)
}
