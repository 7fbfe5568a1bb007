package domain

import (
	"sort"
	"time"
)

// Caption is a photo caption in each supported language.
type Caption struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// Text returns the caption for lang, falling back to Korean.
func (c Caption) Text(lang string) string {
	if lang == "en" && c.En != "" {
		return c.En
	}
	return c.Ko
}

// Photo is one gallery entry. The engine only reads these records.
type Photo struct {
	ID        string  `json:"id" validate:"required"`
	URL       string  `json:"url,omitempty"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Date      string  `json:"date"`
	GPS       *LatLng `json:"gps,omitempty"`
	Caption   Caption `json:"caption"`
	Location  string  `json:"location,omitempty"`
}

// CityPhotos groups the photos taken in one city.
type CityPhotos struct {
	CityCode string  `json:"cityCode"`
	Photos   []Photo `json:"photos" validate:"dive"`
}

// PhotoIndex maps a city key to its photos.
type PhotoIndex map[string]CityPhotos

// HasPhotos reports whether the gallery can open for city.
func (x PhotoIndex) HasPhotos(city string) bool {
	return len(x[city].Photos) > 0
}

// Sorted returns the photos for city ordered oldest first. Unparseable dates
// sort before every parsed one.
func (x PhotoIndex) Sorted(city string) []Photo {
	src := x[city].Photos
	out := make([]Photo, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool {
		return parsePhotoDate(out[i].Date).Before(parsePhotoDate(out[j].Date))
	})
	return out
}

var photoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006:01:02 15:04:05",
	"2006-01-02",
}

func parsePhotoDate(s string) time.Time {
	t, _ := parseDate(s)
	return t
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range photoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Taken parses the photo date and reports whether it is in a known layout.
func (p Photo) Taken() (time.Time, bool) {
	return parseDate(p.Date)
}
