// Package dataset loads and checks the static journey inputs.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

// File names inside the data directory.
const (
	JourneyFile   = "journey.json"
	CitiesFile    = "cities.json"
	CountriesFile = "countries.json"
	PhotosFile    = "cityPhotos.json"
)

// ErrStopOrder reports stop IDs that do not strictly increase.
var ErrStopOrder = errors.New("stop ids must strictly increase")

type journeyFile struct {
	Stops     []domain.Stop          `json:"stops" validate:"required,min=1,dive"`
	Countries map[string]countryName `json:"countries"`
}

type countryName struct {
	Name domain.LocalizedName `json:"name"`
}

type citiesFile struct {
	Cities    map[string]domain.City                    `json:"cities" validate:"required,dive"`
	Transport map[domain.Transport]domain.LocalizedName `json:"transport"`
}

type countriesFile struct {
	Countries []domain.Country `json:"countries" validate:"dive"`
}

type photosFile struct {
	Cities domain.PhotoIndex `validate:"dive"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Load reads the dataset from a directory on disk.
func Load(dir string) (*domain.Journey, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads the dataset from fsys. The journey and city files are
// required; countries and photos are optional.
func LoadFS(fsys fs.FS) (*domain.Journey, error) {
	var jf journeyFile
	if err := decode(fsys, JourneyFile, &jf, true); err != nil {
		return nil, err
	}
	var cf citiesFile
	if err := decode(fsys, CitiesFile, &cf, true); err != nil {
		return nil, err
	}
	var kf countriesFile
	if err := decode(fsys, CountriesFile, &kf, false); err != nil {
		return nil, err
	}
	var pf photosFile
	if err := decode(fsys, PhotosFile, &pf.Cities, false); err != nil {
		return nil, err
	}

	checks := []struct {
		name string
		v    any
	}{
		{JourneyFile, jf},
		{CitiesFile, cf},
		{CountriesFile, kf},
		{PhotosFile, pf},
	}
	for _, c := range checks {
		if err := getValidator().Struct(c.v); err != nil {
			return nil, fmt.Errorf("validate %s: %w", c.name, err)
		}
	}

	names := make(map[string]domain.LocalizedName, len(jf.Countries))
	for code, c := range jf.Countries {
		names[code] = c.Name
	}

	j := &domain.Journey{
		Stops:           jf.Stops,
		Cities:          domain.CityTable(cf.Cities),
		Countries:       kf.Countries,
		CountryNames:    names,
		TransportLabels: cf.Transport,
		Photos:          pf.Cities,
	}
	if j.Photos == nil {
		j.Photos = domain.PhotoIndex{}
	}

	if err := CheckStopOrder(j.Stops); err != nil {
		return nil, err
	}
	return j, nil
}

func decode(fsys fs.FS, name string, v any, required bool) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// CheckStopOrder verifies that stop IDs strictly increase in itinerary order.
func CheckStopOrder(stops []domain.Stop) error {
	for i := 1; i < len(stops); i++ {
		if stops[i].ID <= stops[i-1].ID {
			return fmt.Errorf("%w: stop %d follows %d at index %d", ErrStopOrder, stops[i].ID, stops[i-1].ID, i)
		}
	}
	return nil
}
