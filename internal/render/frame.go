// Package render turns a resolved journey state into a renderer-agnostic
// frame of draw commands.
package render

import (
	"github.com/couchcryptid/journey-globe-service/internal/camera"
	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

// Frame is everything a surface needs to draw one picture of the globe.
type Frame struct {
	Language    string         `json:"language"`
	Progress    float64        `json:"progress"`
	Zoom        float64        `json:"zoom"`
	Camera      camera.View    `json:"camera"`
	Traveler    Traveler       `json:"traveler"`
	CurrentStop StopInfo       `json:"currentStop"`
	Country     *CountryTitle  `json:"country,omitempty"`
	Paths       []Polyline     `json:"paths"`
	Markers     []Marker       `json:"markers"`
	Countries   []CountryLabel `json:"countries"`
	Timeline    []TimelineItem `json:"timeline"`
	Legend      []LegendItem   `json:"legend"`
	Hints       Hints          `json:"hints"`
	Gallery     string         `json:"gallery,omitempty"`
}

// Traveler is the moving marker on the path.
type Traveler struct {
	Position  domain.Vec3      `json:"position"`
	Transport domain.Transport `json:"transport"`
	InFlight  bool             `json:"inFlight"`
	Scale     float64          `json:"scale"`
}

// StopInfo describes the stop shown as current.
type StopInfo struct {
	ID        int    `json:"id"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	City      string `json:"city"`
	Name      string `json:"name"`
	HasPhotos bool   `json:"hasPhotos"`
}

// CountryTitle is the flip-board country name of the current stop.
type CountryTitle struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Polyline is one coloured run of the path.
type Polyline struct {
	Color  string        `json:"color"`
	Future bool          `json:"future,omitempty"`
	Points []domain.Vec3 `json:"points"`
}

// MarkerKind distinguishes the three marker styles.
type MarkerKind string

const (
	MarkerCurrent MarkerKind = "current"
	MarkerFrom    MarkerKind = "from"
	MarkerPast    MarkerKind = "past"
)

// Marker is a city marker for a visited stop.
type Marker struct {
	StopID    int         `json:"stopId"`
	City      string      `json:"city"`
	Name      string      `json:"name"`
	Kind      MarkerKind  `json:"kind"`
	Position  domain.Vec3 `json:"position"`
	Scale     float64     `json:"scale"`
	ShowLabel bool        `json:"showLabel"`
	Clickable bool        `json:"clickable"`
}

// CountryLabel is a country name painted on the globe surface.
type CountryLabel struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Native   string      `json:"native,omitempty"`
	Position domain.Vec3 `json:"position"`
	Current  bool        `json:"current"`
}

// TimelineItem is one row of the vertical timeline.
type TimelineItem struct {
	StopID  int    `json:"stopId"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Visited bool   `json:"visited"`
	Current bool   `json:"current"`
}

// LegendItem is one entry of the transport legend.
type LegendItem struct {
	Transport domain.Transport `json:"transport"`
	Color     string           `json:"color"`
	Label     string           `json:"label"`
}

// Hints are the onboarding overlays.
type Hints struct {
	Scroll bool `json:"scroll"`
	Swipe  bool `json:"swipe"`
	About  bool `json:"about"`
}
