package borders

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/couchcryptid/journey-globe-service/internal/domain"
)

// SmoothIterations is the number of Chaikin passes applied to each ring.
const SmoothIterations = 2

// Ring is one closed outline projected onto the globe.
type Ring []domain.Vec3

// iso3Aliases covers countries whose ISO_A2 is missing from Natural Earth.
var iso3Aliases = map[string]string{
	"FR": "FRA",
	"NO": "NOR",
}

var codeProperties = []string{"ISO_A2", "ISO_A3", "ADM0_A3"}

// Matches reports whether a feature's properties name the country code.
func Matches(props geojson.Properties, code string) bool {
	alias := iso3Aliases[code]
	for _, key := range codeProperties {
		// Natural Earth uses numeric sentinels such as -99 in some code fields.
		v, _ := props[key].(string)
		if v == "" {
			continue
		}
		if v == code || v == alias {
			return true
		}
	}
	return false
}

// Smooth applies Chaikin corner cutting: every segment is replaced by points at
// 25% and 75% of its length and the ring is closed by repeating its first
// point. Each pass doubles the segment count. Rings shorter than three points
// are returned as they are.
func Smooth(ring orb.Ring, iterations int) orb.Ring {
	cur := ring
	for range iterations {
		if len(cur) < 3 {
			break
		}
		next := make(orb.Ring, 0, 2*(len(cur)-1)+1)
		for i := 0; i < len(cur)-1; i++ {
			p0, p1 := cur[i], cur[i+1]
			next = append(next,
				orb.Point{0.75*p0[0] + 0.25*p1[0], 0.75*p0[1] + 0.25*p1[1]},
				orb.Point{0.25*p0[0] + 0.75*p1[0], 0.25*p0[1] + 0.75*p1[1]},
			)
		}
		cur = append(next, next[0])
	}
	return cur
}

// Project lifts a longitude/latitude ring onto a sphere of the given radius.
func Project(ring orb.Ring, radius float64) Ring {
	out := make(Ring, len(ring))
	for i, p := range ring {
		out[i] = domain.LatLngToVector3(p.Lat(), p.Lon(), radius)
	}
	return out
}

// CountryRings returns the smoothed, projected outer and inner rings of every
// feature matching code. Geometries other than polygons are ignored.
func CountryRings(fc *geojson.FeatureCollection, code string) []Ring {
	if fc == nil || code == "" {
		return nil
	}
	var rings []Ring
	add := func(poly orb.Polygon) {
		for _, r := range poly {
			rings = append(rings, Project(Smooth(r, SmoothIterations), domain.BorderRadius))
		}
	}

	for _, f := range fc.Features {
		if !Matches(f.Properties, code) {
			continue
		}
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			add(g)
		case orb.MultiPolygon:
			for _, poly := range g {
				add(poly)
			}
		}
	}
	return rings
}
