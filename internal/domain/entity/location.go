package entity

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Location is the last reported position of the primary device. It annotates
// alerts and never raises or clears one.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	At        time.Time `json:"at"`
}

// Point returns the location in orb's lon/lat order.
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// Feature renders the location as a GeoJSON point feature stamped with its time.
func (l Location) Feature() *geojson.Feature {
	feature := geojson.NewFeature(l.Point())
	feature.Properties["at"] = l.At.UTC().Format(time.RFC3339)

	return feature
}
