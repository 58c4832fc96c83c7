// Package location resolves free-text region names to geographic coordinates.
package location

import (
	"sort"
	"strings"
)

// DefaultKey is the registry entry used when a region name is unknown.
const DefaultKey = "default"

// Coordinates identifies a resolved region.
type Coordinates struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Registry maps lower-cased region names to coordinates. It is read-only
// after construction and safe for concurrent use.
type Registry struct {
	entries map[string]Coordinates
}

// NewRegistry builds the registry of supported Indian states and cities.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]Coordinates{
		"andhra pradesh":   {Lat: 15.9129, Lon: 79.7400, DisplayName: "Andhra Pradesh"},
		"telangana":        {Lat: 18.1124, Lon: 79.0193, DisplayName: "Telangana"},
		"tamil nadu":       {Lat: 11.0168, Lon: 76.9558, DisplayName: "Tamil Nadu"},
		"karnataka":        {Lat: 12.9716, Lon: 77.5946, DisplayName: "Karnataka"},
		"kerala":           {Lat: 10.8505, Lon: 76.2711, DisplayName: "Kerala"},
		"maharashtra":      {Lat: 19.7515, Lon: 75.7139, DisplayName: "Maharashtra"},
		"gujarat":          {Lat: 22.2587, Lon: 71.1924, DisplayName: "Gujarat"},
		"rajasthan":        {Lat: 27.0238, Lon: 74.2179, DisplayName: "Rajasthan"},
		"madhya pradesh":   {Lat: 22.9734, Lon: 78.6569, DisplayName: "Madhya Pradesh"},
		"uttar pradesh":    {Lat: 26.8467, Lon: 80.9462, DisplayName: "Uttar Pradesh"},
		"bihar":            {Lat: 25.0961, Lon: 85.3131, DisplayName: "Bihar"},
		"west bengal":      {Lat: 22.9868, Lon: 87.8550, DisplayName: "West Bengal"},
		"odisha":           {Lat: 20.9517, Lon: 85.0985, DisplayName: "Odisha"},
		"chhattisgarh":     {Lat: 21.2787, Lon: 81.8661, DisplayName: "Chhattisgarh"},
		"jharkhand":        {Lat: 23.6102, Lon: 85.2799, DisplayName: "Jharkhand"},
		"punjab":           {Lat: 31.1471, Lon: 75.3412, DisplayName: "Punjab"},
		"haryana":          {Lat: 29.0588, Lon: 76.0856, DisplayName: "Haryana"},
		"himachal pradesh": {Lat: 31.1048, Lon: 77.1734, DisplayName: "Himachal Pradesh"},
		"uttarakhand":      {Lat: 30.0668, Lon: 79.0193, DisplayName: "Uttarakhand"},
		"assam":            {Lat: 26.2006, Lon: 92.9376, DisplayName: "Assam"},

		"delhi":     {Lat: 28.6139, Lon: 77.2090, DisplayName: "Delhi"},
		"mumbai":    {Lat: 19.0760, Lon: 72.8777, DisplayName: "Mumbai"},
		"bangalore": {Lat: 12.9716, Lon: 77.5946, DisplayName: "Bangalore"},
		"hyderabad": {Lat: 17.3850, Lon: 78.4867, DisplayName: "Hyderabad"},
		"chennai":   {Lat: 13.0827, Lon: 80.2707, DisplayName: "Chennai"},
		"kolkata":   {Lat: 22.5726, Lon: 88.3639, DisplayName: "Kolkata"},
		"ahmedabad": {Lat: 23.0225, Lon: 72.5714, DisplayName: "Ahmedabad"},
		"pune":      {Lat: 18.5204, Lon: 73.8567, DisplayName: "Pune"},
		"jaipur":    {Lat: 26.9124, Lon: 75.7873, DisplayName: "Jaipur"},
		"lucknow":   {Lat: 26.8467, Lon: 80.9462, DisplayName: "Lucknow"},

		DefaultKey: {Lat: 20.5937, Lon: 78.9629, DisplayName: "India (Central)"},
	}}
}

// Resolve maps a region name to coordinates. Lookup is case-insensitive and
// unknown or empty names resolve to the default entry. Resolve never fails.
func (r *Registry) Resolve(name string) Coordinates {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := r.entries[key]; ok {
		return c
	}
	return r.entries[DefaultKey]
}

// Known reports whether a region name is present in the registry.
func (r *Registry) Known(name string) bool {
	_, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// All returns every registry entry except the default, sorted by display name.
func (r *Registry) All() []Coordinates {
	out := make([]Coordinates, 0, len(r.entries)-1)
	for key, c := range r.entries {
		if key == DefaultKey {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out
}
