// Package geo builds the great-circle distance projection and radius predicate
// used by the post and user queries. All coordinates are bound as query
// arguments; nothing is formatted into the SQL text.
package geo

import (
	"fmt"
	"math"
)

const (
	EarthRadiusMiles = 3959.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinMiles     = 1.0
	MaxMiles     = 500.0

	milesPerLatDegree = EarthRadiusMiles * math.Pi / 180
)

type Point struct {
	Latitude  float64
	Longitude float64
}

// NewPoint returns nil unless both coordinates are present.
func NewPoint(lat, lng *float64) *Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &Point{Latitude: *lat, Longitude: *lng}
}

func (p Point) Valid() bool {
	return p.Latitude >= MinLatitude && p.Latitude <= MaxLatitude &&
		p.Longitude >= MinLongitude && p.Longitude <= MaxLongitude
}

// DistanceMiles is the haversine distance between two points.
func DistanceMiles(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Box is a lat/lng rectangle enclosing every point within a radius.
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	// WrapsLng is set when the box crosses the antimeridian or a pole; the
	// longitude bound is then unusable as a pre-filter.
	WrapsLng bool
}

func BoundingBox(center Point, miles float64) Box {
	dLat := miles / milesPerLatDegree
	box := Box{
		MinLat: math.Max(MinLatitude, center.Latitude-dLat),
		MaxLat: math.Min(MaxLatitude, center.Latitude+dLat),
	}

	cosLat := math.Cos(radians(center.Latitude))
	if box.MinLat == MinLatitude || box.MaxLat == MaxLatitude || cosLat < 1e-9 {
		box.MinLng, box.MaxLng, box.WrapsLng = MinLongitude, MaxLongitude, true
		return box
	}

	dLng := miles / (milesPerLatDegree * cosLat)
	box.MinLng = center.Longitude - dLng
	box.MaxLng = center.Longitude + dLng
	if box.MinLng < MinLongitude || box.MaxLng > MaxLongitude {
		box.MinLng, box.MaxLng, box.WrapsLng = MinLongitude, MaxLongitude, true
	}
	return box
}

// Filter is the distance projection plus optional radius predicate.
// A nil Center disables it entirely.
type Filter struct {
	Center     *Point
	Miles      float64
	SelectOnly bool
}

// NewFilter builds a filter, falling back to defaultMiles when miles is unset.
func NewFilter(center *Point, miles *float64, defaultMiles float64, selectOnly bool) Filter {
	m := defaultMiles
	if miles != nil && *miles > 0 {
		m = *miles
	}
	return Filter{Center: center, Miles: m, SelectOnly: selectOnly}
}

func (f Filter) Enabled() bool {
	return f.Center != nil
}

// Select returns the `... AS distance` column for the given table alias.
// When disabled it yields a NULL column so the scan target stays the same.
func (f Filter) Select(alias string) (string, []any) {
	if !f.Enabled() {
		return "NULL AS distance", nil
	}
	expr, args := f.expr(alias)
	return expr + " AS distance", args
}

// Where returns the bounding box and exact radius predicate, or "" when the
// filter is disabled or select-only.
func (f Filter) Where(alias string) (string, []any) {
	if !f.Enabled() || f.SelectOnly {
		return "", nil
	}

	box := BoundingBox(*f.Center, f.Miles)
	col := columns(alias)

	clause := fmt.Sprintf("%s BETWEEN ? AND ?", col.lat)
	args := []any{box.MinLat, box.MaxLat}
	if !box.WrapsLng {
		clause += fmt.Sprintf(" AND %s BETWEEN ? AND ?", col.lng)
		args = append(args, box.MinLng, box.MaxLng)
	}

	expr, exprArgs := f.expr(alias)
	clause += " AND " + expr + " < ?"
	args = append(args, exprArgs...)
	args = append(args, f.Miles)

	return clause, args
}

// expr is the spherical law of cosines, clamped so rounding never pushes acos
// outside its domain for identical points.
func (f Filter) expr(alias string) (string, []any) {
	col := columns(alias)
	expr := fmt.Sprintf(
		"(%v * ACOS(LEAST(1, GREATEST(-1, COS(RADIANS(?)) * COS(RADIANS(%s)) * COS(RADIANS(%s) - RADIANS(?)) + SIN(RADIANS(?)) * SIN(RADIANS(%s))))))",
		EarthRadiusMiles, col.lat, col.lng, col.lat,
	)
	return expr, []any{f.Center.Latitude, f.Center.Longitude, f.Center.Latitude}
}

type cols struct{ lat, lng string }

func columns(alias string) cols {
	if alias == "" {
		return cols{lat: "latitude", lng: "longitude"}
	}
	return cols{lat: alias + ".latitude", lng: alias + ".longitude"}
}

// FormatDistance renders a distance the way post views expect it.
func FormatDistance(d *float64) string {
	if d == nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", *d)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
