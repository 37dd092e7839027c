// Package geo validates GeoJSON Polygon payloads before they reach the
// service or repository layers. Validation is pure — no I/O, no side effects.
package geo

import (
	"encoding/json"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// polygonDoc is the structural shape a candidate payload must decode into.
// Positions keep their extra dimensions (elevation etc.); only the first two
// are range-checked.
type polygonDoc struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// ValidPolygon reports whether raw is a well-formed GeoJSON Polygon:
//
//   - type is exactly "Polygon" (case-sensitive; Point, MultiPolygon,
//     "polygon" all fail)
//   - coordinates is a non-empty array of linear rings
//   - every ring has at least 4 positions, each with numeric longitude in
//     [-180, 180] and latitude in [-90, 90]
//   - every ring is closed (first position equals last)
//   - no ring self-intersects: non-adjacent edges of a ring must not cross
//     or touch (a bowtie like [[0,0],[2,2],[2,0],[0,2],[0,0]] fails)
//
// Payloads passing the structural and topology rules are then round-tripped
// through go-geom's GeoJSON decoder as a final decode check. Any decode error
// or panic counts as invalid — the function never propagates failures.
func ValidPolygon(raw []byte) bool {
	var doc polygonDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}
	if doc.Type != "Polygon" {
		return false
	}
	if len(doc.Coordinates) == 0 {
		return false
	}
	for _, ring := range doc.Coordinates {
		if len(ring) < 4 {
			return false
		}
		for _, pos := range ring {
			if len(pos) < 2 {
				return false
			}
			lon, lat := pos[0], pos[1]
			if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
				return false
			}
		}
		if !samePosition(ring[0], ring[len(ring)-1]) {
			return false
		}
		if ringSelfIntersects(ring) {
			return false
		}
	}
	return decodesAsPolygon(raw)
}

// ringSelfIntersects checks every pair of non-adjacent edges of a closed ring
// for crossings or touches. Adjacent edges (including the closing edge and
// the first one) share an endpoint and are skipped. O(n²) is fine for the
// ring sizes this API sees.
func ringSelfIntersects(ring [][]float64) bool {
	n := len(ring) - 1 // last position repeats the first
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}
	return false
}

// cross is the 2D cross product of (a-o) and (b-o). Zero means collinear;
// the sign gives the turn direction. Elevation is ignored.
func cross(o, a, b []float64) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share any point,
// including collinear overlap and endpoint touches.
func segmentsIntersect(p1, p2, q1, q2 []float64) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return (d1 == 0 && inBox(q1, q2, p1)) ||
		(d2 == 0 && inBox(q1, q2, p2)) ||
		(d3 == 0 && inBox(p1, p2, q1)) ||
		(d4 == 0 && inBox(p1, p2, q2))
}

// inBox reports whether collinear point p lies within the bounding box of
// segment a-b.
func inBox(a, b, p []float64) bool {
	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}

func samePosition(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// decodesAsPolygon fails closed: a panic inside the decoder is treated the
// same as a decode error.
func decodesAsPolygon(raw []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		return false
	}
	_, ok = g.(*geom.Polygon)
	return ok
}
