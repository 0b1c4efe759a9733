package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Boundary is one subzone's geographic boundary, kept as one or more
// polygons so multipolygon subzones (islands, split zones) work too.
type Boundary struct {
	SubzoneID    string
	Name         string
	PlanningArea string
	Polygons     []*geom.Polygon
}

// Contains reports whether the point (lon, lat) falls inside the boundary.
// A point inside a polygon's hole does not count as contained.
func (b *Boundary) Contains(lon, lat float64) bool {
	coord := geom.Coord{lon, lat}
	for _, polygon := range b.Polygons {
		if polygonContains(polygon, coord) {
			return true
		}
	}
	return false
}

func polygonContains(polygon *geom.Polygon, coord geom.Coord) bool {
	if polygon.NumLinearRings() == 0 {
		return false
	}
	if !xy.IsPointInRing(geom.XY, coord, polygon.LinearRing(0).FlatCoords()) {
		return false
	}
	for i := 1; i < polygon.NumLinearRings(); i++ {
		if xy.IsPointInRing(geom.XY, coord, polygon.LinearRing(i).FlatCoords()) {
			return false
		}
	}
	return true
}

type boundaryFeature struct {
	Properties struct {
		SubzoneID    string `json:"subzone_id"`
		Name         string `json:"name"`
		PlanningArea string `json:"planning_area"`
	} `json:"properties"`
	Geometry json.RawMessage `json:"geometry"`
}

type boundaryCollection struct {
	Type     string            `json:"type"`
	Features []boundaryFeature `json:"features"`
}

func loadBoundaries(dir string, spec *TableSpec) ([]Boundary, error) {
	b, err := os.ReadFile(filepath.Join(dir, spec.File))
	if err != nil {
		return nil, unavailable(spec.Name, err)
	}

	var collection boundaryCollection
	if err := json.Unmarshal(b, &collection); err != nil {
		return nil, unavailable(spec.Name, err)
	}
	if collection.Type != "FeatureCollection" {
		return nil, &SchemaError{
			Table: spec.Name,
			Want:  []string{"FeatureCollection"},
			Got:   []string{collection.Type},
		}
	}

	boundaries := make([]Boundary, 0, len(collection.Features))
	for _, feature := range collection.Features {
		if feature.Properties.SubzoneID == "" {
			return nil, unavailable(spec.Name, fmt.Errorf("feature without subzone_id"))
		}

		polygons, err := parseGeometry(feature.Geometry)
		if err != nil {
			return nil, unavailable(spec.Name, fmt.Errorf("subzone %q: %w", feature.Properties.SubzoneID, err))
		}

		boundaries = append(boundaries, Boundary{
			SubzoneID:    feature.Properties.SubzoneID,
			Name:         feature.Properties.Name,
			PlanningArea: feature.Properties.PlanningArea,
			Polygons:     polygons,
		})
	}
	return boundaries, nil
}

// parseGeometry converts a GeoJSON Polygon or MultiPolygon geometry into
// go-geom polygons.
func parseGeometry(raw json.RawMessage) ([]*geom.Polygon, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("error parsing geometry: %w", err)
	}

	switch header.Type {
	case "Polygon":
		var g struct {
			Coordinates [][][]float64 `json:"coordinates"`
		}
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("error parsing polygon: %w", err)
		}
		polygon, err := buildPolygon(g.Coordinates)
		if err != nil {
			return nil, err
		}
		return []*geom.Polygon{polygon}, nil

	case "MultiPolygon":
		var g struct {
			Coordinates [][][][]float64 `json:"coordinates"`
		}
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("error parsing multipolygon: %w", err)
		}
		polygons := make([]*geom.Polygon, 0, len(g.Coordinates))
		for _, rings := range g.Coordinates {
			polygon, err := buildPolygon(rings)
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, polygon)
		}
		return polygons, nil

	default:
		return nil, fmt.Errorf("unsupported geometry type %q", header.Type)
	}
}

func buildPolygon(rings [][][]float64) (*geom.Polygon, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("empty polygon coordinates")
	}

	coords := make([][]geom.Coord, len(rings))
	for i, ring := range rings {
		coords[i] = make([]geom.Coord, len(ring))
		for j, position := range ring {
			if len(position) < 2 {
				return nil, fmt.Errorf("coordinate with fewer than two values")
			}
			coords[i][j] = geom.Coord{position[0], position[1]}
		}
	}

	polygon := geom.NewPolygon(geom.XY)
	if _, err := polygon.SetCoords(coords); err != nil {
		return nil, fmt.Errorf("error creating polygon: %w", err)
	}
	return polygon, nil
}
