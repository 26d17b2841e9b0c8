// Package geo содержит минимальные GeoJSON-типы и геометрические проверки,
// которые нужны ядру в процессе (без обращения к БД): валидация кольца
// полигона при сохранении и тест точка-в-полигоне для маршрутизации.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidPolygon - кольцо не проходит проверку при сохранении.
	ErrInvalidPolygon = errors.New("invalid polygon ring")

	// ErrInvalidPoint - геометрия точки не соответствует GeoJSON Point.
	ErrInvalidPoint = errors.New("invalid point geometry")
)

// Point - точка в координатах [долгота, широта] (GeoJSON порядок).
type Point struct {
	Lon float64
	Lat float64
}

type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// MarshalJSON сериализует точку как {"type":"Point","coordinates":[lon,lat]}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string     `json:"type"`
		Coordinates [2]float64 `json:"coordinates"`
	}{Type: "Point", Coordinates: [2]float64{p.Lon, p.Lat}})
}

// UnmarshalJSON разбирает GeoJSON Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var g geoJSONGeometry
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	if g.Type != "Point" {
		return fmt.Errorf("%w: unexpected type %q", ErrInvalidPoint, g.Type)
	}
	var coords []float64
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil || len(coords) != 2 {
		return fmt.Errorf("%w: coordinates must be [lon, lat]", ErrInvalidPoint)
	}
	p.Lon, p.Lat = coords[0], coords[1]
	return nil
}

// Polygon - простой полигон: одно замкнутое внешнее кольцо вершин [lon, lat].
// Первая вершина повторяется последней.
type Polygon struct {
	Ring []Point
}

// MarshalJSON сериализует полигон как GeoJSON Polygon с одним кольцом.
func (pg Polygon) MarshalJSON() ([]byte, error) {
	ring := make([][2]float64, 0, len(pg.Ring))
	for _, v := range pg.Ring {
		ring = append(ring, [2]float64{v.Lon, v.Lat})
	}
	return json.Marshal(struct {
		Type        string         `json:"type"`
		Coordinates [][][2]float64 `json:"coordinates"`
	}{Type: "Polygon", Coordinates: [][][2]float64{ring}})
}

// UnmarshalJSON разбирает GeoJSON Polygon, берет только внешнее кольцо.
func (pg *Polygon) UnmarshalJSON(data []byte) error {
	var g geoJSONGeometry
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPolygon, err)
	}
	if g.Type != "Polygon" {
		return fmt.Errorf("%w: unexpected type %q", ErrInvalidPolygon, g.Type)
	}
	var rings [][][]float64
	if err := json.Unmarshal(g.Coordinates, &rings); err != nil || len(rings) == 0 {
		return fmt.Errorf("%w: coordinates must contain at least one ring", ErrInvalidPolygon)
	}
	ring := make([]Point, 0, len(rings[0]))
	for _, c := range rings[0] {
		if len(c) != 2 {
			return fmt.Errorf("%w: vertex must be [lon, lat]", ErrInvalidPolygon)
		}
		ring = append(ring, Point{Lon: c[0], Lat: c[1]})
	}
	pg.Ring = ring
	return nil
}

// Validate проверяет кольцо при сохранении: минимум 4 вершины
// (замкнутый треугольник) и замкнутость (первая == последняя).
// Запросы contains дегенеративные кольца уже не видят.
func (pg Polygon) Validate() error {
	if len(pg.Ring) < 4 {
		return fmt.Errorf("%w: ring has %d vertices, need at least 4", ErrInvalidPolygon, len(pg.Ring))
	}
	first, last := pg.Ring[0], pg.Ring[len(pg.Ring)-1]
	if first.Lon != last.Lon || first.Lat != last.Lat {
		return fmt.Errorf("%w: ring is not closed", ErrInvalidPolygon)
	}
	return nil
}

// Contains - тест точка-в-полигоне методом ray casting по замкнутому кольцу.
// Координаты трактуются как плоские lon/lat без коррекции антимеридиана,
// так же, как полигоны рисуются при авторинге. Точка на вершине или на ребре
// считается принадлежащей полигону.
func (pg Polygon) Contains(p Point) bool {
	ring := pg.Ring
	if len(ring) < 4 {
		return false
	}
	inside := false
	// Кольцо замкнуто, последнюю (дублирующую) вершину пропускаем.
	n := len(ring) - 1
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[i+1]
		if a.Lon == p.Lon && a.Lat == p.Lat {
			return true
		}
		if onSegment(a, b, p) {
			return true
		}
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			x := a.Lon + (p.Lat-a.Lat)/(b.Lat-a.Lat)*(b.Lon-a.Lon)
			if p.Lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b, p Point) bool {
	cross := (b.Lon-a.Lon)*(p.Lat-a.Lat) - (b.Lat-a.Lat)*(p.Lon-a.Lon)
	if cross != 0 {
		return false
	}
	return min(a.Lon, b.Lon) <= p.Lon && p.Lon <= max(a.Lon, b.Lon) &&
		min(a.Lat, b.Lat) <= p.Lat && p.Lat <= max(a.Lat, b.Lat)
}
