package rules

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// ShapeDistanceOrder checks that shape_dist_traveled strictly increases
// along each shape. Points without a distance are skipped.
type ShapeDistanceOrder struct{}

func (ShapeDistanceOrder) Name() string { return "shape_distance_order" }

func (ShapeDistanceOrder) Requires() []string { return []string{gtfs.ShapeFile} }

func (ShapeDistanceOrder) Validate(feed Feed, sink notice.Sink) {
	for _, id := range feed.ShapeIDs() {
		var (
			prev     gtfs.ShapePoint
			prevDist float64
			seen     bool
		)
		for _, p := range feed.ShapePoints(id) {
			dist, ok := p.ShapeDistTraveled().Get()
			if !ok {
				continue
			}
			if seen && dist <= prevDist {
				sink.AddNotice(notice.NewDecreasingShapeDistance(gtfs.ShapeFile, id,
					p.ShapePtSequence(), dist, prev.ShapePtSequence(), prevDist))
			}
			prev, prevDist, seen = p, dist, true
		}
	}
}
