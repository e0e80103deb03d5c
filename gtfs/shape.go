package gtfs

import (
	"cmp"
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

const ShapeFile = "shapes.txt"

// ShapePoint is a row of shapes.txt. Points sharing a shape_id form one
// shape, ordered by sequence.
type ShapePoint struct {
	shapeID           string
	shapePtLat        float64
	shapePtLon        float64
	shapePtSequence   int
	shapeDistTraveled Optional[float64]
}

func (p ShapePoint) ShapeID() string                      { return p.shapeID }
func (p ShapePoint) ShapePtLat() float64                  { return p.shapePtLat }
func (p ShapePoint) ShapePtLon() float64                  { return p.shapePtLon }
func (p ShapePoint) ShapePtSequence() int                 { return p.shapePtSequence }
func (p ShapePoint) ShapeDistTraveled() Optional[float64] { return p.shapeDistTraveled }

// Key combines shape_id and shape_pt_sequence.
func (p ShapePoint) Key() string {
	return fmt.Sprintf("%s\x00%d", p.shapeID, p.shapePtSequence)
}

// CompareSequence orders points of a shape by shape_pt_sequence.
func CompareSequence(a, b ShapePoint) int {
	return cmp.Compare(a.shapePtSequence, b.shapePtSequence)
}

// ShapePointBuilder builds ShapePoint values.
type ShapePointBuilder struct {
	shapeID           Optional[string]
	shapePtLat        Optional[float64]
	shapePtLon        Optional[float64]
	shapePtSequence   Optional[int]
	shapeDistTraveled Optional[float64]
	notices           []notice.Notice
}

func NewShapePointBuilder() *ShapePointBuilder { return &ShapePointBuilder{} }

func (b *ShapePointBuilder) ShapeID(v Optional[string]) *ShapePointBuilder {
	b.shapeID = v
	return b
}

func (b *ShapePointBuilder) ShapePtLat(v Optional[float64]) *ShapePointBuilder {
	b.shapePtLat = v
	return b
}

func (b *ShapePointBuilder) ShapePtLon(v Optional[float64]) *ShapePointBuilder {
	b.shapePtLon = v
	return b
}

func (b *ShapePointBuilder) ShapePtSequence(v Optional[int]) *ShapePointBuilder {
	b.shapePtSequence = v
	return b
}

func (b *ShapePointBuilder) ShapeDistTraveled(v Optional[float64]) *ShapePointBuilder {
	b.shapeDistTraveled = v
	return b
}

// Build validates the recorded values. Bounds are inclusive.
func (b *ShapePointBuilder) Build() BuildResult[ShapePoint] {
	b.notices = b.notices[:0]
	c := collector{filename: ShapeFile, entityID: b.shapeID.OrElse(""), notices: &b.notices}

	c.requireString("shape_id", b.shapeID)
	c.requireFloat("shape_pt_lat", b.shapePtLat)
	c.floatRange("shape_pt_lat", b.shapePtLat, -90, 90)
	c.requireFloat("shape_pt_lon", b.shapePtLon)
	c.floatRange("shape_pt_lon", b.shapePtLon, -180, 180)
	c.requireInt("shape_pt_sequence", b.shapePtSequence)
	c.intRange("shape_pt_sequence", b.shapePtSequence, 0, math.MaxInt32)
	c.floatRange("shape_dist_traveled", b.shapeDistTraveled, 0, math.MaxFloat64)

	if len(b.notices) > 0 {
		return Failed[ShapePoint](b.notices)
	}
	return Built(ShapePoint{
		shapeID:           b.shapeID.OrElse(""),
		shapePtLat:        b.shapePtLat.OrElse(0),
		shapePtLon:        b.shapePtLon.OrElse(0),
		shapePtSequence:   b.shapePtSequence.OrElse(0),
		shapeDistTraveled: b.shapeDistTraveled,
	})
}
