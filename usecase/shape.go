package usecase

import (
	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

type ShapePointRepository interface {
	AddShapePoint(p gtfs.ShapePoint) (gtfs.ShapePoint, bool)
}

// ProcessParsedShapePoint processes rows of shapes.txt. A duplicate point
// has no single-field id and is reported with notice.NoID.
type ProcessParsedShapePoint struct {
	sink    notice.Sink
	repo    ShapePointRepository
	builder *gtfs.ShapePointBuilder
}

func NewProcessParsedShapePoint(sink notice.Sink, repo ShapePointRepository, builder *gtfs.ShapePointBuilder) *ProcessParsedShapePoint {
	mustDeps(sink, repo, builder, "ProcessParsedShapePoint")
	return &ProcessParsedShapePoint{sink: sink, repo: repo, builder: builder}
}

func (p *ProcessParsedShapePoint) Execute(rec ParsedEntity) Outcome {
	res := p.builder.
		ShapeID(str(rec.Get("shape_id"))).
		ShapePtLat(float(rec.Get("shape_pt_lat"))).
		ShapePtLon(float(rec.Get("shape_pt_lon"))).
		ShapePtSequence(integer(rec.Get("shape_pt_sequence"))).
		ShapeDistTraveled(float(rec.Get("shape_dist_traveled"))).
		Build()
	return process(p.sink, res, p.repo.AddShapePoint, func(gtfs.ShapePoint) notice.Notice {
		return notice.NewDuplicatedEntity(gtfs.ShapeFile, "shape_id", notice.NoID)
	})
}
