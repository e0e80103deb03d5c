package repository

import (
	"slices"
	"sync"

	"github.com/theoremus-urban-solutions/gtfs-validator/gtfs"
)

// Feed is the in-memory store of every entity accepted from one feed.
type Feed struct {
	agencies     *collection[gtfs.Agency]
	routes       *collection[gtfs.Route]
	shapePoints  *collection[gtfs.ShapePoint]
	attributions *collection[gtfs.Attribution]
	translations *collection[gtfs.Translation]

	shapeMu  sync.RWMutex
	shapes   map[string][]gtfs.ShapePoint // shape_id -> points in insertion order
	shapeIDs []string
}

// NewFeed returns an empty repository.
func NewFeed() *Feed {
	return &Feed{
		agencies:     newCollection(gtfs.Agency.Key),
		routes:       newCollection(gtfs.Route.Key),
		shapePoints:  newCollection(gtfs.ShapePoint.Key),
		attributions: newCollection(gtfs.Attribution.Key),
		translations: newCollection(gtfs.Translation.Key),
		shapes:       map[string][]gtfs.ShapePoint{},
	}
}

// AddAgency stores a. It returns false when an agency with the same
// agency_id is already stored; the stored one is returned in that case.
func (f *Feed) AddAgency(a gtfs.Agency) (gtfs.Agency, bool) { return f.agencies.add(a) }

func (f *Feed) AddRoute(r gtfs.Route) (gtfs.Route, bool) { return f.routes.add(r) }

// AddShapePoint stores p keyed by shape_id and shape_pt_sequence.
func (f *Feed) AddShapePoint(p gtfs.ShapePoint) (gtfs.ShapePoint, bool) {
	stored, ok := f.shapePoints.add(p)
	if !ok {
		return stored, false
	}
	f.shapeMu.Lock()
	if _, seen := f.shapes[p.ShapeID()]; !seen {
		f.shapeIDs = append(f.shapeIDs, p.ShapeID())
	}
	f.shapes[p.ShapeID()] = append(f.shapes[p.ShapeID()], p)
	f.shapeMu.Unlock()
	return stored, true
}

func (f *Feed) AddAttribution(a gtfs.Attribution) (gtfs.Attribution, bool) {
	return f.attributions.add(a)
}

// AddTranslation stores t. Two translations of the same field of the same
// record into the same language are duplicates.
func (f *Feed) AddTranslation(t gtfs.Translation) (gtfs.Translation, bool) {
	return f.translations.add(t)
}

// AgencyByID looks up an agency. Use "" for the agency of a feed that omits
// agency_id.
func (f *Feed) AgencyByID(id string) (gtfs.Agency, bool) { return f.agencies.get(id) }

func (f *Feed) RouteByID(id string) (gtfs.Route, bool) { return f.routes.get(id) }

// ShapePoints returns the points of a shape sorted by shape_pt_sequence,
// or nil for an unknown shape.
func (f *Feed) ShapePoints(shapeID string) []gtfs.ShapePoint {
	f.shapeMu.RLock()
	pts := slices.Clone(f.shapes[shapeID])
	f.shapeMu.RUnlock()
	slices.SortFunc(pts, gtfs.CompareSequence)
	return pts
}

// ShapeIDs returns the known shape ids in first-seen order.
func (f *Feed) ShapeIDs() []string {
	f.shapeMu.RLock()
	defer f.shapeMu.RUnlock()
	return slices.Clone(f.shapeIDs)
}

// AttributionQuery selects an attribution. OrganizationName always takes
// part in the match; the other fields only when present.
type AttributionQuery struct {
	OrganizationName string
	AttributionID    gtfs.Optional[string]
	AgencyID         gtfs.Optional[string]
	RouteID          gtfs.Optional[string]
	TripID           gtfs.Optional[string]
	IsProducer       gtfs.Optional[int]
	IsOperator       gtfs.Optional[int]
	IsAuthority      gtfs.Optional[int]
	AttributionURL   gtfs.Optional[string]
	AttributionEmail gtfs.Optional[string]
	AttributionPhone gtfs.Optional[string]
}

func (q AttributionQuery) matches(a gtfs.Attribution) bool {
	return a.OrganizationName() == q.OrganizationName &&
		matchField(q.AttributionID, a.AttributionID()) &&
		matchField(q.AgencyID, a.AgencyID()) &&
		matchField(q.RouteID, a.RouteID()) &&
		matchField(q.TripID, a.TripID()) &&
		matchField(q.IsProducer, a.IsProducer()) &&
		matchField(q.IsOperator, a.IsOperator()) &&
		matchField(q.IsAuthority, a.IsAuthority()) &&
		matchField(q.AttributionURL, a.AttributionURL()) &&
		matchField(q.AttributionEmail, a.AttributionEmail()) &&
		matchField(q.AttributionPhone, a.AttributionPhone())
}

// matchField reports whether an attribution value satisfies one query field.
// An absent query field matches anything.
func matchField[T comparable](want, got gtfs.Optional[T]) bool {
	w, ok := want.Get()
	if !ok {
		return true
	}
	g, ok := got.Get()
	return ok && g == w
}

// Attribution returns the first stored attribution matching q.
func (f *Feed) Attribution(q AttributionQuery) (gtfs.Attribution, bool) {
	return f.attributions.find(q.matches)
}

func (f *Feed) Agencies() []gtfs.Agency { return f.agencies.all() }
func (f *Feed) Routes() []gtfs.Route    { return f.routes.all() }

func (f *Feed) Attributions() []gtfs.Attribution { return f.attributions.all() }
func (f *Feed) Translations() []gtfs.Translation { return f.translations.all() }

// Counts returns the number of stored entities per file name.
func (f *Feed) Counts() map[string]int {
	return map[string]int{
		gtfs.AgencyFile:      f.agencies.len(),
		gtfs.RouteFile:       f.routes.len(),
		gtfs.ShapeFile:       f.shapePoints.len(),
		gtfs.AttributionFile: f.attributions.len(),
		gtfs.TranslationFile: f.translations.len(),
	}
}
