package query

import (
	"time"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/globalsign/mgo/bson"
)

//Spec is the query specification shared by the listing operations:
//filters, text search, sort key and direction, date window, and the
//requested page. It replaces ad hoc pipeline mutation with a single
//value object handed to one query execution function.
type Spec struct {
	Page      int
	PerPage   int
	Search    string
	Filters   map[string][]string
	SortField string
	SortDesc  bool
	DateFrom  *time.Time
	DateTo    *time.Time
}

//Skip computes the number of documents to skip to reach the requested page
func (s Spec) Skip() int {
	if s.Page < 1 {
		return 0
	}
	return (s.Page - 1) * s.PerPage
}

//FilterClauses translates the spec's filters into match clauses using
//the allowed filter-key to document-field mapping for the listing at
//hand. An unrecognized filter key yields an InvalidFilterFieldError.
func (s Spec) FilterClauses(allowed map[string]string) ([]bson.M, error) {
	var clauses []bson.M
	for key, vals := range s.Filters {
		field, ok := allowed[key]
		if !ok {
			return nil, &data.InvalidFilterFieldError{Field: key}
		}
		if len(vals) == 0 {
			continue
		}
		clauses = append(clauses, bson.M{field: bson.M{"$in": vals}})
	}
	return clauses, nil
}

//Window clamps the spec's date bounds to whole calendar days in the
//given reference timezone. The lower bound becomes the start of its
//day and the upper bound the end of its day, making the window
//inclusive of both named days when matched against sub-day timestamps.
func (s Spec) Window(loc *time.Location) (*time.Time, *time.Time) {
	var from, to *time.Time
	if s.DateFrom != nil {
		t := s.DateFrom.In(loc)
		clamped := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		from = &clamped
	}
	if s.DateTo != nil {
		t := s.DateTo.In(loc)
		clamped := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, loc)
		to = &clamped
	}
	return from, to
}

//SortDoc builds the ordered sort document for the spec. fallback is
//used when the spec names no sort field; tiebreak, when non-empty, is
//appended as an ascending secondary key so pagination remains stable.
func (s Spec) SortDoc(fallback string, tiebreak string) bson.D {
	field := s.SortField
	if field == "" {
		field = fallback
	}
	direction := 1
	if s.SortDesc {
		direction = -1
	}
	sortDoc := bson.D{{Name: field, Value: direction}}
	if tiebreak != "" && tiebreak != field {
		sortDoc = append(sortDoc, bson.DocElem{Name: tiebreak, Value: 1})
	}
	return sortDoc
}
