package ioc

import (
	"regexp"
	"time"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/query"
	"github.com/activeintel/iocdb/resources"
	"github.com/activeintel/iocdb/util"
	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"
)

//groupedFilterFields maps the filter keys recognized by the grouped
//listing onto the fields of the grouped summaries. "source" and
//"threat_type" reach into the per occurrence provenance and
//attribution data; the rest match grouped fields directly.
var groupedFilterFields = map[string]string{
	"source":      "sources.key",
	"threat_type": "threat_types",
	"type":        "type",
	"value":       "value",
}

//rawFilterFields maps the filter keys recognized by the raw listing
//onto occurrence document fields
var rawFilterFields = map[string]string{
	"source":      "source_ref.key",
	"threat_type": "source_meta.threat_type",
	"type":        "ioc_types",
	"id":          "id",
}

type repo struct {
	res *resources.Resources
}

//NewMongoRepository create new repository
func NewMongoRepository(res *resources.Resources) Repository {
	return &repo{
		res: res,
	}
}

//CreateIndexes sets up the indexes the aggregation queries lean on
func (r *repo) CreateIndexes() error {
	session := r.res.DB.Session.Copy()
	defer session.Close()

	coll := session.DB(r.res.DB.GetSelectedDB()).C(r.res.Config.T.IOC.IOCTable)

	indexes := []mgo.Index{
		{Key: []string{"ioc_types"}},
		{Key: []string{"source_ref.key", "source_ref.type"}},
		{Key: []string{"meta.date"}},
	}

	for _, index := range indexes {
		err := coll.EnsureIndex(index)
		if err != nil {
			return err
		}
	}
	return nil
}

//valueMatch builds the match clause for occurrences carrying the
//given value under the given indicator kind. Per kind values may be
//scalars or lists; equality matches either directly.
func valueMatch(kind data.IOCType, value interface{}) bson.M {
	return bson.M{"keys." + string(kind): value}
}

//BlacklistLookup groups all occurrences of (kind, value) into an
//occurrence count, the distinct provenance refs, and the earliest
//observation date. Returns nil when the corpus holds no occurrences.
//A minimum observation date that is not a valid timestamp is dropped
//rather than reported as an error; that is an upstream data quality
//issue, not a lookup failure.
func (r *repo) BlacklistLookup(kind data.IOCType, value interface{}) (*BlacklistResult, error) {
	session := r.res.DB.Session.Copy()
	defer session.Close()

	pipeline := []bson.M{
		{"$match": valueMatch(kind, value)},
		{"$group": bson.M{
			"_id":        nil,
			"count":      bson.M{"$sum": 1},
			"sources":    bson.M{"$addToSet": "$source_ref"},
			"first_seen": bson.M{"$min": "$meta.date"},
		}},
	}

	var doc struct {
		Count     int              `bson:"count"`
		Sources   []data.SourceRef `bson:"sources"`
		FirstSeen interface{}      `bson:"first_seen"`
	}
	err := session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.IOC.IOCTable).
		Pipe(pipeline).One(&doc)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &BlacklistResult{
		Count:     doc.Count,
		Sources:   doc.Sources,
		FirstSeen: asTime(doc.FirstSeen),
	}, nil
}

//SourceRefs returns the distinct provenance references on the
//occurrences matching (kind, value)
func (r *repo) SourceRefs(kind data.IOCType, value interface{}) ([]data.SourceRef, error) {
	session := r.res.DB.Session.Copy()
	defer session.Close()

	pipeline := []bson.M{
		{"$match": valueMatch(kind, value)},
		{"$group": bson.M{
			"_id":     nil,
			"sources": bson.M{"$addToSet": "$source_ref"},
		}},
	}

	var doc struct {
		Sources []data.SourceRef `bson:"sources"`
	}
	err := session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.IOC.IOCTable).
		Pipe(pipeline).One(&doc)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Sources, nil
}

//ListGrouped groups every occurrence by indicator value and returns
//one page of the summaries along with the pre-pagination total, both
//computed in a single faceted query
func (r *repo) ListGrouped(spec query.Spec) (*query.Page, error) {
	filterClauses, err := spec.FilterClauses(groupedFilterFields)
	if err != nil {
		return nil, err
	}

	session := r.res.DB.Session.Copy()
	defer session.Close()

	// an occurrence may carry several indicator kinds and a per kind
	// value may itself be a list, so the kind-qualified value map is
	// flattened before grouping
	pipeline := []bson.M{
		{"$project": bson.M{
			"kv":          bson.M{"$objectToArray": "$keys"},
			"source_ref":  1,
			"meta":        1,
			"source_meta": 1,
		}},
		{"$unwind": "$kv"},
		{"$unwind": "$kv.v"},
		{"$group": bson.M{
			"_id":          bson.M{"value": "$kv.v", "type": "$kv.k"},
			"count":        bson.M{"$sum": 1},
			"sources":      bson.M{"$addToSet": "$source_ref"},
			"first_seen":   bson.M{"$min": "$meta.date"},
			"last_seen":    bson.M{"$max": "$meta.date"},
			"threat_types": bson.M{"$addToSet": "$source_meta.threat_type"},
		}},
		{"$project": bson.M{
			"_id":          0,
			"value":        "$_id.value",
			"type":         "$_id.type",
			"count":        1,
			"sources":      1,
			"source_count": bson.M{"$size": bson.M{"$ifNull": []interface{}{"$sources", []interface{}{}}}},
			"first_seen":   1,
			"last_seen":    1,
			"threat_types": bson.M{"$filter": bson.M{
				"input": "$threat_types",
				"as":    "tag",
				"cond":  bson.M{"$ne": []interface{}{"$$tag", nil}},
			}},
		}},
	}

	if spec.Search != "" {
		pipeline = append(pipeline, bson.M{"$match": bson.M{
			"value": bson.RegEx{Pattern: regexp.QuoteMeta(spec.Search), Options: "i"},
		}})
	}

	for _, clause := range filterClauses {
		pipeline = append(pipeline, bson.M{"$match": clause})
	}

	pipeline = append(pipeline, windowClauses("first_seen", spec, r.loc())...)
	pipeline = append(pipeline,
		bson.M{"$sort": spec.SortDoc("first_seen", "value")},
		facetStage(spec, nil),
	)

	var result struct {
		Data   []groupedDoc `bson:"data"`
		Totals []totalDoc   `bson:"totals"`
	}
	err = session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.IOC.IOCTable).
		Pipe(pipeline).AllowDiskUse().One(&result)
	if err != nil {
		return nil, err
	}

	grouped := make([]GroupedIOC, 0, len(result.Data))
	for _, doc := range result.Data {
		grouped = append(grouped, doc.summary())
	}
	return query.NewPage(spec, total(result.Totals), len(grouped), grouped), nil
}

//ListRaw returns one page of the raw occurrences carrying a
//resolvable provenance reference. Source specific metadata is not
//part of the listing output.
func (r *repo) ListRaw(kind data.IOCType, spec query.Spec) (*query.Page, error) {
	filterClauses, err := spec.FilterClauses(rawFilterFields)
	if err != nil {
		return nil, err
	}

	session := r.res.DB.Session.Copy()
	defer session.Close()

	matches := []bson.M{
		{"source_ref.key": bson.M{"$exists": true, "$ne": ""}},
	}
	if kind != "" {
		matches = append(matches, bson.M{"ioc_types": string(kind)})
	}
	matches = append(matches, filterClauses...)

	var pipeline []bson.M
	for _, clause := range matches {
		pipeline = append(pipeline, bson.M{"$match": clause})
	}
	pipeline = append(pipeline, windowClauses("meta.date", spec, r.loc())...)
	pipeline = append(pipeline,
		bson.M{"$sort": spec.SortDoc("created_at", "id")},
		facetStage(spec, bson.M{"$project": bson.M{"_id": 0, "source_meta": 0}}),
	)

	var result struct {
		Data   []bson.M   `bson:"data"`
		Totals []totalDoc `bson:"totals"`
	}
	err = session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.IOC.IOCTable).
		Pipe(pipeline).AllowDiskUse().One(&result)
	if err != nil {
		return nil, err
	}

	// an empty page stays an empty list on the wire, never null
	if result.Data == nil {
		result.Data = []bson.M{}
	}
	return query.NewPage(spec, total(result.Totals), len(result.Data), result.Data), nil
}

func (r *repo) loc() *time.Location {
	return r.res.Config.R.Enrichment.TimezoneParsed
}

//windowClauses builds the inclusive calendar-day window match stages
//over the given date field
func windowClauses(field string, spec query.Spec, loc *time.Location) []bson.M {
	from, to := spec.Window(loc)
	var clauses []bson.M
	if from != nil {
		clauses = append(clauses, bson.M{"$match": bson.M{field: bson.M{"$gte": *from}}})
	}
	if to != nil {
		clauses = append(clauses, bson.M{"$match": bson.M{field: bson.M{"$lte": *to}}})
	}
	return clauses
}

//facetStage pages the sorted results and counts the full result set
//in the same logical query. extra, when non-nil, reshapes the page
//data after pagination.
func facetStage(spec query.Spec, extra bson.M) bson.M {
	pageStages := []bson.M{
		{"$skip": spec.Skip()},
		{"$limit": util.Max(1, spec.PerPage)},
	}
	if extra != nil {
		pageStages = append(pageStages, extra)
	}
	return bson.M{"$facet": bson.M{
		"data":   pageStages,
		"totals": []bson.M{{"$count": "total"}},
	}}
}

type totalDoc struct {
	Total int `bson:"total"`
}

func total(totals []totalDoc) int {
	if len(totals) == 0 {
		return 0
	}
	return totals[0].Total
}

//groupedDoc is the wire form of a grouped summary. The observation
//date bounds decode as loose values since upstream feeds have been
//seen storing non-timestamp dates.
type groupedDoc struct {
	Value       interface{}      `bson:"value"`
	Type        data.IOCType     `bson:"type"`
	Count       int              `bson:"count"`
	Sources     []data.SourceRef `bson:"sources"`
	SourceCount int              `bson:"source_count"`
	FirstSeen   interface{}      `bson:"first_seen"`
	LastSeen    interface{}      `bson:"last_seen"`
	ThreatTypes []string         `bson:"threat_types"`
}

func (d groupedDoc) summary() GroupedIOC {
	return GroupedIOC{
		Value:       d.Value,
		Type:        d.Type,
		Count:       d.Count,
		Sources:     d.Sources,
		SourceCount: d.SourceCount,
		FirstSeen:   asTime(d.FirstSeen),
		LastSeen:    asTime(d.LastSeen),
		ThreatTypes: d.ThreatTypes,
	}
}

//asTime coerces a loosely typed observation date to a timestamp,
//failing closed to nil for anything that is not one
func asTime(v interface{}) *time.Time {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return nil
	}
	return &t
}

