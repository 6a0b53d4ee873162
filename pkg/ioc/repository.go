package ioc

import (
	"time"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/query"
)

//Repository runs aggregation queries over the raw occurrence corpus
type Repository interface {
	CreateIndexes() error

	//BlacklistLookup groups every occurrence carrying the given value
	//for the given indicator kind. Returns nil when there are none.
	BlacklistLookup(kind data.IOCType, value interface{}) (*BlacklistResult, error)

	//SourceRefs returns the distinct provenance references on the
	//occurrences matching (kind, value)
	SourceRefs(kind data.IOCType, value interface{}) ([]data.SourceRef, error)

	//ListGrouped groups all occurrences by indicator value and
	//returns one page of the filtered, sorted summaries
	ListGrouped(spec query.Spec) (*query.Page, error)

	//ListRaw returns one page of raw occurrences carrying a
	//resolvable provenance reference, optionally restricted to one
	//indicator kind
	ListRaw(kind data.IOCType, spec query.Spec) (*query.Page, error)
}

//BlacklistResult summarizes the occurrences which blacklist a single
//indicator value
type BlacklistResult struct {
	Count   int
	Sources []data.SourceRef

	//FirstSeen is the earliest observation date across the matching
	//occurrences; nil when the stored minimum is not a valid timestamp
	FirstSeen *time.Time
}

//GroupedIOC collapses every occurrence of one indicator value into a
//single summary record. Computed on demand, never persisted.
type GroupedIOC struct {
	Value       interface{}      `bson:"value" json:"value"`
	Type        data.IOCType     `bson:"type" json:"type"`
	Count       int              `bson:"count" json:"count"`
	Sources     []data.SourceRef `bson:"sources" json:"sources"`
	SourceCount int              `bson:"source_count" json:"source_count"`
	FirstSeen   *time.Time       `bson:"first_seen" json:"first_seen"`
	LastSeen    *time.Time       `bson:"last_seen" json:"last_seen"`
	ThreatTypes []string         `bson:"threat_types" json:"threat_types"`
}
