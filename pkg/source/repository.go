package source

import (
	"time"

	"github.com/activeintel/iocdb/pkg/data"
)

//Repository stores provenance records keyed by (type, key)
type Repository interface {
	CreateIndexes() error

	//GetOrCreate returns the existing record for the source's
	//(type, key) pair, inserting it first when none exists. Existing
	//records are returned unchanged. Idempotent under concurrent
	//calls with the same key; the store's unique index is the
	//concurrency boundary.
	GetOrCreate(src Source) (*Source, error)

	//Lookup returns the record for (type, key), or nil when absent
	Lookup(sourceType data.SourceType, key string) (*Source, error)

	//List returns every registered source in (type, key) order
	List() ([]Source, error)
}

//Source is a provenance record: the feed, intelligence platform, or
//code hosting bucket an occurrence came from. (Type, Key) is unique.
type Source struct {
	ID            string          `bson:"id" json:"id"`
	Type          data.SourceType `bson:"type" json:"type"`
	Key           string          `bson:"key" json:"key"`
	URL           string          `bson:"url,omitempty" json:"url,omitempty"`
	UserNamespace string          `bson:"username_space,omitempty" json:"username_space,omitempty"`
	BucketName    string          `bson:"bucketname,omitempty" json:"bucketname,omitempty"`
	ThreatType    *string         `bson:"threat_type,omitempty" json:"threat_type"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
}

//Ref returns the occurrence-side reference for the source
func (s Source) Ref() data.SourceRef {
	return data.SourceRef{Key: s.Key, Type: s.Type}
}
