package source

import (
	"time"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/resources"
	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"
	"github.com/google/uuid"
)

type repo struct {
	res *resources.Resources
}

//NewMongoRepository create new repository
func NewMongoRepository(res *resources.Resources) Repository {
	return &repo{
		res: res,
	}
}

//CreateIndexes sets up the unique (type, key) index which makes
//GetOrCreate safe under concurrent callers
func (r *repo) CreateIndexes() error {
	session := r.res.DB.Session.Copy()
	defer session.Close()

	coll := session.DB(r.res.DB.GetSelectedDB()).C(r.res.Config.T.IOC.SourceTable)

	indexes := []mgo.Index{
		{Key: []string{"type", "key"}, Unique: true},
	}

	for _, index := range indexes {
		err := coll.EnsureIndex(index)
		if err != nil {
			return err
		}
	}
	return nil
}

//Lookup returns the source record for (type, key), or nil when no
//record exists
func (r *repo) Lookup(sourceType data.SourceType, key string) (*Source, error) {
	session := r.res.DB.Session.Copy()
	defer session.Close()

	var src Source
	err := session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.IOC.SourceTable).
		Find(bson.M{"type": sourceType, "key": key}).One(&src)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

//List returns every registered source in (type, key) order
func (r *repo) List() ([]Source, error) {
	session := r.res.DB.Session.Copy()
	defer session.Close()

	var sources []Source
	err := session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.IOC.SourceTable).
		Find(nil).Sort("type", "key").All(&sources)
	if err != nil {
		return nil, err
	}
	return sources, nil
}

//GetOrCreate returns the record stored under the source's (type, key)
//pair, inserting it with a fresh id and creation timestamp when none
//exists. An insert lost to a concurrent caller is absorbed by
//re-reading the winner's record.
func (r *repo) GetOrCreate(src Source) (*Source, error) {
	existing, err := r.Lookup(src.Type, src.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	src.ID = uuid.New().String()
	src.CreatedAt = time.Now().UTC()

	session := r.res.DB.Session.Copy()
	defer session.Close()

	err = session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.IOC.SourceTable).
		Insert(&src)
	if mgo.IsDup(err) {
		return r.Lookup(src.Type, src.Key)
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}
