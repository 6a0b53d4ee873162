// +build integration

package ioc

import (
	"fmt"
	"testing"
	"time"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/query"
	"github.com/activeintel/iocdb/resources"
	"github.com/globalsign/mgo/bson"
	"github.com/stretchr/testify/require"
)

func seedOccurrences(t *testing.T, res *resources.Resources, docs []bson.M) {
	ssn := res.DB.Session.Copy()
	defer ssn.Close()

	coll := ssn.DB(res.DB.GetSelectedDB()).C(res.Config.T.IOC.IOCTable)
	coll.DropCollection()
	for _, doc := range docs {
		require.Nil(t, coll.Insert(doc))
	}
}

func occurrence(id string, value string, sourceKey string, date time.Time) bson.M {
	return bson.M{
		"id":          id,
		"source":      sourceKey,
		"source_ref":  bson.M{"key": sourceKey, "type": string(data.FeedSource)},
		"ioc_types":   []string{string(data.DomainType)},
		"keys":        bson.M{string(data.DomainType): value},
		"meta":        bson.M{"date": date},
		"source_meta": bson.M{"threat_type": "botnet"},
		"created_at":  date,
	}
}

func TestBlacklistLookupGroupsOccurrences(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	repo := NewMongoRepository(res)

	earliest := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	seedOccurrences(t, res, []bson.M{
		occurrence("occ-1", "evil.example", "feedsite.example", earliest.AddDate(0, 0, 5)),
		occurrence("occ-2", "evil.example", "feedsite.example", earliest),
		occurrence("occ-3", "evil.example", "otherfeed.example", earliest.AddDate(0, 1, 0)),
		occurrence("occ-4", "benign.example", "feedsite.example", earliest),
	})
	require.Nil(t, repo.CreateIndexes())

	result, err := repo.BlacklistLookup(data.DomainType, "evil.example")
	require.Nil(t, err)
	require.NotNil(t, result)
	require.Equal(t, 3, result.Count)
	require.Len(t, result.Sources, 2)
	require.NotNil(t, result.FirstSeen)
	require.Equal(t, earliest.Unix(), result.FirstSeen.Unix())

	// same value under a different indicator kind matches nothing
	miss, err := repo.BlacklistLookup(data.IPv4Type, "evil.example")
	require.Nil(t, err)
	require.Nil(t, miss)
}

func TestListGroupedPagesPartitionResults(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	repo := NewMongoRepository(res)

	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	var docs []bson.M
	var want []string
	for n := 1; n <= 5; n++ {
		value := fmt.Sprintf("domain-%d.example", n)
		want = append(want, value)
		docs = append(docs, occurrence(fmt.Sprintf("occ-%d", n), value,
			"feedsite.example", base.AddDate(0, 0, n)))
	}
	seedOccurrences(t, res, docs)

	// walking every page in order reproduces the full result set
	// exactly once
	var got []string
	spec := query.Spec{Page: 1, PerPage: 2, SortField: "value", SortDesc: false}
	page, err := repo.ListGrouped(spec)
	require.Nil(t, err)
	require.Equal(t, 5, page.TotalResults)
	require.Equal(t, 3, page.TotalPages)

	for pageNo := 1; pageNo <= page.TotalPages; pageNo++ {
		spec.Page = pageNo
		page, err = repo.ListGrouped(spec)
		require.Nil(t, err)

		grouped, ok := page.Data.([]GroupedIOC)
		require.True(t, ok)
		for _, g := range grouped {
			got = append(got, fmt.Sprint(g.Value))
		}
	}
	require.Equal(t, want, got)
}

func TestListRawEmptyPageKeepsListShape(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	repo := NewMongoRepository(res)

	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	seedOccurrences(t, res, []bson.M{
		occurrence("occ-1", "evil.example", "feedsite.example", base),
	})

	page, err := repo.ListRaw(data.DomainType, query.Spec{Page: 99, PerPage: 2})
	require.Nil(t, err)
	require.Equal(t, 1, page.TotalResults)

	docs, ok := page.Data.([]bson.M)
	require.True(t, ok)
	require.NotNil(t, docs)
	require.Empty(t, docs)
}
