// +build integration

package source

import (
	"testing"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/resources"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	repo := NewMongoRepository(res)

	require.Nil(t, repo.CreateIndexes())

	src := Classify("https://feedsite.example/path/feed.txt", nil)
	created, err := repo.GetOrCreate(src)
	require.Nil(t, err)
	require.NotEmpty(t, created.ID)

	again, err := repo.GetOrCreate(src)
	require.Nil(t, err)
	require.Equal(t, created.ID, again.ID)
	require.Equal(t, created.CreatedAt.Unix(), again.CreatedAt.Unix())

	found, err := repo.Lookup(data.FeedSource, "feedsite.example")
	require.Nil(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	missing, err := repo.Lookup(data.FeedSource, "never-registered.example")
	require.Nil(t, err)
	require.Nil(t, missing)

	all, err := repo.List()
	require.Nil(t, err)
	require.NotEmpty(t, all)
}
