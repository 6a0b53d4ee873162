// +build integration

package ranges

import (
	"testing"

	"github.com/activeintel/iocdb/resources"
	"github.com/stretchr/testify/require"
)

func TestFindRangesContainmentBounds(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	repo := NewMongoRepository(res)

	ssn := res.DB.Session.Copy()
	ssn.DB(res.DB.GetSelectedDB()).C(res.Config.T.Reference.NetworkTable).DropCollection()
	ssn.Close()

	require.Nil(t, repo.CreateIndexes())

	_, err := repo.Register("203.0.113.0/24", "org-1", "ExampleOrg")
	require.Nil(t, err)

	// the network and broadcast addresses are both inside the range
	for _, addr := range []string{"203.0.113.0", "203.0.113.17", "203.0.113.255"} {
		networks, err := repo.FindRanges(addr)
		require.Nil(t, err, addr)
		require.Len(t, networks, 1, addr)
		require.Equal(t, "203.0.113.0/24", networks[0].CIDR, addr)
	}

	// one below the network address and one above the broadcast
	// address are both outside
	for _, addr := range []string{"203.0.112.255", "203.0.114.0"} {
		networks, err := repo.FindRanges(addr)
		require.Nil(t, err, addr)
		require.Empty(t, networks, addr)
	}
}

func TestFindRangesComparesNumerically(t *testing.T) {
	res := resources.InitIntegrationTestingResources(t)
	repo := NewMongoRepository(res)

	ssn := res.DB.Session.Copy()
	ssn.DB(res.DB.GetSelectedDB()).C(res.Config.T.Reference.NetworkTable).DropCollection()
	ssn.Close()

	require.Nil(t, repo.CreateIndexes())

	// bounds 150994944..167772159 as stored strings
	_, err := repo.Register("9.0.0.0/8", "org-9", "NineNet")
	require.Nil(t, err)

	// 96.0.0.0 has ordinal 1610612736, which sorts between the two
	// bound strings lexically but lies far outside the range
	networks, err := repo.FindRanges("96.0.0.0")
	require.Nil(t, err)
	require.Empty(t, networks)

	networks, err = repo.FindRanges("9.255.255.255")
	require.Nil(t, err)
	require.Len(t, networks, 1)
}
