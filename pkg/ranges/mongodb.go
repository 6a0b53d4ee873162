package ranges

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/resources"
	"github.com/activeintel/iocdb/util"
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

//CreateIndexes sets up the indexes needed for range containment queries
func (r *repo) CreateIndexes() error {
	session := r.res.DB.Session.Copy()
	defer session.Close()

	coll := session.DB(r.res.DB.GetSelectedDB()).C(r.res.Config.T.Reference.NetworkTable)

	indexes := []mgo.Index{
		{Key: []string{"network_st", "network_en"}},
		{Key: []string{"belongs_to.id"}},
	}

	for _, index := range indexes {
		err := coll.EnsureIndex(index)
		if err != nil {
			return err
		}
	}
	return nil
}

//rangeBounds parses an IPv4 CIDR block and derives the stored range
//document fields. Non-IPv4 input is rejected: the ordinal encoding is
//the 32 bit address value.
func rangeBounds(cidr string) (*Network, error) {
	_, block, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", data.ErrInvalidRange, cidr, err.Error())
	}
	networkAddr := block.IP.To4()
	if networkAddr == nil {
		return nil, fmt.Errorf("%w: %s: not an IPv4 block", data.ErrInvalidRange, cidr)
	}

	mask := net.IP(block.Mask).To4()
	hostMask := make(net.IP, 4)
	for i := 0; i < 4; i++ {
		hostMask[i] = ^mask[i]
	}

	start := util.IPv4ToOrdinal(networkAddr)
	end := start + util.IPv4ToOrdinal(hostMask)

	return &Network{
		CIDR:          block.String(),
		NetworkAddr:   networkAddr.String(),
		BroadcastAddr: util.OrdinalToIPv4(end).String(),
		Netmask:       mask.String(),
		HostMask:      hostMask.String(),
		OrdinalStart:  strconv.FormatInt(start, 10),
		OrdinalEnd:    strconv.FormatInt(end, 10),
	}, nil
}

//Register computes the ordinal bounds for the given CIDR block and
//stores a network range owned by the given organization
func (r *repo) Register(cidr string, orgID string, orgName string) (*Network, error) {
	network, err := rangeBounds(cidr)
	if err != nil {
		return nil, err
	}

	network.ID = uuid.New().String()
	network.BelongsTo = &OrgRef{ID: orgID, Name: orgName}
	network.CreatedAt = time.Now().UTC()

	session := r.res.DB.Session.Copy()
	defer session.Close()

	err = session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.Reference.NetworkTable).
		Insert(network)
	if err != nil {
		return nil, err
	}
	return network, nil
}

//FindRanges returns every registered range whose ordinal bounds
//contain the given address. Overlapping ranges all match; the index
//does not assume disjoint ranges. The stored bounds are decimal
//strings, so the comparison coerces them to integers server side
//rather than comparing lexically.
func (r *repo) FindRanges(address string) ([]Network, error) {
	ordinal := util.IPv4ToOrdinal(net.ParseIP(address))
	if ordinal < 0 {
		return nil, nil
	}

	session := r.res.DB.Session.Copy()
	defer session.Close()

	var networks []Network
	err := session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.Reference.NetworkTable).
		Find(bson.M{
			"$expr": bson.M{
				"$and": []bson.M{
					{"$lte": []interface{}{bson.M{"$toLong": "$network_st"}, ordinal}},
					{"$gte": []interface{}{bson.M{"$toLong": "$network_en"}, ordinal}},
				},
			},
		}).All(&networks)
	if err != nil {
		return nil, err
	}
	return networks, nil
}

//FindOrganizations resolves the ranges containing the given address to
//their distinct owning organizations, ordered by organization name
func (r *repo) FindOrganizations(address string) ([]Organization, error) {
	networks, err := r.FindRanges(address)
	if err != nil {
		return nil, err
	}

	orgIDs := data.StringSet{}
	for _, network := range networks {
		if network.BelongsTo != nil {
			orgIDs.Insert(network.BelongsTo.ID)
		}
	}
	if len(orgIDs) == 0 {
		return nil, nil
	}

	session := r.res.DB.Session.Copy()
	defer session.Close()

	var orgs []Organization
	err = session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.Reference.OrganizationTable).
		Find(bson.M{"id": bson.M{"$in": orgIDs.Items()}}).
		Sort("name").All(&orgs)
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

//FindVoipOrganization returns the first organization, in name order,
//owning a range containing the address whose voip port set contains
//the given port. Returns nil when no port is supplied or none match.
func (r *repo) FindVoipOrganization(address string, port int) (*Organization, error) {
	if port <= 0 {
		return nil, nil
	}

	orgs, err := r.FindOrganizations(address)
	if err != nil {
		return nil, err
	}
	for i := range orgs {
		if orgs[i].HasVoipPort(port) {
			return &orgs[i], nil
		}
	}
	return nil, nil
}
