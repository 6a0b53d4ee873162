package geo

import (
	"github.com/activeintel/iocdb/resources"
	"github.com/activeintel/iocdb/util"
	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"
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

//Locate looks up the geo record for the block containing the given
//address. The low order two octets are zeroed before the lookup; geo
//data is kept at block granularity, not host granularity. Returns nil
//when no record covers the block or the address is not IPv4.
func (r *repo) Locate(address string) (*Location, error) {
	block := util.IPv4Block(address)
	if block == "" {
		return nil, nil
	}

	session := r.res.DB.Session.Copy()
	defer session.Close()

	var location Location
	err := session.DB(r.res.DB.GetSelectedDB()).
		C(r.res.Config.T.Reference.LocationTable).
		Find(bson.M{"ipv4": block}).One(&location)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}
