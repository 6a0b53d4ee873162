package ranges

import "time"

//Repository stores registered network ranges and answers
//range-containment queries over them
type Repository interface {
	CreateIndexes() error
	Register(cidr string, orgID string, orgName string) (*Network, error)
	FindRanges(address string) ([]Network, error)
	FindOrganizations(address string) ([]Organization, error)
	FindVoipOrganization(address string, port int) (*Organization, error)
}

//OrgRef points a network range at its owning organization
type OrgRef struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

//Network is a registered network range. The ordinal bounds are the
//integer encodings of the first and last address in the block, stored
//as decimal strings; containment queries compare them numerically.
type Network struct {
	ID            string    `bson:"id" json:"id"`
	CIDR          string    `bson:"host_addr" json:"host_addr"`
	NetworkAddr   string    `bson:"network_addr" json:"network_addr"`
	BroadcastAddr string    `bson:"broadcast_addr" json:"broadcast_addr"`
	Netmask       string    `bson:"netmask" json:"netmask"`
	HostMask      string    `bson:"host_mask" json:"host_mask"`
	OrdinalStart  string    `bson:"network_st" json:"network_st"`
	OrdinalEnd    string    `bson:"network_en" json:"network_en"`
	BelongsTo     *OrgRef   `bson:"belongs_to" json:"belongs_to"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

//Privacy holds an organization's anonymity service markers. A marker
//counts as set when it is present and non-empty.
type Privacy struct {
	Tor     *string `bson:"tor" json:"tor"`
	Proxy   *string `bson:"proxy" json:"proxy"`
	VPN     *string `bson:"vpn" json:"vpn"`
	Hosting *string `bson:"hosting" json:"hosting"`
	Relay   *string `bson:"relay" json:"relay"`
	Service *string `bson:"service" json:"service"`
}

//FlagActive reports whether an anonymity marker is set and non-empty
func FlagActive(marker *string) bool {
	return marker != nil && *marker != ""
}

//Organization owns one or more registered ranges and carries the
//network attribution data used during enrichment. The voip port set
//is curated externally.
type Organization struct {
	ID         string  `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	ASN        *string `bson:"asn" json:"asn"`
	Domain     *string `bson:"domain" json:"domain"`
	EntityType *string `bson:"type" json:"type"`
	Privacy    Privacy `bson:"privacy" json:"privacy"`
	VoipPorts  []int   `bson:"voip_ports" json:"voip_ports"`
}

//HasVoipPort checks whether port is in the organization's voip port set
func (o Organization) HasVoipPort(port int) bool {
	for _, candidate := range o.VoipPorts {
		if candidate == port {
			return true
		}
	}
	return false
}
