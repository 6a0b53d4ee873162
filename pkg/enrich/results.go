package enrich

import (
	"time"

	"github.com/activeintel/iocdb/pkg/data"
)

//Result is the composite enrichment record for one indicator. Every
//field is always present so consumers can rely on a stable shape;
//lookups that yield nothing leave their fields at null/false/empty.
type Result struct {
	Type  data.IOCType `json:"type"`
	Value string       `json:"value"`

	Blacklisted            bool       `json:"blacklisted"`
	BlacklistSources       []string   `json:"blacklist_sources"`
	BlacklistDatePublished *time.Time `json:"blacklist_datepublished"`
	ThreatTypes            []string   `json:"threat_types"`

	Country   *string  `json:"country"`
	City      *string  `json:"city"`
	Region    *string  `json:"region"`
	Continent *string  `json:"continent"`
	Latitude  *float64 `json:"geo_latitude"`
	Longitude *float64 `json:"geo_longitude"`

	ASN              *string `json:"asn"`
	OrganizationName *string `json:"organization_name"`
	DomainName       *string `json:"domain_name"`
	EntityType       *string `json:"entity_type"`

	Tor     *bool `json:"tor"`
	Proxy   *bool `json:"proxy"`
	VPN     *bool `json:"vpn"`
	Hosting *bool `json:"hosting"`
	Relay   *bool `json:"relay"`
	Service *bool `json:"service"`

	IsVoip  bool    `json:"is_voip"`
	VoipApp *string `json:"voip_app"`
}

func newResult(kind data.IOCType, value string) *Result {
	return &Result{
		Type:             kind,
		Value:            value,
		BlacklistSources: []string{},
		ThreatTypes:      []string{},
	}
}
