package enrich

import (
	"sync"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/geo"
	"github.com/activeintel/iocdb/pkg/ioc"
	"github.com/activeintel/iocdb/pkg/ranges"
	"github.com/activeintel/iocdb/pkg/source"
	"github.com/activeintel/iocdb/util"
)

//Enricher composes the blacklist, provenance, geo, network ownership
//and voip lookups into one record per indicator. It holds no state of
//its own; every call is an independent read composition.
type Enricher struct {
	iocs   *ioc.Service
	geo    geo.Repository
	ranges ranges.Repository
}

//NewEnricher builds an Enricher over the given collaborators
func NewEnricher(iocs *ioc.Service, geoRepo geo.Repository, rangeRepo ranges.Repository) *Enricher {
	return &Enricher{
		iocs:   iocs,
		geo:    geoRepo,
		ranges: rangeRepo,
	}
}

//Enrich assembles the composite enrichment record for one indicator
//value. Sub-lookups which find nothing leave their fields at their
//defaults; only a backing store failure aborts the call, reported as
//a LookupError tagged with the failing sub-lookup.
func (e *Enricher) Enrich(kind data.IOCType, value string) (*Result, error) {
	result := newResult(kind, value)

	// an address indicator may carry a trailing :port; the bare
	// address drives every lookup and the port only voip matching
	address := value
	port := 0
	if kind == data.IPv4Type {
		address, port = util.SplitAddrPort(value)
	}

	var blacklist *ioc.BlacklistResult
	var sources []source.Source
	var location *geo.Location
	var orgs []ranges.Organization
	var voipOrg *ranges.Organization

	stages := map[string]func() error{
		"blacklist": func() (err error) {
			blacklist, err = e.iocs.BlacklistLookup(kind, address)
			return err
		},
		"sources": func() (err error) {
			sources, err = e.iocs.SourcesFor(kind, address)
			return err
		},
	}
	if kind == data.IPv4Type {
		stages["geo"] = func() (err error) {
			location, err = e.geo.Locate(address)
			return err
		}
		stages["asn"] = func() (err error) {
			orgs, err = e.ranges.FindOrganizations(address)
			return err
		}
		stages["voip"] = func() (err error) {
			voipOrg, err = e.ranges.FindVoipOrganization(address, port)
			return err
		}
	}

	// the sub-lookups are mutually independent; run them concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failure error
	for stage, lookup := range stages {
		wg.Add(1)
		go func(stage string, lookup func() error) {
			defer wg.Done()
			if err := lookup(); err != nil {
				mu.Lock()
				if failure == nil {
					failure = &data.LookupError{Stage: stage, Err: err}
				}
				mu.Unlock()
			}
		}(stage, lookup)
	}
	wg.Wait()
	if failure != nil {
		return nil, failure
	}

	applyBlacklist(result, blacklist, sources)
	if location != nil {
		applyLocation(result, location)
	}
	if len(orgs) > 0 {
		applyOrganization(result, orgs[0])
	}
	if voipOrg != nil {
		result.IsVoip = true
		result.VoipApp = &voipOrg.Name
	}

	return result, nil
}

//applyBlacklist merges the blacklist summary with the resolved source
//records: source keys from the summary first, then any resolved
//record not already present, plus the distinct threat type tags
func applyBlacklist(result *Result, blacklist *ioc.BlacklistResult, sources []source.Source) {
	keys := data.StringSet{}
	if blacklist != nil {
		result.Blacklisted = blacklist.Count > 0
		result.BlacklistDatePublished = blacklist.FirstSeen
		for _, ref := range blacklist.Sources {
			keys.Insert(ref.Key)
		}
	}

	threatTypes := data.StringSet{}
	for _, src := range sources {
		keys.Insert(src.Key)
		if src.ThreatType != nil && *src.ThreatType != "" {
			threatTypes.Insert(*src.ThreatType)
		}
	}

	result.BlacklistSources = keys.Items()
	result.ThreatTypes = threatTypes.Items()
}

func applyLocation(result *Result, location *geo.Location) {
	result.Country = location.Country.Name(geo.LangEnglish)
	result.City = location.City.Name(geo.LangEnglish)
	result.Continent = location.Continent.Name(geo.LangEnglish)
	result.Region = location.Region()
	result.Latitude = location.Coordinates.Latitude
	result.Longitude = location.Coordinates.Longitude
}

//applyOrganization fills the network ownership fields from the first
//matched organization in name order
func applyOrganization(result *Result, org ranges.Organization) {
	result.ASN = org.ASN
	result.OrganizationName = &org.Name
	result.DomainName = org.Domain
	result.EntityType = org.EntityType

	result.Tor = flag(org.Privacy.Tor)
	result.Proxy = flag(org.Privacy.Proxy)
	result.VPN = flag(org.Privacy.VPN)
	result.Hosting = flag(org.Privacy.Hosting)
	result.Relay = flag(org.Privacy.Relay)
	result.Service = flag(org.Privacy.Service)
}

func flag(marker *string) *bool {
	active := ranges.FlagActive(marker)
	return &active
}
