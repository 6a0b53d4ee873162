package ioc

import (
	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/query"
	"github.com/activeintel/iocdb/pkg/source"
)

//Service composes the occurrence corpus with the source registry so
//provenance references can be resolved to full source records
type Service struct {
	iocs    Repository
	sources source.Repository
}

//NewService binds the aggregation queries to the source registry
func NewService(iocs Repository, sources source.Repository) *Service {
	return &Service{
		iocs:    iocs,
		sources: sources,
	}
}

//BlacklistLookup summarizes the occurrences of (kind, value);
//nil when the corpus holds none
func (s *Service) BlacklistLookup(kind data.IOCType, value interface{}) (*BlacklistResult, error) {
	return s.iocs.BlacklistLookup(kind, value)
}

//SourcesFor resolves the distinct provenance references on the
//occurrences of (kind, value) to full source records. References
//without a registered record are dropped, not reported as errors.
func (s *Service) SourcesFor(kind data.IOCType, value interface{}) ([]source.Source, error) {
	refs, err := s.iocs.SourceRefs(kind, value)
	if err != nil {
		return nil, err
	}

	var resolved []source.Source
	for _, ref := range refs {
		src, err := s.sources.Lookup(ref.Type, ref.Key)
		if err != nil {
			return nil, err
		}
		if src == nil {
			continue
		}
		resolved = append(resolved, *src)
	}
	return resolved, nil
}

//ListGrouped returns one page of grouped indicator summaries
func (s *Service) ListGrouped(spec query.Spec) (*query.Page, error) {
	return s.iocs.ListGrouped(spec)
}

//ListRaw returns one page of raw occurrences
func (s *Service) ListRaw(kind data.IOCType, spec query.Spec) (*query.Page, error) {
	return s.iocs.ListRaw(kind, spec)
}
