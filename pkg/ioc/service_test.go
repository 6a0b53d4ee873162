package ioc

import (
	"errors"
	"testing"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/activeintel/iocdb/pkg/query"
	"github.com/activeintel/iocdb/pkg/source"
	"github.com/stretchr/testify/assert"
)

type stubRepo struct {
	refs []data.SourceRef
	err  error
}

func (s *stubRepo) CreateIndexes() error { return nil }

func (s *stubRepo) BlacklistLookup(kind data.IOCType, value interface{}) (*BlacklistResult, error) {
	return nil, s.err
}

func (s *stubRepo) SourceRefs(kind data.IOCType, value interface{}) ([]data.SourceRef, error) {
	return s.refs, s.err
}

func (s *stubRepo) ListGrouped(spec query.Spec) (*query.Page, error) {
	return nil, nil
}

func (s *stubRepo) ListRaw(kind data.IOCType, spec query.Spec) (*query.Page, error) {
	return nil, nil
}

type stubSources struct {
	records map[string]source.Source
	err     error
}

func (s *stubSources) CreateIndexes() error { return nil }

func (s *stubSources) GetOrCreate(src source.Source) (*source.Source, error) {
	return &src, nil
}

func (s *stubSources) List() ([]source.Source, error) { return nil, nil }

func (s *stubSources) Lookup(sourceType data.SourceType, key string) (*source.Source, error) {
	if s.err != nil {
		return nil, s.err
	}
	src, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return &src, nil
}

func TestSourcesForDropsUnresolvableRefs(t *testing.T) {
	repo := &stubRepo{refs: []data.SourceRef{
		{Key: "feedsite.example", Type: data.FeedSource},
		{Key: "stale.example", Type: data.FeedSource},
	}}
	registry := &stubSources{records: map[string]source.Source{
		"feedsite.example": {Key: "feedsite.example", Type: data.FeedSource},
	}}

	resolved, err := NewService(repo, registry).SourcesFor(data.DomainType, "evil.example")
	assert.Nil(t, err)
	assert.Len(t, resolved, 1)
	assert.Equal(t, "feedsite.example", resolved[0].Key)
}

func TestSourcesForNoOccurrences(t *testing.T) {
	service := NewService(&stubRepo{}, &stubSources{})

	resolved, err := service.SourcesFor(data.DomainType, "unknown.example")
	assert.Nil(t, err)
	assert.Empty(t, resolved)
}

func TestSourcesForSurfacesRegistryError(t *testing.T) {
	repo := &stubRepo{refs: []data.SourceRef{
		{Key: "feedsite.example", Type: data.FeedSource},
	}}
	registry := &stubSources{err: errors.New("socket closed")}

	resolved, err := NewService(repo, registry).SourcesFor(data.DomainType, "evil.example")
	assert.Nil(t, resolved)
	assert.NotNil(t, err)
}
