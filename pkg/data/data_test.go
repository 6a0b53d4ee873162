package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	set := StringSet{}
	set.Insert("beta")
	set.Insert("alpha")
	set.Insert("beta")

	assert.True(t, set.Contains("alpha"))
	assert.False(t, set.Contains("gamma"))
	assert.Equal(t, []string{"alpha", "beta"}, set.Items())
}

func TestValidIOCType(t *testing.T) {
	assert.True(t, ValidIOCType(IPv4Type))
	assert.True(t, ValidIOCType(CVEType))
	assert.False(t, ValidIOCType(IOCType("URL")))
	assert.False(t, ValidIOCType(IOCType("ipv4")))
}

func TestSourceRefEqual(t *testing.T) {
	ref := SourceRef{Key: "abuse.ch", Type: FeedSource}
	assert.True(t, ref.Equal(SourceRef{Key: "abuse.ch", Type: FeedSource}))
	assert.False(t, ref.Equal(SourceRef{Key: "abuse.ch", Type: MISPSource}))
	assert.False(t, ref.Equal(SourceRef{Key: "other.example", Type: FeedSource}))
}

func TestLookupErrorUnwrap(t *testing.T) {
	cause := errors.New("i/o timeout")
	err := &LookupError{Stage: "geo", Err: cause}

	assert.Equal(t, "geo lookup failed: i/o timeout", err.Error())
	assert.True(t, errors.Is(err, cause))
}
