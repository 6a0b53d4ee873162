package ranges

import (
	"errors"
	"testing"

	"github.com/activeintel/iocdb/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestRangeBounds(t *testing.T) {
	network, err := rangeBounds("10.0.0.0/24")
	assert.Nil(t, err)
	assert.Equal(t, "10.0.0.0/24", network.CIDR)
	assert.Equal(t, "10.0.0.0", network.NetworkAddr)
	assert.Equal(t, "10.0.0.255", network.BroadcastAddr)
	assert.Equal(t, "255.255.255.0", network.Netmask)
	assert.Equal(t, "0.0.0.255", network.HostMask)
	assert.Equal(t, "167772160", network.OrdinalStart)
	assert.Equal(t, "167772415", network.OrdinalEnd)
}

func TestRangeBoundsHostBitsZeroed(t *testing.T) {
	// host bits in the input are masked off
	network, err := rangeBounds("192.168.1.77/16")
	assert.Nil(t, err)
	assert.Equal(t, "192.168.0.0", network.NetworkAddr)
	assert.Equal(t, "192.168.255.255", network.BroadcastAddr)
}

func TestRangeBoundsSingleHost(t *testing.T) {
	network, err := rangeBounds("1.2.3.4/32")
	assert.Nil(t, err)
	assert.Equal(t, network.OrdinalStart, network.OrdinalEnd)
	assert.Equal(t, "16909060", network.OrdinalStart)
}

func TestRangeBoundsInvalid(t *testing.T) {
	testCases := []struct {
		cidr string
		msg  string
	}{
		{"not-a-cidr", "malformed input"},
		{"10.0.0.0", "bare address without prefix"},
		{"10.0.0.0/33", "prefix out of range"},
		{"fc00::/7", "IPv6 block unsupported"},
	}

	for _, testCase := range testCases {
		_, err := rangeBounds(testCase.cidr)
		assert.NotNil(t, err, testCase.msg)
		assert.True(t, errors.Is(err, data.ErrInvalidRange), testCase.msg)
	}
}

func TestHasVoipPort(t *testing.T) {
	org := Organization{Name: "ExampleOrg", VoipPorts: []int{5060, 5061}}
	assert.True(t, org.HasVoipPort(5060))
	assert.False(t, org.HasVoipPort(8080))
	assert.False(t, Organization{}.HasVoipPort(5060))
}

func TestFlagActive(t *testing.T) {
	set := "tor-exit"
	empty := ""
	assert.True(t, FlagActive(&set))
	assert.False(t, FlagActive(&empty))
	assert.False(t, FlagActive(nil))
}
