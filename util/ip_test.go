package util

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIP(t *testing.T) {
	assert.True(t, IsIP("1.1.1.1"))
	assert.True(t, IsIP("2001:4860:4860::8888"))
	assert.False(t, IsIP("a.b.c.d"))
}

func TestIsIPv4(t *testing.T) {
	assert.True(t, IsIPv4("10.0.0.5"))
	assert.False(t, IsIPv4("2001:4860:4860::8888"))
	assert.False(t, IsIPv4("not-an-ip"))
}

func TestIPv4ToOrdinal(t *testing.T) {
	testCases := []struct {
		ip  string
		out int64
		msg string
	}{
		{"0.0.0.0", 0, "zero address"},
		{"0.0.0.1", 1, "low address"},
		{"1.2.3.4", 16909060, "mid address"},
		{"255.255.255.255", 4294967295, "broadcast address"},
	}

	for _, testCase := range testCases {
		output := IPv4ToOrdinal(net.ParseIP(testCase.ip))
		assert.Equal(t, testCase.out, output, testCase.msg)
	}

	assert.Equal(t, int64(-1), IPv4ToOrdinal(net.ParseIP("2001:4860:4860::8888")), "ipv6 rejected")
}

func TestOrdinalToIPv4(t *testing.T) {
	assert.Equal(t, "1.2.3.4", OrdinalToIPv4(16909060).String())
	assert.Equal(t, "255.255.255.255", OrdinalToIPv4(4294967295).String())
}

func TestIPv4Block(t *testing.T) {
	assert.Equal(t, "8.8.0.0", IPv4Block("8.8.8.8"))
	assert.Equal(t, "10.1.0.0", IPv4Block("10.1.2.3"))
	assert.Equal(t, "", IPv4Block("fc00:1234::"))
	assert.Equal(t, "", IPv4Block("garbage"))
}

func TestSplitAddrPort(t *testing.T) {
	testCases := []struct {
		in   string
		addr string
		port int
		msg  string
	}{
		{"10.0.0.5:5060", "10.0.0.5", 5060, "address with port"},
		{"10.0.0.5", "10.0.0.5", 0, "bare address"},
		{"10.0.0.5:0", "10.0.0.5:0", 0, "port zero rejected"},
		{"10.0.0.5:99999", "10.0.0.5:99999", 0, "port out of range"},
		{"10.0.0.5:sip", "10.0.0.5:sip", 0, "non numeric port"},
		{"not-an-ip:5060", "not-an-ip:5060", 0, "host is not an address"},
	}

	for _, testCase := range testCases {
		addr, port := SplitAddrPort(testCase.in)
		assert.Equal(t, testCase.addr, addr, testCase.msg)
		assert.Equal(t, testCase.port, port, testCase.msg)
	}
}
