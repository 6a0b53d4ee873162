package util

import (
	"encoding/binary"
	"net"
	"strconv"
	"strings"
)

// IsIP returns true if string is a valid IP address
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

//IsIPv4 checks if an ip is ipv4
func IsIPv4(address string) bool {
	ip := net.ParseIP(address)
	return ip != nil && ip.To4() != nil
}

//IPv4ToOrdinal generates the ordinal (integer) representation
//of an IPv4 address. Returns -1 for non-IPv4 input.
func IPv4ToOrdinal(ip net.IP) int64 {
	ipv4 := ip.To4()
	if ipv4 == nil {
		return -1
	}
	return int64(binary.BigEndian.Uint32(ipv4))
}

//OrdinalToIPv4 converts the ordinal representation of an IPv4
//address back into net.IP form
func OrdinalToIPv4(ordinal int64) net.IP {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, uint32(ordinal))
	return ip
}

//IPv4Block zeroes out the low order two octets of an IPv4 address,
//producing the /16-aligned block key geo records are stored under.
//The empty string is returned for non-IPv4 input.
func IPv4Block(address string) string {
	ip := net.ParseIP(address)
	if ip == nil || ip.To4() == nil {
		return ""
	}
	ipv4 := ip.To4()
	return net.IPv4(ipv4[0], ipv4[1], 0, 0).String()
}

//SplitAddrPort splits an optional trailing :port suffix off of an
//IPv4 address. The bare address is returned with port 0 when no
//valid suffix is present.
func SplitAddrPort(value string) (string, int) {
	idx := strings.LastIndex(value, ":")
	if idx < 0 {
		return value, 0
	}
	port, err := strconv.Atoi(value[idx+1:])
	if err != nil || port <= 0 || port > 65535 || !IsIP(value[:idx]) {
		return value, 0
	}
	return value[:idx], port
}
