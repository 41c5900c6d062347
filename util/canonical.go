// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/marketd/fault"
)

// Connection - a validated IP address and port
type Connection struct {
	ip   net.IP
	port uint16
}

// NewConnection - parse "IP:port", "[IPv6]:port" or "*:port"
//
// "*" binds all IPv4 and IPv6 addresses
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.ErrInvalidIPAddress
	}
	if "*" == host {
		host = "::"
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	if nil == ip {
		return nil, fault.ErrInvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return nil, fault.ErrInvalidPortNumber
	}

	c := &Connection{
		ip:   ip,
		port: uint16(numericPort),
	}
	return c, nil
}

// NewConnections - convert a list of "IP:port" strings
func NewConnections(hostPort []string) ([]*Connection, error) {
	if 0 == len(hostPort) {
		return nil, fault.ErrMissingParameters
	}
	c := make([]*Connection, 0, len(hostPort))
	for _, hp := range hostPort {
		conn, err := NewConnection(hp)
		if nil != err {
			return nil, err
		}
		c = append(c, conn)
	}
	return c, nil
}

// CanonicalIPandPort - the address with a transport prefix
//
// examples:
//   IPv4:  tcp://127.0.0.1:1234
//   IPv6:  tcp://[::1]:1234
//
// the second value is true for IPv6
func (c *Connection) CanonicalIPandPort(prefix string) (string, bool) {
	port := strconv.Itoa(int(c.port))
	if nil != c.ip.To4() {
		return prefix + c.ip.String() + ":" + port, false
	}
	return prefix + "[" + c.ip.String() + "]:" + port, true
}
