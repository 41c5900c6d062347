// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/mode"
)

// Node - type for RPC calls
type Node struct {
	namespace
	start   time.Time
	version string
	count   *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string           `json:"chain"`
	Mode      string           `json:"mode"`
	RPCs      uint64           `json:"rpcs"`
	Listings  uint64           `json:"listings,string"`
	Custodian *account.Account `json:"custodian"`
	Version   string           `json:"version"`
	Uptime    string           `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// and which chain their keys must belong to
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := rateLimit(node.limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.count.Uint64()
	reply.Listings = node.market.ListingCount()
	reply.Custodian = node.market.Custodian()
	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	return nil
}
