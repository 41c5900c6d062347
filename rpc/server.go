// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/auth"
	"github.com/bitmark-inc/marketd/counter"
)

// requests per second and burst for each namespace
const (
	rateLimitNode  = 200
	rateBurstNode  = 100
	rateLimitQuery = 200
	rateBurstQuery = 100
	rateLimitWrite = 20
	rateBurstWrite = 10
)

// StatusReply - result of a mutation that returns nothing else
type StatusReply struct {
	Ok bool `json:"ok"`
}

// namespace - the parts every RPC type shares
type namespace struct {
	log     *logger.L
	limiter *rate.Limiter
	market  Marketplace
	gate    *gate
}

func newNamespace(log *logger.L, market Marketplace, limit rate.Limit, burst int) namespace {
	return namespace{
		log:     log,
		limiter: rate.NewLimiter(limit, burst),
		market:  market,
		gate:    newGate(),
	}
}

// begin - rate limit then verify a signed request
func (n *namespace) begin(method string, arguments Signable) (auth.Authoriser, error) {
	if err := rateLimit(n.limiter); nil != err {
		return nil, err
	}
	a, err := n.gate.authorise(method, arguments)
	if nil != err {
		n.log.Warnf("%s: refused: %s", method, err)
		return nil, err
	}
	n.log.Infof("%s: signer: %s", method, arguments.Signing().Signer)
	return a, nil
}

// query - rate limit a read only request
func (n *namespace) query() error {
	if err := rateLimit(n.limiter); nil != err {
		return err
	}
	return n.gate.available()
}

// Create - a server with every namespace registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, market Marketplace) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(&Node{
		namespace: newNamespace(log, market, rateLimitNode, rateBurstNode),
		start:     start,
		version:   version,
		count:     rpcCount,
	})
	_ = server.Register(&Market{newNamespace(log, market, rateLimitWrite, rateBurstWrite)})
	_ = server.Register(&Listing{newNamespace(log, market, rateLimitQuery, rateBurstQuery)})
	_ = server.Register(&Trade{newNamespace(log, market, rateLimitWrite, rateBurstWrite)})
	_ = server.Register(&Agreement{newNamespace(log, market, rateLimitQuery, rateBurstQuery)})
	_ = server.Register(&Escrow{newNamespace(log, market, rateLimitQuery, rateBurstQuery)})
	_ = server.Register(&Ownership{newNamespace(log, market, rateLimitQuery, rateBurstQuery)})
	_ = server.Register(&Price{newNamespace(log, market, rateLimitQuery, rateBurstQuery)})
	_ = server.Register(&Token{newNamespace(log, market, rateLimitQuery, rateBurstQuery)})

	return server
}
