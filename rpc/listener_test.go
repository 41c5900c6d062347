// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/cache"
	"github.com/bitmark-inc/marketd/chain"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/mode"
	"github.com/bitmark-inc/marketd/rpc/certificate"
	"github.com/bitmark-inc/marketd/rpc/mocks"
)

func testConfiguration(t *testing.T, connections uint64) *Configuration {
	dir := t.TempDir()
	cerFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	err := certificate.MakeSelfSigned("test", cerFile, keyFile, false, nil)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	cer, _ := os.ReadFile(cerFile)
	key, _ := os.ReadFile(keyFile)

	port := 30000 + rand.Intn(30000)
	return &Configuration{
		MaximumConnections: connections,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Certificate:        string(cer),
		PrivateKey:         string(key),
	}
}

func dial(t *testing.T, c *Configuration) *rpc.Client {
	conn, err := tls.Dial("tcp", c.Listen[0], &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	return jsonrpc.NewClient(conn)
}

func startServer(t *testing.T, connections uint64) (*Configuration, *mocks.MockMarketplace, *gomock.Controller) {
	fixtures.SetupTestLogger()

	err := mode.Initialise(chain.Testing)
	assert.Nil(t, err, "mode initialise")
	mode.Set(mode.Normal)

	err = cache.Initialise()
	assert.Nil(t, err, "cache initialise")

	ctl := gomock.NewController(t)
	m := mocks.NewMockMarketplace(ctl)

	c := testConfiguration(t, connections)
	err = Initialise(c, "test", m)
	assert.Nil(t, err, "wrong Initialise")
	return c, m, ctl
}

func stopServer(ctl *gomock.Controller) {
	_ = Finalise()
	ctl.Finish()
	cache.Finalise()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
}

func TestServeSignedCall(t *testing.T) {
	c, m, ctl := startServer(t, 5)
	defer stopServer(ctl)

	assert.Equal(t, fault.ErrAlreadyInitialised, Initialise(c, "test", m), "second Initialise")

	key, buyer := fixtures.NewAccount(t)

	m.EXPECT().Listing(uint64(5)).Return(&market.Listing{Id: 5, ReferenceId: "ref-5", Status: market.Available}, nil).Times(1)
	m.EXPECT().Purchase(gomock.Any(), buyer, uint64(5)).Return(uint64(21), nil).Times(1)

	client := dial(t, c)
	defer client.Close()

	var listing market.Listing
	err := client.Call("Listing.Get", &ListingGetArguments{Id: 5}, &listing)
	assert.Nil(t, err, "wrong Listing.Get")
	assert.Equal(t, "ref-5", listing.ReferenceId, "wrong listing")
	assert.Equal(t, market.Available, listing.Status, "wrong status")

	purchase := &TradeArguments{Id: 5}
	err = Sign("Trade.Purchase", purchase, key, time.Now())
	assert.Nil(t, err, "sign error")

	var reply AgreementIdReply
	err = client.Call("Trade.Purchase", purchase, &reply)
	assert.Nil(t, err, "wrong Trade.Purchase")
	assert.Equal(t, uint64(21), reply.AgreementId, "wrong agreement")

	err = client.Call("Trade.Purchase", purchase, &reply)
	assert.Equal(t, fault.ErrRequestReplayed.Error(), err.Error(), "replayed call accepted")

	purchase.Id = 6
	err = client.Call("Trade.Purchase", purchase, &reply)
	assert.Equal(t, fault.ErrInvalidSignature.Error(), err.Error(), "tampered call accepted")
}

func TestConnectionLimit(t *testing.T) {
	c, m, ctl := startServer(t, 1)
	defer stopServer(ctl)

	m.EXPECT().ListingCount().Return(uint64(0)).AnyTimes()
	m.EXPECT().Custodian().Return(nil).AnyTimes()

	first := dial(t, c)
	defer first.Close()

	var info InfoReply
	err := first.Call("Node.Info", &InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Testing, info.Chain, "wrong chain")
	assert.Equal(t, uint64(1), Connections(), "wrong connection count")

	// the server closes the connection during or just after the handshake
	conn, err := tls.Dial("tcp", c.Listen[0], &tls.Config{InsecureSkipVerify: true})
	if nil == err {
		second := jsonrpc.NewClient(conn)
		defer second.Close()

		err = second.Call("Node.Info", &InfoArguments{}, &info)
	}
	assert.NotNil(t, err, "connection over the limit served")
}

func TestFinaliseClosesConnections(t *testing.T) {
	c, m, ctl := startServer(t, 1)
	defer stopServer(ctl)

	m.EXPECT().ListingCount().Return(uint64(0)).AnyTimes()
	m.EXPECT().Custodian().Return(nil).AnyTimes()

	client := dial(t, c)
	defer client.Close()

	var info InfoReply
	err := client.Call("Node.Info", &InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, uint64(1), Connections(), "wrong connection count")

	assert.Nil(t, Finalise(), "wrong Finalise")
	assert.Equal(t, uint64(0), Connections(), "connections left after Finalise")

	err = client.Call("Node.Info", &InfoArguments{}, &info)
	assert.NotNil(t, err, "call served after Finalise")

	// the full limit is available to the next server
	c = testConfiguration(t, 1)
	assert.Nil(t, Initialise(c, "test", m), "wrong Initialise")

	again := dial(t, c)
	defer again.Close()

	err = again.Call("Node.Info", &InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info after restart")
}

func TestInitialiseErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockMarketplace(ctl)

	c := testConfiguration(t, 5)
	c.Listen = nil
	assert.Equal(t, fault.ErrMissingParameters, Initialise(c, "test", m), "missing listen")

	c = testConfiguration(t, 0)
	assert.Equal(t, fault.ErrMissingParameters, Initialise(c, "test", m), "zero connections")

	c = testConfiguration(t, 5)
	c.Listen = []string{"localhost:2130"}
	assert.Equal(t, fault.ErrInvalidIPAddress, Initialise(c, "test", m), "host name")

	c = testConfiguration(t, 5)
	c.PrivateKey = ""
	assert.NotNil(t, Initialise(c, "test", m), "missing key")

	assert.Equal(t, fault.ErrNotInitialised, Finalise(), "finalise without initialise")
}
