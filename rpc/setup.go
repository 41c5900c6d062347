// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/rpc/certificate"
)

const (
	tlsName = "client_rpc"
)

// Configuration - configuration file data for RPC setup
//
// certificate and private key are PEM text, normally read from files
// by the configuration script
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener *listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the client RPC listeners
func Initialise(configuration *Configuration, version string, market Marketplace) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", tlsName)
		return fault.ErrMissingParameters
	}

	tlsConfig, fingerprint, err := certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	l, err := newListener(
		configuration,
		log,
		&connectionCountRPC,
		Create(log, version, &connectionCountRPC, market),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = l.serve()
	if nil != err {
		return err
	}
	globalData.listener = l

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections and close those being served
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Connections - number of client connections being served
func Connections() uint64 {
	return connectionCountRPC.Uint64()
}
