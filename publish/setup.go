// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - deliver committed market events to subscribers
//
// events are taken from a messagebus queue, encoded once as JSON and
// handed to each configured transport: a curve secured ZeroMQ PUB
// socket and/or an AMQP topic exchange
package publish

import (
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/background"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/messagebus"
)

// transport names
const (
	TransportZMQ  = "zmq"
	TransportAMQP = "amqp"
)

// Configuration - publisher section of the configuration file
type Configuration struct {
	Transports []string          `gluamapper:"transports" json:"transports"`
	Broadcast  []string          `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string            `gluamapper:"private_key" json:"private_key"`
	PublicKey  string            `gluamapper:"public_key" json:"public_key"`
	AMQP       AMQPConfiguration `gluamapper:"amqp" json:"amqp"`
}

// globals for background process
type publishData struct {
	sync.RWMutex

	log *logger.L

	dispatch *dispatcher

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - open the transports and start publishing from queue
func Initialise(configuration *Configuration, queue *messagebus.Queue) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log
	log.Info("starting…")

	transports := make([]transport, 0, len(configuration.Transports))
	for _, name := range configuration.Transports {
		var t transport
		var err error

		switch strings.ToLower(strings.TrimSpace(name)) {
		case TransportZMQ:
			t, err = newBroadcaster(log, configuration)
		case TransportAMQP:
			t, err = newAMQPPublisher(log, &configuration.AMQP)
		default:
			err = fault.ErrUnknownSinkTransport
		}
		if nil != err {
			log.Errorf("transport: %q  error: %s", name, err)
			closeAll(transports)
			return err
		}
		transports = append(transports, t)
	}
	if 0 == len(transports) {
		log.Warn("no transports: events will be discarded")
	}

	globalData.dispatch = newDispatcher(log, queue, transports)
	globalData.initialised = true

	log.Info("start background…")
	processes := background.Processes{
		globalData.dispatch,
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop publishing and close the transports
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	closeAll(globalData.dispatch.transports)

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func closeAll(transports []transport) {
	for _, t := range transports {
		t.close()
	}
}
