// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/background"
	"github.com/bitmark-inc/marketd/event"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/messagebus"
)

type recordingTransport struct {
	sync.Mutex
	fail   bool
	bodies [][]byte
	closed bool
}

func (r *recordingTransport) name() string { return "recording" }

func (r *recordingTransport) send(e *event.Event, body []byte) error {
	r.Lock()
	defer r.Unlock()
	if r.fail {
		return errors.New("transport down")
	}
	r.bodies = append(r.bodies, body)
	return nil
}

func (r *recordingTransport) close() { r.closed = true }

func (r *recordingTransport) count() int {
	r.Lock()
	defer r.Unlock()
	return len(r.bodies)
}

func TestDispatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	queue := messagebus.NewQueue(10)
	broken := &recordingTransport{fail: true}
	good := &recordingTransport{}

	d := newDispatcher(logger.New("test"), queue, []transport{broken, good})
	bg := background.Start(background.Processes{d}, nil)

	queue.Publish(event.New("listing.created", map[string]uint64{"listingId": 3}))
	queue.Send("junk", 42)
	queue.Publish(event.New("escrow.locked", nil))

	assert.Eventually(t, func() bool { return 2 == good.count() }, time.Second, 10*time.Millisecond, "delivered")
	bg.Stop()

	var decoded event.Event
	err := json.Unmarshal(good.bodies[0], &decoded)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, "listing.created", decoded.Topic, "topic")
	assert.NotEqual(t, "", decoded.Id, "id")
}

func TestInitialiseUnknownTransport(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := Initialise(&Configuration{Transports: []string{"carrier-pigeon"}}, messagebus.NewQueue(1))
	assert.Equal(t, fault.ErrUnknownSinkTransport, err, "unknown transport")

	err = Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "nothing started")
}

func TestInitialiseWithoutTransports(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := Initialise(&Configuration{}, messagebus.NewQueue(1))
	assert.Nil(t, err, "initialise error")

	err = Initialise(&Configuration{}, messagebus.NewQueue(1))
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	assert.Nil(t, Finalise(), "finalise error")
}

func TestAMQPNeedsURL(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := newAMQPPublisher(logger.New("test"), &AMQPConfiguration{})
	assert.Equal(t, fault.ErrMissingParameters, err, "missing url")
}
