// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/event"
	"github.com/bitmark-inc/marketd/messagebus"
)

// transport - one way of getting an encoded event to subscribers
type transport interface {
	name() string
	send(e *event.Event, body []byte) error
	close()
}

type dispatcher struct {
	log        *logger.L
	queue      *messagebus.Queue
	transports []transport
}

func newDispatcher(log *logger.L, queue *messagebus.Queue, transports []transport) *dispatcher {
	return &dispatcher{
		log:        log,
		queue:      queue,
		transports: transports,
	}
}

// Run - forward queued events until shutdown
func (d *dispatcher) Run(args interface{}, shutdown <-chan struct{}) {
	d.log.Info("starting…")

	queue := d.queue.Chan()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			d.process(item)
		}
	}

	d.log.Infof("stopped, dropped: %d", d.queue.Dropped())
}

func (d *dispatcher) process(item messagebus.Message) {
	e, ok := item.Item.(*event.Event)
	if !ok {
		d.log.Warnf("topic: %s  unexpected item: %T", item.Topic, item.Item)
		return
	}

	body, err := json.Marshal(e)
	if nil != err {
		d.log.Errorf("topic: %s  id: %s  encode error: %s", e.Topic, e.Id, err)
		return
	}

	// a failing transport must not hold up the others
	for _, t := range d.transports {
		if err := t.send(e, body); nil != err {
			d.log.Errorf("%s: topic: %s  id: %s  error: %s", t.name(), e.Topic, e.Id, err)
		}
	}
}
