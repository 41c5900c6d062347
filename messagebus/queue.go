// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"

	"github.com/bitmark-inc/marketd/event"
)

// internal constants
const (
	queueSize = 1000
)

// Message - one queued item
type Message struct {
	Topic string
	Item  interface{}
}

// Queue - a fixed size channel of messages
type Queue struct {
	c       chan Message
	dropped uint64
}

// BusType - the queues used by the daemon
type BusType struct {
	Events *Queue // committed market events for publishing
}

// Bus - the global queues
var Bus = BusType{
	Events: NewQueue(queueSize),
}

// NewQueue - a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message without waiting
//
// returns false if the queue was full and the message dropped
func (q *Queue) Send(topic string, item interface{}) bool {
	select {
	case q.c <- Message{Topic: topic, Item: item}:
		return true
	default:
		atomic.AddUint64(&q.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Dropped - messages lost to a full queue
func (q *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&q.dropped)
}

// Publish - queue an event; a Queue is an event.Sink
func (q *Queue) Publish(e *event.Event) {
	q.Send(e.Topic, e)
}
