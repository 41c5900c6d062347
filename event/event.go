// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - structured notifications of committed changes
//
// events are fire and forget: a sink must not block the caller and
// nothing in the daemon reads them back
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event - one notification
type Event struct {
	Id        string      `json:"id"`
	Topic     string      `json:"topic"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New - an event with a fresh identifier
func New(topic string, payload interface{}) *Event {
	return &Event{
		Id:        uuid.New().String(),
		Topic:     topic,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// Sink - consumer of events
type Sink interface {
	Publish(*Event)
}

// Sinks - deliver to each sink in turn
type Sinks []Sink

// Publish - fan out to all sinks
func (s Sinks) Publish(e *Event) {
	for _, sink := range s {
		if nil != sink {
			sink.Publish(e)
		}
	}
}

type discard struct{}

func (discard) Publish(*Event) {}

// Discard - a sink that drops everything
var Discard Sink = discard{}
