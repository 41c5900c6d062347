// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/event"
	"github.com/bitmark-inc/marketd/fault"
)

const (
	defaultExchange = "marketd.events"
	publishTimeout  = 5 * time.Second
)

// AMQPConfiguration - broker connection and exchange
type AMQPConfiguration struct {
	URL      string `gluamapper:"url" json:"url"`
	Exchange string `gluamapper:"exchange" json:"exchange"`
}

// amqpPublisher - publishes to a durable topic exchange using the
// event topic as routing key
type amqpPublisher struct {
	log      *logger.L
	url      string
	exchange string
	conn     *amqp.Connection
	channel  *amqp.Channel
}

func newAMQPPublisher(log *logger.L, configuration *AMQPConfiguration) (*amqpPublisher, error) {
	if "" == configuration.URL {
		return nil, fault.ErrMissingParameters
	}
	exchange := configuration.Exchange
	if "" == exchange {
		exchange = defaultExchange
	}
	p := &amqpPublisher{
		log:      log,
		url:      configuration.URL,
		exchange: exchange,
	}
	if err := p.connect(); nil != err {
		return nil, err
	}
	return p, nil
}

func (p *amqpPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if nil != err {
		return err
	}
	ch, err := conn.Channel()
	if nil != err {
		conn.Close()
		return err
	}
	err = ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	)
	if nil != err {
		ch.Close()
		conn.Close()
		return err
	}

	p.conn = conn
	p.channel = ch
	p.log.Infof("amqp: exchange: %q ready", p.exchange)
	return nil
}

func (p *amqpPublisher) name() string {
	return TransportAMQP
}

// send - one attempt, reconnecting first if the broker went away
func (p *amqpPublisher) send(e *event.Event, body []byte) error {
	if nil == p.conn || p.conn.IsClosed() {
		p.close()
		if err := p.connect(); nil != err {
			return err
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.Id,
		Timestamp:    e.Timestamp,
		Type:         e.Topic,
		Body:         body,
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		e.Topic,    // routing key
		false,      // mandatory
		false,      // immediate
		msg,
	)
}

func (p *amqpPublisher) close() {
	if nil != p.channel {
		_ = p.channel.Close()
		p.channel = nil
	}
	if nil != p.conn {
		_ = p.conn.Close()
		p.conn = nil
	}
}
