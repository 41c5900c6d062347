// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/event"
	"github.com/bitmark-inc/marketd/util"
	"github.com/bitmark-inc/marketd/zmqutil"
)

const (
	broadcastZapDomain = "broadcast"
)

// broadcaster - ZeroMQ PUB sockets; frames are topic, id, JSON body
type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

func newBroadcaster(log *logger.L, configuration *Configuration) (*broadcaster, error) {
	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return nil, err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return nil, err
	}
	log.Tracef("public key:  %x", publicKey)

	listen, err := util.NewConnections(configuration.Broadcast)
	if nil != err {
		return nil, err
	}

	if err := zmqutil.StartAuthentication(); nil != err {
		return nil, err
	}

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcastZapDomain, privateKey, publicKey, listen)
	if nil != err {
		return nil, err
	}

	return &broadcaster{
		log:     log,
		socket4: socket4,
		socket6: socket6,
	}, nil
}

func (b *broadcaster) name() string {
	return TransportZMQ
}

func (b *broadcaster) send(e *event.Event, body []byte) error {
	for _, socket := range []*zmq.Socket{b.socket4, b.socket6} {
		if nil == socket {
			continue
		}
		if _, err := socket.SendMessage(e.Topic, e.Id, body); nil != err {
			return err
		}
	}
	return nil
}

func (b *broadcaster) close() {
	if nil != b.socket4 {
		b.socket4.Close()
	}
	if nil != b.socket6 {
		b.socket6.Close()
	}
}
