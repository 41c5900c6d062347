// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

const (
	minConnectionCount = 1
)

// listener - TLS JSON RPC on each configured address
type listener struct {
	sync.Mutex
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []string
	networks       []string
	listeners      []net.Listener
	connections    map[net.Conn]struct{}
	stopping       bool
	wg             sync.WaitGroup
}

func newListener(
	configuration *Configuration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (*listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", tlsName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	connections, err := util.NewConnections(configuration.Listen)
	if nil != err {
		log.Errorf("invalid %s listen: %q  error: %s", tlsName, configuration.Listen, err)
		return nil, err
	}

	l := &listener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		connections:    make(map[net.Conn]struct{}),
	}

	for _, c := range connections {
		address, v6 := c.CanonicalIPandPort("")
		network := "tcp4"
		if strings.HasPrefix(address, "[::]:") {
			// "*:PORT" listens on tcp4 and tcp6
			network = "tcp"
		} else if v6 {
			network = "tcp6"
		}
		l.addresses = append(l.addresses, address)
		l.networks = append(l.networks, network)
	}

	return l, nil
}

// serve - open every address and accept in the background
func (l *listener) serve() error {
	l.Lock()
	defer l.Unlock()

	for i, address := range l.addresses {
		l.log.Infof("starting RPC server: %s", address)
		listen, err := tls.Listen(l.networks[i], address, l.tlsConfig)
		if nil != err {
			l.log.Errorf("rpc server listen error: %s", err)
			l.closeAll()
			return err
		}
		l.listeners = append(l.listeners, listen)

		l.wg.Add(1)
		go l.accept(listen)
	}
	return nil
}

func (l *listener) accept(listen net.Listener) {
	defer l.wg.Done()

	for {
		conn, err := listen.Accept()
		if nil != err {
			l.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if !l.count.IncrementBelow(l.maxConnections) {
			l.log.Warnf("connection limit: %d reached, refused: %s", l.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		if !l.track(conn) {
			_ = conn.Close()
			l.count.Decrement()
			return
		}
		go func() {
			defer l.wg.Done()
			l.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			l.untrack(conn)
			l.count.Decrement()
		}()
	}
}

// register a connection to be served, false once stopping
func (l *listener) track(conn net.Conn) bool {
	l.Lock()
	defer l.Unlock()
	if l.stopping {
		return false
	}
	l.connections[conn] = struct{}{}
	l.wg.Add(1)
	return true
}

func (l *listener) untrack(conn net.Conn) {
	l.Lock()
	delete(l.connections, conn)
	l.Unlock()
}

// stop - close all listeners and client connections then wait for
// every accept loop and connection to finish
func (l *listener) stop() {
	l.Lock()
	l.stopping = true
	l.closeAll()
	for conn := range l.connections {
		_ = conn.Close()
	}
	l.Unlock()
	l.wg.Wait()
}

func (l *listener) closeAll() {
	for _, listen := range l.listeners {
		_ = listen.Close()
	}
	l.listeners = nil
}
