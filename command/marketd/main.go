// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/agreement"
	"github.com/bitmark-inc/marketd/background"
	"github.com/bitmark-inc/marketd/cache"
	"github.com/bitmark-inc/marketd/dividend"
	"github.com/bitmark-inc/marketd/escrow"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/messagebus"
	"github.com/bitmark-inc/marketd/mode"
	"github.com/bitmark-inc/marketd/ownership"
	"github.com/bitmark-inc/marketd/pricefeed"
	"github.com/bitmark-inc/marketd/publish"
	"github.com/bitmark-inc/marketd/rpc"
	"github.com/bitmark-inc/marketd/storage"
	"github.com/bitmark-inc/marketd/token"
	"github.com/bitmark-inc/marketd/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, nil)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC.Listen", theConfiguration.ClientRPC.Listen)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)
	log.Debugf("%s = %#v", "RateSource", theConfiguration.RateSource)

	// the market's own accounts
	custodianKey, err := readAccountKey(theConfiguration.Keys.Custodian)
	if nil != err {
		log.Criticalf("custodian key: %q  error: %s", theConfiguration.Keys.Custodian, err)
		exitwithstatus.Message("custodian key: %q  error: %s", theConfiguration.Keys.Custodian, err)
	}
	vaultKey, err := readAccountKey(theConfiguration.Keys.Vault)
	if nil != err {
		log.Criticalf("vault key: %q  error: %s", theConfiguration.Keys.Vault, err)
		exitwithstatus.Message("vault key: %q  error: %s", theConfiguration.Keys.Vault, err)
	}
	custodian := custodianKey.Account()
	vault := vaultKey.Account()
	for _, acc := range []*account.Account{custodian, vault} {
		if err := mode.CheckAccount(acc); nil != err {
			log.Criticalf("market account: %s  error: %s", acc, err)
			exitwithstatus.Message("market account: %s  chain: %s  error: %s", acc, theConfiguration.Chain, err)
		}
	}
	log.Infof("custodian: %s", custodian)
	log.Infof("vault: %s", vault)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// external exchange rates
	source, refresher, err := pricefeed.NewSource(&theConfiguration.RateSource)
	if nil != err {
		log.Criticalf("rate source error: %s", err)
		exitwithstatus.Message("rate source error: %s", err)
	}
	if nil != refresher {
		log.Infof("start rate source: %s", theConfiguration.RateSource.Source)
		sources := background.Start(background.Processes{refresher}, nil)
		defer sources.Stop()
	}

	// ledgers and the orchestrator over them
	tokens := token.New(custodian)
	shares := ownership.New(custodian)
	feed := pricefeed.NewFeed()
	theMarket := market.New(custodian, market.Collaborators{
		Ownership:   shares,
		Vault:       escrow.New(custodian, vault, tokens),
		Agreements:  agreement.New(custodian),
		Distributor: dividend.New(custodian, tokens, shares),
		Normaliser:  pricefeed.NewNormaliser(feed, source),
		Tokens:      tokens,
		Feed:        feed,
		Sink:        messagebus.Bus.Events,
	})

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing, messagebus.Bus.Events)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// memory pools, including the replayed request filter
	err = cache.Initialise()
	if nil != err {
		log.Criticalf("cache initialise error: %s", err)
		exitwithstatus.Message("cache initialise error: %s", err)
	}
	defer cache.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, theMarket)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	mode.Set(mode.Normal)

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
