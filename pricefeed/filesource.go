// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pricefeed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/amount"
	"github.com/bitmark-inc/marketd/fault"
)

// FileSource - rates read from a JSON file and reloaded when it
// changes
//
// file format:
//   { "USDC": { "price": "10000000", "decimals": 7 } }
type FileSource struct {
	log      *logger.L
	filePath string
	cache    rateCache
}

type fileRate struct {
	Price     string `json:"price"`
	Decimals  uint32 `json:"decimals"`
	Timestamp uint64 `json:"timestamp"`
}

// NewFileSource - load the rate file
func NewFileSource(fileName string) (*FileSource, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	s := &FileSource{
		log:      logger.New("rate-file"),
		filePath: filePath,
	}
	if err := s.load(); nil != err {
		return nil, err
	}
	return s, nil
}

// LastPrice - the most recently loaded rate for a symbol
func (s *FileSource) LastPrice(ctx context.Context, symbol string) (*Rate, error) {
	r, ok := s.cache.get(symbol)
	if !ok {
		return nil, fault.ErrInvalidCurrency
	}
	return &r, nil
}

func (s *FileSource) load() error {
	data, err := os.ReadFile(s.filePath)
	if nil != err {
		return err
	}
	info, err := os.Stat(s.filePath)
	if nil != err {
		return err
	}

	fileRates := make(map[string]fileRate)
	if err := json.Unmarshal(data, &fileRates); nil != err {
		return err
	}

	rates := make(map[string]Rate, len(fileRates))
	for symbol, fr := range fileRates {
		price, err := amount.Parse(fr.Price)
		if nil != err {
			return err
		}
		if err := checkRate(price); nil != err {
			return err
		}
		ts := fr.Timestamp
		if 0 == ts {
			ts = uint64(info.ModTime().Unix())
		}
		rates[strings.ToUpper(symbol)] = Rate{
			Price:     price,
			Decimals:  fr.Decimals,
			Timestamp: ts,
		}
	}
	s.cache.set(rates)
	return nil
}

// Run - watch the file and reload it on change
//
// a file that fails to parse leaves the previous rates in place
func (s *FileSource) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		<-shutdown
		return
	}
	defer watcher.Close()

	// watch the directory so that editors replacing the file are seen
	if err := watcher.Add(filepath.Dir(s.filePath)); nil != err {
		log.Errorf("watcher add error: %s", err)
		<-shutdown
		return
	}

	log.Infof("watching: %s", s.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != s.filePath {
				continue loop
			}
			if !isFileChange(event) {
				continue loop
			}
			// let the writer finish
			time.Sleep(10 * time.Millisecond)
			if err := s.load(); nil != err {
				log.Warnf("reload: %s error: %s", s.filePath, err)
				continue loop
			}
			log.Infof("reloaded: %s", s.filePath)

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Info("shutting down…")
}

func isFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
