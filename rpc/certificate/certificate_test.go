// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/rpc/certificate"
)

func makePair(t *testing.T) (string, string) {
	dir := t.TempDir()
	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err := certificate.MakeSelfSigned("test", cer, key, false, []string{"127.0.0.1"})
	assert.Nil(t, err, "wrong MakeSelfSigned")
	return cer, key
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cerFile, keyFile := makePair(t)
	cer, _ := os.ReadFile(cerFile)
	key, _ := os.ReadFile(keyFile)

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		string(cer),
		string(key),
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cerFile, _ := makePair(t)
	_, otherKeyFile := makePair(t)
	cer, _ := os.ReadFile(cerFile)
	key, _ := os.ReadFile(otherKeyFile)

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cer), string(key))
	assert.NotNil(t, err, "mismatched pair accepted")
}

func TestMakeSelfSignedNoOverwrite(t *testing.T) {
	cer, key := makePair(t)

	err := certificate.MakeSelfSigned("test", cer, key+".new", false, nil)
	assert.Equal(t, fault.ErrCertificateFileExists, err, "wrong error")

	err = certificate.MakeSelfSigned("test", cer+".new", key, false, nil)
	assert.Equal(t, fault.ErrKeyFileExists, err, "wrong error")
}
