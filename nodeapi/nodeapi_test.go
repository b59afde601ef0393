// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nodeapi_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/go-meridian/attachment"
	"github.com/meridianchain/go-meridian/fault"
	"github.com/meridianchain/go-meridian/nodeapi"
	"github.com/meridianchain/go-meridian/signing"
	"github.com/meridianchain/go-meridian/transactionrecord"
)

func TestMain(m *testing.M) {
	tempDir, err := os.MkdirTemp("", "nodeapi-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tempDir)

	logConfig := logger.Configuration{
		Directory: tempDir,
		File:      "nodeapi.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "error",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	os.Exit(m.Run())
}

// testClient - a client pointed at a stub node
func testClient(t *testing.T, handler func(requestType string, form url.Values) interface{}) *nodeapi.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api", r.URL.Path)
		require.NoError(t, r.ParseForm())
		reply := handler(r.PostForm.Get("requestType"), r.PostForm)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(reply))
	}))
	t.Cleanup(server.Close)

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(serverURL.Port())
	require.NoError(t, err)

	client := nodeapi.NewClient(nodeapi.Configuration{
		Host: serverURL.Hostname(),
		Port: port,
	})
	t.Cleanup(client.Close)
	return client
}

func TestGetECBlockCaches(t *testing.T) {
	calls := 0
	client := testClient(t, func(requestType string, form url.Values) interface{} {
		assert.Equal(t, "getECBlock", requestType)
		calls += 1
		return map[string]interface{}{
			"ecBlockId":     "4423444563325657838",
			"ecBlockHeight": 1234567,
			"timestamp":     70000000,
		}
	})

	first, err := client.GetECBlock()
	require.NoError(t, err)
	assert.EqualValues(t, 4423444563325657838, first.ID)
	assert.EqualValues(t, 1234567, first.Height)

	// second fetch must be served from the cache
	second, err := client.GetECBlock()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestBroadcastTransaction(t *testing.T) {
	signer, err := signing.NewSeedSigner(make([]byte, 32))
	require.NoError(t, err)

	tx, err := transactionrecord.NewTransaction(transactionrecord.Parameters{
		Timestamp:   70000000,
		Deadline:    1440,
		RecipientID: 17,
		Amount:      5,
		Fee:         100000000,
		Type:        attachment.TypePayment,
		EcBlock:     &transactionrecord.ECBlock{ID: 99, Height: 10},
	}, signer)
	require.NoError(t, err)

	client := testClient(t, func(requestType string, form url.Values) interface{} {
		assert.Equal(t, "broadcastTransaction", requestType)

		// the stub node derives the identifier the way a real one would
		packed, err := hex.DecodeString(form.Get("transactionBytes"))
		require.NoError(t, err)
		received, err := transactionrecord.Unpack(packed)
		require.NoError(t, err)

		return map[string]interface{}{
			"transaction": received.ID().String(),
			"fullHash":    hex.EncodeToString(received.FullHash()),
		}
	})

	reply, err := client.BroadcastTransaction(tx.Pack(false))
	require.NoError(t, err)
	assert.Equal(t, tx.ID(), reply.TransactionID)
	assert.Equal(t, hex.EncodeToString(tx.FullHash()), reply.FullHash)
}

func TestBroadcastRejectsUnsigned(t *testing.T) {
	signer, err := signing.NewSeedSigner(make([]byte, 32))
	require.NoError(t, err)

	tx, err := transactionrecord.NewTransaction(transactionrecord.Parameters{
		Timestamp:   70000000,
		Deadline:    1440,
		RecipientID: 17,
		Fee:         100000000,
		Type:        attachment.TypePayment,
	}, signer)
	require.NoError(t, err)

	client := testClient(t, func(requestType string, form url.Values) interface{} {
		t.Fatal("an unsigned transaction must not reach the node")
		return nil
	})

	_, err = client.BroadcastTransaction(tx.UnsignedBytes())
	assert.Equal(t, fault.ErrTransactionIsNotSigned, err)
}

func TestServerError(t *testing.T) {
	client := testClient(t, func(requestType string, form url.Values) interface{} {
		return map[string]interface{}{
			"errorCode":        5,
			"errorDescription": "Unknown account",
		}
	})

	_, err := client.GetAccount(17)
	require.Error(t, err)
	serverError, ok := err.(*nodeapi.ServerError)
	require.True(t, ok, "error: %v", err)
	assert.Equal(t, 5, serverError.Code)
	assert.Equal(t, "Unknown account", serverError.Description)
}

func TestGetTransactionAttachment(t *testing.T) {
	client := testClient(t, func(requestType string, form url.Values) interface{} {
		assert.Equal(t, "getTransaction", requestType)
		assert.Equal(t, "12345", form.Get("transaction"))
		return map[string]interface{}{
			"transaction": "12345",
			"type":        attachment.TypeMessaging,
			"subtype":     attachment.SubtypeArbitraryMessage,
			"amountQNT":   "0",
			"feeQNT":      "100000000",
			"attachment": map[string]interface{}{
				"message":       "hello",
				"messageIsText": true,
			},
		}
	})

	reply, err := client.GetTransaction(12345)
	require.NoError(t, err)

	a, err := reply.Attachment()
	require.NoError(t, err)
	message, ok := a.(*attachment.ArbitraryMessage)
	require.True(t, ok)
	assert.Equal(t, "hello", string(message.Message))
	assert.True(t, message.IsText)
}

func TestGetBlockchainStatus(t *testing.T) {
	client := testClient(t, func(requestType string, form url.Values) interface{} {
		assert.Equal(t, "getBlockchainStatus", requestType)
		return map[string]interface{}{
			"application":    "Meridian",
			"version":        "1.11.15",
			"numberOfBlocks": 1234568,
			"lastBlock":      "4423444563325657838",
		}
	})

	status, err := client.GetBlockchainStatus()
	require.NoError(t, err)
	assert.Equal(t, "Meridian", status.Application)
	assert.EqualValues(t, 1234568, status.NumberOfBlocks)
	assert.EqualValues(t, 4423444563325657838, status.LastBlock)
}
