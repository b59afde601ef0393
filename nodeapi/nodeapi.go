// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nodeapi - HTTP client for the node's JSON API
//
// every request is a POST of form values to the node's /api endpoint
// with the operation named by the requestType value.  Failures the
// node reports arrive as a JSON object carrying errorCode and
// errorDescription; these surface as *ServerError
package nodeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/go-meridian/fault"
)

// Configuration - connection parameters for one node
type Configuration struct {
	Host    string        `json:"host"`
	Port    int           `json:"port"`
	Timeout time.Duration `json:"timeout"`
}

// defaults
const (
	defaultTimeout = 30 * time.Second
	retryLimit     = 4

	// economic clustering bindings stay valid for a while; a short
	// cache avoids hammering the node when sending a batch
	ecBlockTTL = 10 * time.Second
)

// Client - a connection to one node's JSON API
type Client struct {
	endpoint string
	conn     *retryablehttp.Client
	log      *logger.L
	ecCache  *gocache.Cache
}

// ServerError - a failure reported by the node itself
type ServerError struct {
	Code        int    `json:"errorCode"`
	Description string `json:"errorDescription"`
}

// Error - the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Description)
}

// NewClient - create a client for one node
func NewClient(configuration Configuration) *Client {
	timeout := configuration.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	conn := retryablehttp.NewClient()
	conn.RetryMax = retryLimit
	conn.HTTPClient.Timeout = timeout
	conn.Logger = nil // request logging goes through our own logger

	return &Client{
		endpoint: fmt.Sprintf("http://%s:%d/api", configuration.Host, configuration.Port),
		conn:     conn,
		log:      logger.New("nodeapi"),
		ecCache:  gocache.New(ecBlockTTL, 2*ecBlockTTL),
	}
}

// Close - release idle connections
func (c *Client) Close() {
	c.conn.HTTPClient.CloseIdleConnections()
}

// call - one request/reply exchange with the node
func (c *Client) call(requestType string, params map[string]string, reply interface{}) error {
	form := url.Values{}
	form.Set("requestType", requestType)
	for key, value := range params {
		form.Set(key, value)
	}

	c.log.Debugf("POST %s requestType: %s", c.endpoint, requestType)

	response, err := c.conn.PostForm(c.endpoint, form)
	if nil != err {
		c.log.Errorf("%s failed: %s", requestType, err)
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if nil != err {
		return err
	}
	if http.StatusOK != response.StatusCode {
		c.log.Errorf("%s status: %s", requestType, response.Status)
		return fault.ErrNodeReplyIsNotValid
	}

	// the node signals failure inside a 200 reply
	serverError := &ServerError{}
	if err := json.Unmarshal(body, serverError); nil != err {
		c.log.Errorf("%s reply is not JSON: %s", requestType, err)
		return fault.ErrNodeReplyIsNotValid
	}
	if 0 != serverError.Code {
		c.log.Warnf("%s rejected: %s", requestType, serverError)
		return serverError
	}

	if nil == reply {
		return nil
	}
	if err := json.Unmarshal(body, reply); nil != err {
		c.log.Errorf("%s reply decode: %s", requestType, err)
		return fault.ErrNodeReplyIsNotValid
	}
	return nil
}
