// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ffi

import (
	"encoding/json"
	"runtime/debug"
	"strings"

	"github.com/junocash/junoaddr/addrgen"
)

const (
	statusOK  = "ok"
	statusErr = "err"
)

// internalJSON is the response returned when a request fails in a way that
// prevents building any other response.
const internalJSON = `{"status":"err","error":"internal"}`

// Deriver is the address derivation served across the boundary.  It is
// satisfied by *addrgen.Deriver.
type Deriver interface {
	Derive(ufvk string, index uint32) (string, error)
	Batch(ufvk string, start, count uint32) ([]string, error)
}

// DeriveResponse is the response to a single address derivation.
type DeriveResponse struct {
	Status  string `json:"status"`
	Address string `json:"address,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BatchResponse is the response to a batch address derivation.
type BatchResponse struct {
	Status    string   `json:"status"`
	Start     uint32   `json:"start"`
	Count     uint32   `json:"count"`
	Addresses []string `json:"addresses"`
}

// errorResponse is the response to any failed request.
type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// marshal returns the JSON encoding of v, falling back to the internal error
// response.
func marshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		log.Errorf("Unable to marshal response: %v", err)
		return []byte(internalJSON)
	}
	return b
}

// errorJSON returns the error response for err.
func errorJSON(err error) []byte {
	return marshal(&errorResponse{
		Status: statusErr,
		Error:  string(addrgen.CodeOf(err)),
	})
}

// recoverInternal replaces the response with the internal error response when
// the calling function is panicking.  It must be deferred.
func recoverInternal(resp *[]byte) {
	if r := recover(); r != nil {
		log.Errorf("Recovered from panic: %v\n%s", r, debug.Stack())
		*resp = []byte(internalJSON)
	}
}

// sanitize returns the viewing key to process for the passed input, with
// invalid UTF-8 replaced by the Unicode replacement character.  The boolean
// is false when no input was provided.
func sanitize(ufvk *string) (string, bool) {
	if ufvk == nil {
		return "", false
	}
	return strings.ToValidUTF8(*ufvk, "\uFFFD"), true
}

// DeriveJSON derives the address at index for the viewing key and returns the
// JSON response.  A nil viewing key is reported as ufvk_empty.
func DeriveJSON(d Deriver, ufvk *string, index uint32) (resp []byte) {
	defer recoverInternal(&resp)

	s, ok := sanitize(ufvk)
	if !ok {
		return errorJSON(addrgen.ErrUFVKEmpty)
	}
	addr, err := d.Derive(s, index)
	if err != nil {
		log.Debugf("Derive at index %d failed: %v", index, err)
		return errorJSON(err)
	}
	return marshal(&DeriveResponse{Status: statusOK, Address: addr})
}

// BatchJSON derives count addresses starting at index start for the viewing
// key and returns the JSON response.  A nil viewing key is reported as
// ufvk_empty.
func BatchJSON(d Deriver, ufvk *string, start, count uint32) (resp []byte) {
	defer recoverInternal(&resp)

	s, ok := sanitize(ufvk)
	if !ok {
		return errorJSON(addrgen.ErrUFVKEmpty)
	}
	addrs, err := d.Batch(s, start, count)
	if err != nil {
		log.Debugf("Batch of %d at index %d failed: %v", count, start, err)
		return errorJSON(err)
	}
	return marshal(&BatchResponse{
		Status:    statusOK,
		Start:     start,
		Count:     count,
		Addresses: addrs,
	})
}
