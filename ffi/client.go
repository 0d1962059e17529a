// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ffi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// errInvalidResponse is returned when a response can not be interpreted.
var errInvalidResponse = errors.New("ffi: invalid response")

// CodeError is a failure reported by the boundary through its stable code.
type CodeError struct {
	Code string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *CodeError) Error() string {
	return fmt.Sprintf("addrgen: %s", e.Code)
}

// CodeString returns the stable code of the error.
func (e *CodeError) CodeString() string {
	return e.Code
}

// Is reports whether target is a CodeError with the same code.
func (e *CodeError) Is(target error) bool {
	t, ok := target.(*CodeError)
	return ok && t.Code == e.Code
}

// Client derives addresses through the JSON boundary, translating responses
// back into values and errors.  It satisfies Deriver.
type Client struct {
	deriver Deriver
}

// NewClient returns a client for the deriver served by the boundary.
func NewClient(d Deriver) *Client {
	return &Client{deriver: d}
}

// response holds the union of the fields of all responses.
type response struct {
	Status    string   `json:"status"`
	Address   string   `json:"address"`
	Start     uint32   `json:"start"`
	Count     uint32   `json:"count"`
	Addresses []string `json:"addresses"`
	Error     string   `json:"error"`
}

// parse decodes a response and converts failure responses to a CodeError.
func parse(raw []byte) (*response, error) {
	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errInvalidResponse
	}
	switch resp.Status {
	case statusOK:
		return &resp, nil
	case statusErr:
		if resp.Error == "" {
			return nil, errInvalidResponse
		}
		return nil, &CodeError{Code: resp.Error}
	}
	return nil, errInvalidResponse
}

// Derive returns the address at index for the viewing key.
func (c *Client) Derive(ufvk string, index uint32) (string, error) {
	resp, err := parse(DeriveJSON(c.deriver, &ufvk, index))
	if err != nil {
		return "", err
	}
	if resp.Address == "" {
		return "", errInvalidResponse
	}
	return resp.Address, nil
}

// Batch returns count addresses starting at index start for the viewing key.
func (c *Client) Batch(ufvk string, start, count uint32) ([]string, error) {
	resp, err := parse(BatchJSON(c.deriver, &ufvk, start, count))
	if err != nil {
		return nil, err
	}
	if resp.Start != start || resp.Count != count ||
		uint32(len(resp.Addresses)) != count {

		return nil, errInvalidResponse
	}
	return resp.Addresses, nil
}
