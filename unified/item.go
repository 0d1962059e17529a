// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/wire"
)

// TypecodeOrchard identifies an Orchard receiver or viewing key item.
const TypecodeOrchard = 0x03

// Item is a single typecode/value pair of a unified container.
type Item struct {
	Typecode uint64
	Value    []byte
}

// serializeSize returns the number of bytes needed to serialize the item.
func (item *Item) serializeSize() int {
	valueLen := uint64(len(item.Value))
	return wire.VarIntSerializeSize(item.Typecode) +
		wire.VarIntSerializeSize(valueLen) + len(item.Value)
}

// SerializeItems serializes the items in order.  Each item is written as its
// compact size typecode, the compact size length of its value and the value
// itself.
func SerializeItems(items []Item) ([]byte, error) {
	if len(items) == 0 {
		return nil, makeError(ErrNoItems, "no items to serialize")
	}

	var size int
	for i := range items {
		size += items[i].serializeSize()
	}
	var buf bytes.Buffer
	buf.Grow(size)
	for i := range items {
		item := &items[i]
		err := wire.WriteVarInt(&buf, wire.ProtocolVersion, item.Typecode)
		if err != nil {
			return nil, err
		}
		err = wire.WriteVarInt(&buf, wire.ProtocolVersion,
			uint64(len(item.Value)))
		if err != nil {
			return nil, err
		}
		buf.Write(item.Value)
	}
	return buf.Bytes(), nil
}

// readCompactSize reads a compact size integer and classifies any failure as
// either truncation or a non-canonical encoding.
func readCompactSize(r *bytes.Reader, field string, offset int) (uint64, error) {
	v, err := wire.ReadVarInt(r, wire.ProtocolVersion)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			str := fmt.Sprintf("truncated %s at offset %d", field, offset)
			return 0, makeError(ErrTruncated, str)
		}
		str := fmt.Sprintf("invalid %s at offset %d: %v", field, offset, err)
		return 0, makeError(ErrNonCanonical, str)
	}
	return v, nil
}

// ParseItems parses a serialized item sequence, preserving order and keeping
// items with unknown typecodes.  The whole input must be consumed.
func ParseItems(b []byte) ([]Item, error) {
	if len(b) == 0 {
		return nil, makeError(ErrNoItems, "container holds no items")
	}

	r := bytes.NewReader(b)
	var items []Item
	for r.Len() > 0 {
		offset := len(b) - r.Len()
		typecode, err := readCompactSize(r, "typecode", offset)
		if err != nil {
			return nil, err
		}
		valueLen, err := readCompactSize(r, "length", offset)
		if err != nil {
			return nil, err
		}
		if valueLen > uint64(r.Len()) {
			str := fmt.Sprintf("item %d at offset %d declares %d value bytes "+
				"but only %d remain", len(items), offset, valueLen, r.Len())
			return nil, makeError(ErrTruncated, str)
		}
		value := make([]byte, valueLen)
		if _, err := io.ReadFull(r, value); err != nil {
			str := fmt.Sprintf("truncated value at offset %d", offset)
			return nil, makeError(ErrTruncated, str)
		}
		items = append(items, Item{Typecode: typecode, Value: value})
	}
	return items, nil
}

// FindSingle returns the value of the only item with the given typecode.  It
// fails with ErrItemNotFound when there is none and ErrDuplicateItem when
// there are several, regardless of whether their values agree.
func FindSingle(items []Item, typecode uint64) ([]byte, error) {
	var value []byte
	var found int
	for i := range items {
		if items[i].Typecode != typecode {
			continue
		}
		found++
		value = items[i].Value
	}
	switch found {
	case 0:
		str := fmt.Sprintf("no item with typecode %#x", typecode)
		return nil, makeError(ErrItemNotFound, str)
	case 1:
		return value, nil
	default:
		str := fmt.Sprintf("%d items with typecode %#x", found, typecode)
		return nil, makeError(ErrDuplicateItem, str)
	}
}
