// go-ndef
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-ndef.
//
// go-ndef is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-ndef is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-ndef; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package ndef

import "encoding/binary"

// TLV block types recognized in a Type-2-Tag memory layout. Types not
// listed here are passed through by TLVNext with their raw value.
const (
	TLVNull          byte = 0x00
	TLVLockControl   byte = 0x01
	TLVMemoryControl byte = 0x02
	TLVNDEFMessage   byte = 0x03
	TLVTerminator    byte = 0xFE
)

// TLVCursor tracks scan position across repeated TLVNext calls over the
// same buffer.
type TLVCursor struct {
	data []byte
	pos  int
}

// NewTLVCursor starts a scan at the beginning of data.
func NewTLVCursor(data []byte) *TLVCursor {
	return &TLVCursor{data: data}
}

// TLVNext reads the next TLV block. ok is false once a Terminator block is
// reached or the cursor is exhausted; err is non-nil if the block's
// declared length overruns the buffer. NULL blocks are skipped internally
// and never returned to the caller.
func TLVNext(c *TLVCursor) (tlvType byte, value ByteView, ok bool, err error) {
	for {
		if c.pos >= len(c.data) {
			return 0, ByteView{}, false, nil
		}
		t := c.data[c.pos]
		if t == TLVTerminator {
			c.pos = len(c.data)
			return 0, ByteView{}, false, nil
		}
		if t == TLVNull {
			c.pos++
			continue
		}

		length, headerLen, err := readTLVLength(c.data, c.pos+1)
		if err != nil {
			return 0, ByteView{}, false, err
		}
		valueStart := c.pos + 1 + headerLen
		valueEnd := valueStart + length
		if valueEnd > len(c.data) {
			return 0, ByteView{}, false, newDecodeError("TLVNext", ErrorKindTruncated, nil)
		}

		value = NewByteView(c.data[valueStart:valueEnd])
		c.pos = valueEnd
		return t, value, true, nil
	}
}

// readTLVLength reads the length field starting at offset off: one byte,
// or if that byte is 0xFF, a following big-endian 16-bit length.
func readTLVLength(data []byte, off int) (length int, consumed int, err error) {
	if off >= len(data) {
		return 0, 0, newDecodeError("readTLVLength", ErrorKindTruncated, nil)
	}
	l := data[off]
	if l != 0xFF {
		return int(l), 1, nil
	}
	if off+3 > len(data) {
		return 0, 0, newDecodeError("readTLVLength", ErrorKindTruncated, nil)
	}
	return int(binary.BigEndian.Uint16(data[off+1 : off+3])), 3, nil
}

// TLVCheck returns the number of bytes consumed up to and including the
// Terminator block, or 0 if the sequence is incomplete or malformed.
func TLVCheck(data []byte) int {
	pos := 0
	for {
		if pos >= len(data) {
			return 0
		}
		t := data[pos]
		if t == TLVTerminator {
			return pos + 1
		}
		if t == TLVNull {
			pos++
			continue
		}
		length, headerLen, err := readTLVLength(data, pos+1)
		if err != nil {
			return 0
		}
		next := pos + 1 + headerLen + length
		if next > len(data) {
			return 0
		}
		pos = next
	}
}

// encodeTLV appends a single TLV block (type, value) to dst, choosing the
// short or long length form automatically, and returns the extended slice.
func encodeTLV(dst []byte, tlvType byte, value []byte) []byte {
	dst = append(dst, tlvType)
	if len(value) < 0xFF {
		dst = append(dst, byte(len(value)))
	} else {
		dst = append(dst, 0xFF)
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], uint16(len(value)))
		dst = append(dst, lenBuf[:]...)
	}
	return append(dst, value...)
}
