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

// TnfKind is the 3-bit Type Name Format field of a record header.
type TnfKind byte

const (
	TnfEmpty       TnfKind = 0
	TnfWellKnown   TnfKind = 1
	TnfMediaType   TnfKind = 2
	TnfAbsoluteURI TnfKind = 3
	TnfExternal    TnfKind = 4
	TnfUnknown     TnfKind = 5
	TnfUnchanged   TnfKind = 6
	TnfReserved    TnfKind = 7
)

// RtdTag identifies the well-known record type of a decoded record, when
// recognized.
type RtdTag int

const (
	RtdUnknown RtdTag = iota
	RtdURI
	RtdText
	RtdSmartPoster
)

const (
	rtdURIType  = "U"
	rtdTextType = "T"
	rtdSPType   = "Sp"
)

// RecordFlags marks a record's position within its enclosing message.
type RecordFlags uint8

const (
	FlagFirst RecordFlags = 1 << iota
	FlagLast
)

const (
	headerMB      = 0x80
	headerME      = 0x40
	headerCF      = 0x20
	headerSR      = 0x10
	headerIL      = 0x08
	headerTNFMask = 0x07
)

// RecordCore is the generic, type-erased view of a decoded NDEF record.
// Type, ID, and Payload are sub-views of Raw and never overlap.
type RecordCore struct {
	TNF     TnfKind
	Flags   RecordFlags
	Raw     ByteView
	Type    ByteView
	ID      ByteView
	Payload ByteView
}

// Record is a fully decoded record: the generic core, the recognized
// well-known kind (if any), and the promoted variant value, one of
// *URIRecord, *TextRecord, or *SmartPosterRecord. Variant is nil for a
// generic record. Next links to the following record within the same
// message in decode order; it is nil for the last record.
type Record struct {
	RecordCore
	Kind    RtdTag
	Variant any
	Next    *Record
}

// recordHeader is the decoded, still-generic prefix of one record: its
// flag bits, TNF, and the type, payload, and ID lengths.
type recordHeader struct {
	mb, me, cf, sr, il bool
	tnf                TnfKind
	typeLen            int
	payloadLen         int
	idLen              int
}

// decodeRecordHeader parses the record prefix starting at data[0]. end is
// the offset of the first byte past this record (type+id+payload
// inclusive). CF set or a declared length beyond the buffer is an error;
// TNF==Reserved(7) is remapped to Empty.
func decodeRecordHeader(data []byte) (hdr recordHeader, end int, err error) {
	if len(data) < 2 {
		return recordHeader{}, 0, newDecodeError("decodeRecordHeader", ErrorKindTruncated, nil)
	}
	b0 := data[0]
	hdr.mb = b0&headerMB != 0
	hdr.me = b0&headerME != 0
	hdr.cf = b0&headerCF != 0
	hdr.sr = b0&headerSR != 0
	hdr.il = b0&headerIL != 0
	hdr.tnf = TnfKind(b0 & headerTNFMask)
	if hdr.tnf == TnfReserved {
		hdr.tnf = TnfEmpty
	}
	if hdr.cf {
		return recordHeader{}, 0, newDecodeError("decodeRecordHeader", ErrorKindMalformed, nil)
	}

	pos := 1
	hdr.typeLen = int(data[pos])
	pos++

	if hdr.sr {
		if pos >= len(data) {
			return recordHeader{}, 0, newDecodeError("decodeRecordHeader", ErrorKindTruncated, nil)
		}
		hdr.payloadLen = int(data[pos])
		pos++
	} else {
		if pos+4 > len(data) {
			return recordHeader{}, 0, newDecodeError("decodeRecordHeader", ErrorKindTruncated, nil)
		}
		hdr.payloadLen = int(binary.BigEndian.Uint32(data[pos : pos+4]))
		pos += 4
	}

	if hdr.il {
		if pos >= len(data) {
			return recordHeader{}, 0, newDecodeError("decodeRecordHeader", ErrorKindTruncated, nil)
		}
		hdr.idLen = int(data[pos])
		pos++
	}

	end = pos + hdr.typeLen + hdr.idLen + hdr.payloadLen
	if end > len(data) {
		return recordHeader{}, 0, newDecodeError("decodeRecordHeader", ErrorKindTruncated, nil)
	}
	return hdr, end, nil
}

// decodeOneRecord decodes the record at the start of data and returns its
// RecordCore plus the offset of the next record. Raw is a fresh copy of
// the consumed bytes, so the caller may reuse or free data afterwards;
// Type/ID/Payload are sub-views of that copy.
func decodeOneRecord(data []byte) (core RecordCore, next int, err error) {
	hdr, end, err := decodeRecordHeader(data)
	if err != nil {
		return RecordCore{}, 0, err
	}

	pos := 3
	if !hdr.sr {
		pos += 3
	}
	if hdr.il {
		pos++
	}

	typeStart := pos
	typeEnd := typeStart + hdr.typeLen
	idStart := typeEnd
	idEnd := idStart + hdr.idLen
	payloadStart := idEnd
	payloadEnd := payloadStart + hdr.payloadLen

	raw := make([]byte, end)
	copy(raw, data[:end])
	core = RecordCore{
		TNF:     hdr.tnf,
		Raw:     NewByteView(raw),
		Type:    NewByteView(raw[typeStart:typeEnd]),
		ID:      NewByteView(raw[idStart:idEnd]),
		Payload: NewByteView(raw[payloadStart:payloadEnd]),
	}
	if hdr.mb {
		core.Flags |= FlagFirst
	}
	if hdr.me {
		core.Flags |= FlagLast
	}
	return core, end, nil
}

// encodeRecordHeader appends the header bytes and type/id/payload to dst
// for a record with the given fields, choosing SR when payload fits in a
// byte and setting IL only when id is non-empty.
func encodeRecordHeader(dst []byte, tnf TnfKind, first, last bool, typ, id, payload []byte) []byte {
	b0 := byte(tnf) & headerTNFMask
	if first {
		b0 |= headerMB
	}
	if last {
		b0 |= headerME
	}
	sr := len(payload) <= 0xFF
	if sr {
		b0 |= headerSR
	}
	il := len(id) > 0
	if il {
		b0 |= headerIL
	}

	dst = append(dst, b0, byte(len(typ)))
	if sr {
		dst = append(dst, byte(len(payload)))
	} else {
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
		dst = append(dst, lenBuf[:]...)
	}
	if il {
		dst = append(dst, byte(len(id)))
	}
	dst = append(dst, typ...)
	dst = append(dst, id...)
	dst = append(dst, payload...)
	return dst
}

// classify determines the well-known RTD for a generic record, if any.
func classify(core RecordCore) RtdTag {
	if core.TNF != TnfWellKnown {
		return RtdUnknown
	}
	switch core.Type.String() {
	case rtdURIType:
		return RtdURI
	case rtdTextType:
		return RtdText
	case rtdSPType:
		return RtdSmartPoster
	default:
		return RtdUnknown
	}
}

// promote attempts variant decoding for a generic record in the order
// URI, Text, SmartPoster. Promotion failure is never fatal: the record
// simply stays generic with Kind RtdUnknown.
func promote(core RecordCore, hook LocaleHook) (kind RtdTag, variant any) {
	switch classify(core) {
	case RtdURI:
		if u, err := decodeURIPayload(core.Payload.Bytes()); err == nil {
			return RtdURI, u
		}
	case RtdText:
		if t, err := decodeTextPayload(core.Payload.Bytes()); err == nil {
			return RtdText, t
		}
	case RtdSmartPoster:
		if sp, err := decodeSmartPosterPayload(core.Payload.Bytes(), hook); err == nil {
			return RtdSmartPoster, sp
		}
	}
	return RtdUnknown, nil
}

// buildSimpleRecord encodes a single-record message (MB and ME both set)
// with the given TNF, type, and payload, then decodes it back so the
// returned Record's Type/ID/Payload views alias its own Raw like any
// parsed record, and attaches the already-known variant.
func buildSimpleRecord(tnf TnfKind, typ, payload []byte, kind RtdTag, variant any) (*Record, error) {
	raw := encodeRecordHeader(nil, tnf, true, true, typ, nil, payload)
	core, _, err := decodeOneRecord(raw)
	if err != nil {
		return nil, newDecodeError("buildSimpleRecord", ErrorKindMalformed, err)
	}
	core.Flags = FlagFirst | FlagLast
	return &Record{RecordCore: core, Kind: kind, Variant: variant}, nil
}

// Encode serializes r back into its exact wire form. For a record
// produced by ParseMessage/ParseTLV this simply returns a copy of Raw;
// for a record produced by a builder function Raw already holds the
// freshly encoded bytes.
func (r *Record) Encode() []byte {
	out := make([]byte, r.Raw.Len())
	copy(out, r.Raw.Bytes())
	return out
}
