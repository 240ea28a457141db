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

// ParseMessage decodes data as a single contiguous NDEF message and
// returns its records in decode order. A chunked record, or any header
// decode failure, rejects the whole message: ParseMessage returns an
// error and no records.
func ParseMessage(data []byte) ([]*Record, error) {
	return parseMessage(data, DefaultLocaleHook)
}

// ParseMessageWithLocale behaves like ParseMessage but threads hook
// through to any Smart Poster child records for title selection.
func ParseMessageWithLocale(data []byte, hook LocaleHook) ([]*Record, error) {
	return parseMessage(data, hook)
}

func parseMessage(data []byte, hook LocaleHook) ([]*Record, error) {
	if len(data) == 0 {
		return nil, newDecodeError("ParseMessage", ErrorKindTruncated, nil)
	}

	var records []*Record
	pos := 0
	for pos < len(data) {
		core, next, err := decodeOneRecord(data[pos:])
		if err != nil {
			return nil, newDecodeError("ParseMessage", ErrorKindMalformed, err)
		}
		kind, variant := promote(core, hook)
		records = append(records, &Record{RecordCore: core, Kind: kind, Variant: variant})
		pos += next
	}

	if len(records) == 0 {
		return nil, newDecodeError("ParseMessage", ErrorKindMalformed, nil)
	}

	for _, r := range records {
		r.Flags &^= FlagFirst | FlagLast
	}
	records[0].Flags |= FlagFirst
	records[len(records)-1].Flags |= FlagLast
	for i := 0; i < len(records)-1; i++ {
		records[i].Next = records[i+1]
	}
	return records, nil
}

// encodeMessage serializes records back-to-back into a single contiguous
// byte slice, setting MB on the first and ME on the last.
func encodeMessage(records []encodedRecord) []byte {
	var out []byte
	for i, r := range records {
		out = encodeRecordHeader(out, r.tnf, i == 0, i == len(records)-1, r.typ, r.id, r.payload)
	}
	return out
}

// encodedRecord is the minimal shape a builder needs to hand to
// encodeMessage: a TNF plus the three raw byte slices of a record.
type encodedRecord struct {
	tnf     TnfKind
	typ     []byte
	id      []byte
	payload []byte
}

// ParseTLV walks an entire Type-2-Tag memory region, parsing every
// NdefMessage TLV block it finds as an independent message and
// concatenating the resulting records. A message that fails to parse is
// skipped silently; scanning continues at the next TLV. Terminator ends
// the scan.
func ParseTLV(data []byte) []*Record {
	return parseTLV(data, DefaultLocaleHook)
}

// ParseTLVWithLocale behaves like ParseTLV but threads hook through to
// Smart Poster decoding.
func ParseTLVWithLocale(data []byte, hook LocaleHook) []*Record {
	return parseTLV(data, hook)
}

func parseTLV(data []byte, hook LocaleHook) []*Record {
	var all []*Record
	cursor := NewTLVCursor(data)
	for {
		tlvType, value, ok, err := TLVNext(cursor)
		if err != nil || !ok {
			return all
		}
		if tlvType != TLVNDEFMessage {
			continue
		}
		records, err := parseMessage(value.Bytes(), hook)
		if err != nil {
			continue
		}
		all = append(all, records...)
	}
}
