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

/*
Package ndef provides a pure Go codec for the NFC Data Exchange Format.

NDEF is the binary record format used by NFC tags and peer-to-peer NFC
exchanges. This package decodes and encodes NDEF messages and the
Type-2-Tag TLV container that wraps them on tag memory, without touching
any transport or hardware layer.

Features:
  - TLV scanning for Type-2-Tag memory layouts (NULL/NDEF-Message/Terminator)
  - Record header parsing and serialization, short and long payload forms
  - URI, Text, and Smart Poster record decoding with round-trip encoding
  - Smart Poster aggregation with locale-driven title selection
  - Media-type validation

Basic Usage:

	records, err := ndef.ParseMessage(data)
	if err != nil {
	    log.Fatal(err)
	}
	for _, r := range records {
	    if u, ok := r.Variant.(*ndef.URIRecord); ok {
	        fmt.Println(u.URI)
	    }
	}

	rec, err := ndef.NewText("Hello, world", "en", ndef.EncodingUTF8)
	if err != nil {
	    log.Fatal(err)
	}
	out := rec.Encode()

Type-2-Tag Memory:

Tag memory wraps one or more NDEF messages in TLV blocks. Use ParseTLV
to walk an entire tag image and collect every message it contains,
skipping any message that fails to parse:

	records := ndef.ParseTLV(tagMemory)

Error Handling:

Decode failures are returned as *ndef.DecodeError, whose Kind can be
compared with errors.Is against the exported sentinel errors:

	if errors.Is(err, ndef.ErrTruncated) {
	    // buffer ended before a declared length was satisfied
	}

Thread Safety:

Records are immutable once constructed and safe for concurrent reads.
A caller-supplied LocaleHook must be safe to call concurrently if the
caller parses Smart Poster records from multiple goroutines.
*/
package ndef
