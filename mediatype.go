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

import "strings"

// mediatypeSeparators are the RFC 2045 tspecials excluded from a token.
const mediatypeSeparators = "()<>@,;:\"/[]?="

// ValidMediatype reports whether s is a well-formed "type/subtype" media
// type string. In wildcard mode, "*" is permitted as the subtype or as
// both tokens; in non-wildcard mode any "*" is rejected. A nil or
// non-ASCII string is always invalid.
func ValidMediatype(s string, allowWildcard bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}

	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return false
	}
	typ, subtype := s[:slash], s[slash+1:]
	if strings.IndexByte(subtype, '/') >= 0 {
		return false
	}
	if typ == "*" && subtype != "*" {
		return false
	}

	if !validMediatypeToken(typ, allowWildcard) {
		return false
	}
	return validMediatypeToken(subtype, allowWildcard)
}

func validMediatypeToken(tok string, allowWildcard bool) bool {
	if tok == "" {
		return false
	}
	if tok == "*" {
		return allowWildcard
	}
	if !allowWildcard && strings.IndexByte(tok, '*') >= 0 {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c <= 0x20 || c == 0x7F {
			return false
		}
		if strings.IndexByte(mediatypeSeparators, c) >= 0 {
			return false
		}
	}
	return true
}

// NewMediaType builds a standalone TNF=MediaType record whose type field
// is the given MIME string and whose payload is the raw media bytes.
func NewMediaType(mime string, payload []byte) (*Record, error) {
	if !ValidMediatype(mime, true) {
		return nil, newDecodeError("NewMediaType", ErrorKindBadField, nil)
	}
	return buildSimpleRecord(TnfMediaType, []byte(mime), payload, RtdUnknown, nil)
}
