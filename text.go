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

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// TextEncoding selects the payload encoding of a Text record.
type TextEncoding int

const (
	EncodingUTF8 TextEncoding = iota
	EncodingUTF16
)

const (
	textStatusUTF16   = 0x80
	textStatusLangLen = 0x3F
)

// TextRecord is the decoded form of a WellKnown "T" record.
type TextRecord struct {
	Text     string
	Lang     string
	Encoding TextEncoding
}

// decodeTextPayload parses a Text record payload: a status byte, an
// ASCII language tag of the declared length, and the remaining text in
// the declared encoding. UTF-16 text honors a leading BOM; absent a BOM
// it is assumed big-endian.
func decodeTextPayload(payload []byte) (*TextRecord, error) {
	if len(payload) == 0 {
		return nil, newDecodeError("decodeTextPayload", ErrorKindTruncated, nil)
	}
	status := payload[0]
	langLen := int(status & textStatusLangLen)
	if 1+langLen > len(payload) {
		return nil, newDecodeError("decodeTextPayload", ErrorKindMalformed, nil)
	}
	lang := strings.ToLower(string(payload[1 : 1+langLen]))
	textBytes := payload[1+langLen:]

	enc := EncodingUTF8
	if status&textStatusUTF16 != 0 {
		enc = EncodingUTF16
	}

	var text string
	if enc == EncodingUTF8 {
		if !utf8.Valid(textBytes) {
			return nil, newDecodeError("decodeTextPayload", ErrorKindInvalidUTF8, nil)
		}
		text = string(textBytes)
	} else {
		decoded, err := decodeUTF16BOM(textBytes)
		if err != nil {
			return nil, newDecodeError("decodeTextPayload", ErrorKindInvalidUTF8, err)
		}
		text = decoded
	}

	return &TextRecord{Text: text, Lang: lang, Encoding: enc}, nil
}

// decodeUTF16BOM decodes b as UTF-16, honoring a leading byte-order mark
// if present and defaulting to big-endian otherwise. An odd byte count
// cannot be valid UTF-16, and the transformer would silently substitute
// a replacement character for the dangling byte, so reject it up front.
func decodeUTF16BOM(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", newDecodeError("decodeUTF16BOM", ErrorKindInvalidUTF8, nil)
	}
	e := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encodeUTF16BE encodes s as big-endian UTF-16 without a BOM.
func encodeUTF16BE(s string) ([]byte, error) {
	e := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	return e.NewEncoder().Bytes([]byte(s))
}

// encodeTextPayload builds a Text record payload for the given text,
// language tag, and encoding.
func encodeTextPayload(text, lang string, enc TextEncoding) ([]byte, error) {
	if len(lang) > textStatusLangLen {
		return nil, newDecodeError("encodeTextPayload", ErrorKindBadField, nil)
	}
	status := byte(len(lang))
	var textBytes []byte
	switch enc {
	case EncodingUTF8:
		if !utf8.ValidString(text) {
			return nil, newDecodeError("encodeTextPayload", ErrorKindInvalidUTF8, nil)
		}
		textBytes = []byte(text)
	case EncodingUTF16:
		status |= textStatusUTF16
		b, err := encodeUTF16BE(text)
		if err != nil {
			return nil, newDecodeError("encodeTextPayload", ErrorKindInvalidUTF8, err)
		}
		textBytes = b
	}

	payload := make([]byte, 0, 1+len(lang)+len(textBytes))
	payload = append(payload, status)
	payload = append(payload, lang...)
	payload = append(payload, textBytes...)
	return payload, nil
}

// NewText builds a standalone WellKnown "T" record.
func NewText(text, lang string, enc TextEncoding) (*Record, error) {
	payload, err := encodeTextPayload(text, lang, enc)
	if err != nil {
		return nil, err
	}
	variant := &TextRecord{Text: text, Lang: strings.ToLower(lang), Encoding: enc}
	return buildSimpleRecord(TnfWellKnown, []byte(rtdTextType), payload, RtdText, variant)
}
