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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextPayload_UTF8(t *testing.T) {
	t.Parallel()
	payload := append([]byte{0x02, 'e', 'n'}, "Hello, world"...)
	got, err := decodeTextPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", got.Text)
	assert.Equal(t, "en", got.Lang)
	assert.Equal(t, EncodingUTF8, got.Encoding)
}

func TestDecodeTextPayload_LangNormalizedLowercase(t *testing.T) {
	t.Parallel()
	payload := append([]byte{0x05, 'E', 'N', '-', 'U', 'S'}, "hi"...)
	got, err := decodeTextPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "en-us", got.Lang)
}

func TestDecodeTextPayload_UTF16BigEndianDefault(t *testing.T) {
	t.Parallel()
	// "hi" in UTF-16BE without a BOM.
	payload := []byte{0x82, 'f', 'i', 0x00, 'h', 0x00, 'i'}
	got, err := decodeTextPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, EncodingUTF16, got.Encoding)
}

func TestDecodeTextPayload_UTF16WithBOM(t *testing.T) {
	t.Parallel()
	payload := []byte{0x82, 'f', 'i', 0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}
	got, err := decodeTextPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Text)
}

func TestDecodeTextPayload_LangLenOverrunsPayload(t *testing.T) {
	t.Parallel()
	_, err := decodeTextPayload([]byte{0x3F, 'e', 'n'})
	require.Error(t, err)
	kind, ok := errKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindMalformed, kind)
}

func TestDecodeTextPayload_Empty(t *testing.T) {
	t.Parallel()
	_, err := decodeTextPayload(nil)
	require.Error(t, err)
}

func TestDecodeTextPayload_InvalidUTF8(t *testing.T) {
	t.Parallel()
	payload := []byte{0x02, 'e', 'n', 0xFF, 0xFE}
	_, err := decodeTextPayload(payload)
	require.Error(t, err)
	kind, ok := errKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindInvalidUTF8, kind)
}

func TestDecodeTextPayload_UTF16OddLength(t *testing.T) {
	t.Parallel()
	payload := []byte{0x82, 'f', 'i', 0x00, 'h', 0x00}
	_, err := decodeTextPayload(payload)
	require.Error(t, err)
	kind, ok := errKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindInvalidUTF8, kind)
}

func TestNewText_RoundTripUTF8(t *testing.T) {
	t.Parallel()
	rec, err := NewText("Hello, world", "en-US", EncodingUTF8)
	require.NoError(t, err)

	records, err := ParseMessage(rec.Encode())
	require.NoError(t, err)
	require.Len(t, records, 1)

	got, ok := records[0].Variant.(*TextRecord)
	require.True(t, ok)
	assert.Equal(t, "Hello, world", got.Text)
	assert.Equal(t, "en-us", got.Lang)
}

func TestNewText_RoundTripUTF16(t *testing.T) {
	t.Parallel()
	rec, err := NewText("Morjens, maailma", "fi", EncodingUTF16)
	require.NoError(t, err)

	records, err := ParseMessage(rec.Encode())
	require.NoError(t, err)
	got, ok := records[0].Variant.(*TextRecord)
	require.True(t, ok)
	assert.Equal(t, "Morjens, maailma", got.Text)
	assert.Equal(t, EncodingUTF16, got.Encoding)
}

func TestNewText_LangTooLong(t *testing.T) {
	t.Parallel()
	longLang := make([]byte, 0x40)
	for i := range longLang {
		longLang[i] = 'a'
	}
	_, err := NewText("x", string(longLang), EncodingUTF8)
	require.Error(t, err)
	kind, ok := errKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindBadField, kind)
}

func FuzzDecodeTextPayload(f *testing.F) {
	f.Add([]byte{0x02, 'e', 'n', 'h', 'i'})
	f.Add([]byte{0x82, 'e', 'n', 0x00, 'h', 0x00, 'i'})
	f.Add([]byte{})
	f.Add([]byte{0x3F})

	f.Fuzz(func(t *testing.T, payload []byte) {
		rec, err := decodeTextPayload(payload)
		if err != nil {
			if rec != nil {
				t.Errorf("decodeTextPayload returned both error and record for %x", payload)
			}
			return
		}
		langLen := int(payload[0] & textStatusLangLen)
		if 1+langLen > len(payload) {
			t.Errorf("accepted payload with language length overrunning buffer: %x", payload)
		}
	})
}
