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

// buildChildMessage encodes child records back to back via encodeMessage,
// setting MB/ME on the first/last.
func buildChildMessage(t *testing.T, children ...encodedRecord) []byte {
	t.Helper()
	return encodeMessage(children)
}

func TestSmartPoster_TableFive(t *testing.T) {
	t.Parallel()
	uriPayload := encodeURIPayload("http://www.nfc-forum.org")
	enTitle, err := encodeTextPayload("Hello, world", "en-US", EncodingUTF8)
	require.NoError(t, err)
	fiTitle, err := encodeTextPayload("Morjens, maailma", "fi", EncodingUTF8)
	require.NoError(t, err)

	payload := buildChildMessage(t,
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdURIType), payload: uriPayload},
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdActionType), payload: []byte{0}},
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdTextType), payload: enTitle},
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdTextType), payload: fiTitle},
	)

	fiHook := func() string { return "fi" }
	sp, err := decodeSmartPosterPayload(payload, fiHook)
	require.NoError(t, err)
	assert.Equal(t, "http://www.nfc-forum.org", sp.URI)
	assert.Equal(t, ActionOpen, sp.Act)
	assert.Equal(t, "Morjens, maailma", sp.Title)
	assert.Equal(t, "fi", sp.Lang)

	enHook := func() string { return "en" }
	sp2, err := decodeSmartPosterPayload(payload, enHook)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", sp2.Title)
}

func TestSmartPoster_MissingURIFails(t *testing.T) {
	t.Parallel()
	titlePayload, err := encodeTextPayload("No URI here", "en", EncodingUTF8)
	require.NoError(t, err)
	payload := buildChildMessage(t,
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdTextType), payload: titlePayload},
	)
	_, err = decodeSmartPosterPayload(payload, DefaultLocaleHook)
	require.Error(t, err)
	kind, ok := errKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindComposite, kind)
}

func TestSmartPoster_DuplicateURIFails(t *testing.T) {
	t.Parallel()
	uriPayload := encodeURIPayload("https://a.example")
	uriPayload2 := encodeURIPayload("https://b.example")
	payload := buildChildMessage(t,
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdURIType), payload: uriPayload},
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdURIType), payload: uriPayload2},
	)
	_, err := decodeSmartPosterPayload(payload, DefaultLocaleHook)
	require.Error(t, err)
}

func TestSmartPoster_SizeAndType(t *testing.T) {
	t.Parallel()
	uriPayload := encodeURIPayload("https://a.example")
	payload := buildChildMessage(t,
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdURIType), payload: uriPayload},
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdSizeType), payload: []byte{0x00, 0x00, 0x04, 0x00}},
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdTypeType), payload: []byte("text/plain")},
	)
	sp, err := decodeSmartPosterPayload(payload, DefaultLocaleHook)
	require.NoError(t, err)
	assert.Equal(t, uint32(1024), sp.Size)
	assert.Equal(t, "text/plain", sp.Type)
}

func TestSmartPoster_IconImagePrecedesVideo(t *testing.T) {
	t.Parallel()
	uriPayload := encodeURIPayload("https://a.example")
	payload := buildChildMessage(t,
		encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdURIType), payload: uriPayload},
		encodedRecord{tnf: TnfMediaType, typ: []byte("video/mp4"), payload: []byte{1, 2, 3}},
		encodedRecord{tnf: TnfMediaType, typ: []byte("image/png"), payload: []byte{4, 5, 6}},
	)
	sp, err := decodeSmartPosterPayload(payload, DefaultLocaleHook)
	require.NoError(t, err)
	require.NotNil(t, sp.Icon)
	assert.Equal(t, "image/png", sp.Icon.Mime)
}

func TestNewSmartPoster_RoundTrip(t *testing.T) {
	t.Parallel()
	rec, err := NewSmartPoster(SmartPosterFields{
		URI:   "https://example.com",
		Title: "Example",
		Lang:  "en",
		Type:  "text/html",
		Size:  2048,
		Act:   ActionSave,
		Icon:  &Icon{Mime: "image/png", Data: []byte{1, 2, 3}},
	})
	require.NoError(t, err)

	records, err := ParseMessage(rec.Encode())
	require.NoError(t, err)
	require.Len(t, records, 1)

	sp, ok := records[0].Variant.(*SmartPosterRecord)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", sp.URI)
	assert.Equal(t, "Example", sp.Title)
	assert.Equal(t, "en", sp.Lang)
	assert.Equal(t, "text/html", sp.Type)
	assert.Equal(t, uint32(2048), sp.Size)
	assert.Equal(t, ActionSave, sp.Act)
	require.NotNil(t, sp.Icon)
	assert.Equal(t, "image/png", sp.Icon.Mime)
}

func TestNewSmartPoster_RequiresURI(t *testing.T) {
	t.Parallel()
	_, err := NewSmartPoster(SmartPosterFields{})
	require.Error(t, err)
	kind, ok := errKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindComposite, kind)
}

func TestNewSmartPoster_InvalidMediaType(t *testing.T) {
	t.Parallel()
	_, err := NewSmartPoster(SmartPosterFields{URI: "https://example.com", Type: "not-a-mime"})
	require.Error(t, err)
}
