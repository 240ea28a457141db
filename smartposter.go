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
	"encoding/binary"
	"strings"
)

// Action is the Smart Poster recommended handling for its URI.
type Action int

const (
	ActionDefault Action = iota
	ActionOpen
	ActionSave
	ActionEdit
)

const (
	rtdActionType = "act"
	rtdSizeType   = "s"
	rtdTypeType   = "t"
)

// Icon is a Smart Poster's optional embedded image or video preview.
type Icon struct {
	Mime string
	Data []byte
}

// SmartPosterRecord is the decoded, aggregated form of a WellKnown "Sp"
// record.
type SmartPosterRecord struct {
	URI   string
	Title string
	Lang  string
	Type  string
	Size  uint32
	Act   Action
	Icon  *Icon
}

// SmartPosterFields are the inputs to NewSmartPoster. URI is required;
// every other field is optional and omitted from the wire encoding when
// unset (Title/Lang empty, Type empty, Size zero, Act Default, Icon nil).
type SmartPosterFields struct {
	URI   string
	Title string
	Lang  string
	Type  string
	Size  uint32
	Act   Action
	Icon  *Icon
}

// decodeSmartPosterPayload parses a Smart Poster payload, itself a
// nested NDEF message, and aggregates its child records per the fixed
// rules: exactly one URI child, at most one each of Action/Size/Type,
// locale-driven title selection among Text children, and a precedence
// rule for Icon children.
func decodeSmartPosterPayload(payload []byte, hook LocaleHook) (*SmartPosterRecord, error) {
	children, err := parseMessage(payload, hook)
	if err != nil {
		return nil, newDecodeError("decodeSmartPosterPayload", ErrorKindComposite, err)
	}

	var uri *URIRecord
	var uriCount int
	var titles []*TextRecord
	act := ActionDefault
	var size uint32
	var haveSize bool
	var mime string
	var haveMime bool
	var bestIcon *Icon
	var bestIconIsImage bool

	for _, child := range children {
		if child.TNF == TnfEmpty {
			continue
		}
		switch {
		case child.Kind == RtdURI:
			uriCount++
			if uriCount == 1 {
				uri = child.Variant.(*URIRecord)
			}
		case child.Kind == RtdText:
			titles = append(titles, child.Variant.(*TextRecord))
		case child.TNF == TnfWellKnown && child.Type.String() == rtdActionType:
			if p := child.Payload.Bytes(); len(p) == 1 && act == ActionDefault {
				switch p[0] {
				case 0:
					act = ActionOpen
				case 1:
					act = ActionSave
				case 2:
					act = ActionEdit
				}
			}
		case child.TNF == TnfWellKnown && child.Type.String() == rtdSizeType:
			if p := child.Payload.Bytes(); len(p) == 4 && !haveSize {
				size = binary.BigEndian.Uint32(p)
				haveSize = true
			}
		case child.TNF == TnfWellKnown && child.Type.String() == rtdTypeType:
			if !haveMime {
				candidate := child.Payload.String()
				if ValidMediatype(candidate, false) {
					mime = candidate
					haveMime = true
				}
			}
		case child.TNF == TnfMediaType:
			m := child.Type.String()
			isImage := strings.HasPrefix(m, "image/")
			isVideo := strings.HasPrefix(m, "video/")
			if !isImage && !isVideo {
				continue
			}
			if bestIcon == nil || (isImage && !bestIconIsImage) {
				data := make([]byte, child.Payload.Len())
				copy(data, child.Payload.Bytes())
				bestIcon = &Icon{Mime: m, Data: data}
				bestIconIsImage = isImage
			}
		}
	}

	if uriCount != 1 {
		return nil, newDecodeError("decodeSmartPosterPayload", ErrorKindComposite, nil)
	}

	sp := &SmartPosterRecord{URI: uri.URI, Type: mime, Size: size, Act: act, Icon: bestIcon}
	if len(titles) > 0 {
		locale := ""
		if hook != nil {
			locale = hook()
		}
		chosen := selectTitle(titles, locale)
		sp.Title = chosen.Text
		sp.Lang = chosen.Lang
	}
	return sp, nil
}

// NewSmartPoster builds a WellKnown "Sp" record aggregating fields,
// emitting child records in the fixed order URI, Title, Action, Size,
// Type, Icon and omitting any field left unset.
func NewSmartPoster(fields SmartPosterFields) (*Record, error) {
	if fields.URI == "" {
		return nil, newDecodeError("NewSmartPoster", ErrorKindComposite, nil)
	}

	var children []encodedRecord

	uriPayload := encodeURIPayload(fields.URI)
	children = append(children, encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdURIType), payload: uriPayload})

	if fields.Title != "" {
		titlePayload, err := encodeTextPayload(fields.Title, fields.Lang, EncodingUTF8)
		if err != nil {
			return nil, err
		}
		children = append(children, encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdTextType), payload: titlePayload})
	}

	if fields.Act != ActionDefault {
		var b byte
		switch fields.Act {
		case ActionOpen:
			b = 0
		case ActionSave:
			b = 1
		case ActionEdit:
			b = 2
		}
		children = append(children, encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdActionType), payload: []byte{b}})
	}

	if fields.Size != 0 {
		sizeBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(sizeBytes, fields.Size)
		children = append(children, encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdSizeType), payload: sizeBytes})
	}

	if fields.Type != "" {
		if !ValidMediatype(fields.Type, false) {
			return nil, newDecodeError("NewSmartPoster", ErrorKindBadField, nil)
		}
		children = append(children, encodedRecord{tnf: TnfWellKnown, typ: []byte(rtdTypeType), payload: []byte(fields.Type)})
	}

	if fields.Icon != nil {
		children = append(children, encodedRecord{tnf: TnfMediaType, typ: []byte(fields.Icon.Mime), payload: fields.Icon.Data})
	}

	payload := encodeMessage(children)
	variant := &SmartPosterRecord{
		URI: fields.URI, Title: fields.Title, Lang: fields.Lang,
		Type: fields.Type, Size: fields.Size, Act: fields.Act, Icon: fields.Icon,
	}
	return buildSimpleRecord(TnfWellKnown, []byte(rtdSPType), payload, RtdSmartPoster, variant)
}
