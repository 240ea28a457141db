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
	"os"
	"strings"

	"golang.org/x/text/language"
)

// LocaleHook returns the caller's preferred locale tag (e.g. "en-US"), or
// empty if none is known. It is invoked at most once per Smart Poster
// decode and its result must never be cached by the caller across calls,
// since the ambient locale may change between calls.
type LocaleHook func() string

// DefaultLocaleHook reads the ambient locale from the process environment
// the way a typical POSIX program does (LC_ALL, then LANG), without
// caching: every call re-reads the environment. It is never installed as
// global mutable state; ParseMessage and ParseTLV use it as their hook,
// and ParseMessageWithLocale/ParseTLVWithLocale accept any other hook.
func DefaultLocaleHook() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if tag := strings.SplitN(v, ".", 2)[0]; tag != "" && tag != "C" && tag != "POSIX" {
			return strings.ReplaceAll(tag, "_", "-")
		}
	}
	return ""
}

// selectTitle applies the title-selection rule: exact tag match, then
// primary-subtag match, then the first candidate. candidates must be
// non-empty.
func selectTitle(candidates []*TextRecord, locale string) *TextRecord {
	if locale == "" {
		return candidates[0]
	}

	wantTag, err := language.Parse(locale)
	if err != nil {
		return matchByExactString(candidates, locale)
	}
	wantBase, _ := wantTag.Base()

	for _, c := range candidates {
		if strings.EqualFold(c.Lang, locale) {
			return c
		}
	}

	for _, c := range candidates {
		tag, err := language.Parse(c.Lang)
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		if base == wantBase {
			return c
		}
	}

	return candidates[0]
}

// matchByExactString is the fallback path when locale isn't a parseable
// BCP-47 tag: exact match, then primary-subtag (text before '-') match.
func matchByExactString(candidates []*TextRecord, locale string) *TextRecord {
	for _, c := range candidates {
		if strings.EqualFold(c.Lang, locale) {
			return c
		}
	}
	primary := strings.SplitN(locale, "-", 2)[0]
	for _, c := range candidates {
		if strings.HasPrefix(c.Lang, primary) {
			return c
		}
	}
	return candidates[0]
}
