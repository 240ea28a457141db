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

// ByteView is a non-owning view over a read-only byte slice. It is valid
// only as long as the backing array it was taken from is alive; callers
// that need to keep a view beyond the lifetime of the original buffer
// should copy the slice returned by Bytes(), which does not copy.
type ByteView struct {
	bytes []byte
}

// NewByteView wraps b without copying it.
func NewByteView(b []byte) ByteView {
	return ByteView{bytes: b}
}

// Len returns the number of bytes in the view.
func (v ByteView) Len() int {
	return len(v.bytes)
}

// Bytes returns the underlying bytes. The caller must not mutate them.
func (v ByteView) Bytes() []byte {
	return v.bytes
}

// Slice returns the sub-view [lo:hi), re-slicing the same backing array.
func (v ByteView) Slice(lo, hi int) ByteView {
	return ByteView{bytes: v.bytes[lo:hi]}
}

// String decodes the view as UTF-8, without validation.
func (v ByteView) String() string {
	return string(v.bytes)
}
