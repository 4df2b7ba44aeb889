// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

// ContentType is the record layer tag naming a higher level protocol.
//
// https://tools.ietf.org/html/rfc4346#section-6.2.1
type ContentType uint8

// ContentType enums.
const (
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
)
