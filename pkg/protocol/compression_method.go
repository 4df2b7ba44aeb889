// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

// CompressionMethodID is the ID for a CompressionMethod.
type CompressionMethodID uint8

// CompressionMethodNull is the only method this package ever selects.
// Clients may offer others; they are carried by value and never applied.
const CompressionMethodNull CompressionMethodID = 0
