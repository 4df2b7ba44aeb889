// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codec

// AppendLengthValue appends a lenWidth byte big-endian length of payload
// followed by payload itself. Outbound payload sizes are produced
// internally and always fit, so there is no failure path here.
func AppendLengthValue(buf, payload []byte, lenWidth int) []byte {
	size := len(payload)
	switch lenWidth {
	case 1:
		buf = append(buf, byte(size))
	case 2:
		buf = append(buf, byte(size>>8), byte(size))
	}

	return append(buf, payload...)
}

// AppendUint16 appends a big-endian 16 bit value.
func AppendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

// AppendUint24 appends the low 24 bits of v big-endian.
func AppendUint24(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>16), byte(v>>8), byte(v))
}
