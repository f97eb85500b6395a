// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"

	"github.com/absmach/mqttwire/packets/codec"
)

const headerFormat = "type: %s dup: %t qos: %d retain: %t"

// FixedHeader represents the first byte of the MQTT fixed header, present in
// all packets. The remaining length that follows it on the wire is computed
// by the encoder from the packet's contents and never stored here.
type FixedHeader struct {
	PacketType byte
	Dup        bool
	QoS        byte
	Retain     bool
}

func (fh FixedHeader) String() string {
	return fmt.Sprintf(headerFormat, typeName(fh.PacketType), fh.Dup, fh.QoS, fh.Retain)
}

// byte1 packs the packet type and flags into fixed-header byte 1:
// bits 7-4 type, bit 3 DUP, bits 2-1 QoS, bit 0 RETAIN.
func (fh FixedHeader) byte1() byte {
	return fh.PacketType<<4 | boolToByte(fh.Dup)<<3 | fh.QoS<<1 | boolToByte(fh.Retain)
}

// putHeader writes fixed-header byte 1 followed by the remaining length as a
// variable byte integer and returns the number of bytes written. The caller
// must have validated remaining with codec.VBILen.
func putHeader(b []byte, fh FixedHeader, remaining int) int {
	b[0] = fh.byte1()
	return 1 + codec.PutVBI(b[1:], remaining)
}
