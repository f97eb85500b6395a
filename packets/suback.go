// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"

	"github.com/absmach/mqttwire/packets/codec"
)

// SubAck is an internal representation of the fields of the SUBACK MQTT packet.
type SubAck struct {
	FixedHeader
	ID          uint16
	ReturnCodes []byte
}

func (pkt *SubAck) Type() byte {
	return SubAckType
}

func (pkt *SubAck) String() string {
	return fmt.Sprintf("%s packet_id: %d return_codes: %v", pkt.FixedHeader, pkt.ID, pkt.ReturnCodes)
}

func (pkt *SubAck) encode(a Allocator) ([]byte, error) {
	remaining := 2 + len(pkt.ReturnCodes)
	vbiLen, err := codec.VBILen(remaining)
	if err != nil {
		return nil, err
	}

	buf := a.Allocate(1 + vbiLen + remaining)
	off := putHeader(buf, pkt.FixedHeader, remaining)
	codec.PutUint16(buf[off:], pkt.ID)
	off += 2
	off += copy(buf[off:], pkt.ReturnCodes)
	return buf[:off], nil
}
