// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"

	"github.com/absmach/mqttwire/packets/codec"
)

// Unsubscribe is an internal representation of the fields of the UNSUBSCRIBE MQTT packet.
type Unsubscribe struct {
	FixedHeader
	ID     uint16
	Topics []string
}

func (pkt *Unsubscribe) Type() byte {
	return UnsubscribeType
}

func (pkt *Unsubscribe) String() string {
	return fmt.Sprintf("%s packet_id: %d topics: %v", pkt.FixedHeader, pkt.ID, pkt.Topics)
}

func (pkt *Unsubscribe) encode(a Allocator) ([]byte, error) {
	var payloadSize int
	for _, topic := range pkt.Topics {
		n, err := codec.StringLen(topic)
		if err != nil {
			return nil, err
		}
		payloadSize += n
	}
	remaining := 2 + payloadSize
	vbiLen, err := codec.VBILen(remaining)
	if err != nil {
		return nil, err
	}

	buf := a.Allocate(1 + vbiLen + remaining)
	off := putHeader(buf, pkt.FixedHeader, remaining)
	codec.PutUint16(buf[off:], pkt.ID)
	off += 2
	for _, topic := range pkt.Topics {
		off += codec.PutString(buf[off:], topic)
	}
	return buf[:off], nil
}
