// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"

	"github.com/absmach/mqttwire/packets/codec"
)

// Publish is an internal representation of the fields of the PUBLISH MQTT packet.
type Publish struct {
	FixedHeader
	TopicName string
	ID        uint16
	Payload   []byte
}

func (pkt *Publish) Type() byte {
	return PublishType
}

func (pkt *Publish) String() string {
	return fmt.Sprintf("%s topic_name: %s packet_id: %d payload_len: %d", pkt.FixedHeader, pkt.TopicName, pkt.ID, len(pkt.Payload))
}

func (pkt *Publish) encode(a Allocator) ([]byte, error) {
	topicLen, err := codec.StringLen(pkt.TopicName)
	if err != nil {
		return nil, err
	}

	// The packet id is present only above QoS 0.
	varHeaderSize := topicLen
	if pkt.QoS > 0 {
		varHeaderSize += 2
	}
	remaining := varHeaderSize + len(pkt.Payload)
	vbiLen, err := codec.VBILen(remaining)
	if err != nil {
		return nil, err
	}

	buf := a.Allocate(1 + vbiLen + remaining)
	off := putHeader(buf, pkt.FixedHeader, remaining)
	off += codec.PutString(buf[off:], pkt.TopicName)
	if pkt.QoS > 0 {
		codec.PutUint16(buf[off:], pkt.ID)
		off += 2
	}
	off += copy(buf[off:], pkt.Payload)
	return buf[:off], nil
}
