// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"

	"github.com/absmach/mqttwire/packets/codec"
)

// Subscription is a single (topic filter, requested QoS) pair in a
// SUBSCRIBE payload.
type Subscription struct {
	Topic string
	QoS   byte
}

// Subscribe is an internal representation of the fields of the SUBSCRIBE MQTT packet.
type Subscribe struct {
	FixedHeader
	ID            uint16
	Subscriptions []Subscription
}

func (pkt *Subscribe) Type() byte {
	return SubscribeType
}

func (pkt *Subscribe) String() string {
	return fmt.Sprintf("%s packet_id: %d subscriptions: %v", pkt.FixedHeader, pkt.ID, pkt.Subscriptions)
}

func (pkt *Subscribe) encode(a Allocator) ([]byte, error) {
	var payloadSize int
	for _, sub := range pkt.Subscriptions {
		n, err := codec.StringLen(sub.Topic)
		if err != nil {
			return nil, err
		}
		payloadSize += n + 1 // requested QoS byte follows each filter
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
	for _, sub := range pkt.Subscriptions {
		off += codec.PutString(buf[off:], sub.Topic)
		buf[off] = sub.QoS
		off++
	}
	return buf[:off], nil
}
