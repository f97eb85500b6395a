// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"
)

// UnsubAck is an internal representation of the fields of the UNSUBACK MQTT packet.
type UnsubAck struct {
	FixedHeader
	ID uint16
}

func (pkt *UnsubAck) Type() byte {
	return UnsubAckType
}

func (pkt *UnsubAck) String() string {
	return fmt.Sprintf("%s packet_id: %d", pkt.FixedHeader, pkt.ID)
}
