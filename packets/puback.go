// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"
)

// PubAck is an internal representation of the fields of the PUBACK MQTT packet.
type PubAck struct {
	FixedHeader
	ID uint16
}

func (pkt *PubAck) Type() byte {
	return PubAckType
}

func (pkt *PubAck) String() string {
	return fmt.Sprintf("%s packet_id: %d", pkt.FixedHeader, pkt.ID)
}
