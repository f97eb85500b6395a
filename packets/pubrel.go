// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"
)

// PubRel is an internal representation of the fields of the PUBREL MQTT
// packet. Its fixed header carries QoS 1 flag bits on the wire; NewPacket
// presets them.
type PubRel struct {
	FixedHeader
	ID uint16
}

func (pkt *PubRel) Type() byte {
	return PubRelType
}

func (pkt *PubRel) String() string {
	return fmt.Sprintf("%s packet_id: %d", pkt.FixedHeader, pkt.ID)
}
