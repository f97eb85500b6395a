// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"
)

// PubComp is an internal representation of the fields of the PUBCOMP MQTT packet.
type PubComp struct {
	FixedHeader
	ID uint16
}

func (pkt *PubComp) Type() byte {
	return PubCompType
}

func (pkt *PubComp) String() string {
	return fmt.Sprintf("%s packet_id: %d", pkt.FixedHeader, pkt.ID)
}
