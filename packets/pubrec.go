// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"
)

// PubRec is an internal representation of the fields of the PUBREC MQTT packet.
type PubRec struct {
	FixedHeader
	ID uint16
}

func (pkt *PubRec) Type() byte {
	return PubRecType
}

func (pkt *PubRec) String() string {
	return fmt.Sprintf("%s packet_id: %d", pkt.FixedHeader, pkt.ID)
}
