// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

// Disconnect is an internal representation of the fields of the DISCONNECT MQTT packet.
type Disconnect struct {
	FixedHeader
}

func (pkt *Disconnect) Type() byte {
	return DisconnectType
}

func (pkt *Disconnect) String() string {
	return pkt.FixedHeader.String()
}
