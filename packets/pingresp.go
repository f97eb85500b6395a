// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

// PingResp is an internal representation of the fields of the PINGRESP MQTT packet.
type PingResp struct {
	FixedHeader
}

func (pkt *PingResp) Type() byte {
	return PingRespType
}

func (pkt *PingResp) String() string {
	return pkt.FixedHeader.String()
}
