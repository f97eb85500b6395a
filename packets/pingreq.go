// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

// PingReq is an internal representation of the fields of the PINGREQ MQTT packet.
type PingReq struct {
	FixedHeader
}

func (pkt *PingReq) Type() byte {
	return PingReqType
}

func (pkt *PingReq) String() string {
	return pkt.FixedHeader.String()
}
