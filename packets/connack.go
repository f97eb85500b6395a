// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"
)

// CONNACK return codes.
const (
	Accepted                        = 0x00
	ErrRefusedBadProtocolVersion    = 0x01
	ErrRefusedIDRejected            = 0x02
	ErrRefusedServerUnavailable     = 0x03
	ErrRefusedBadUsernameOrPassword = 0x04
	ErrRefusedNotAuthorized         = 0x05
)

// ConnackReturnCodes maps CONNACK return codes to a string representation.
var ConnackReturnCodes = map[uint8]string{
	0: "Connection Accepted",
	1: "Connection Refused: Bad Protocol Version",
	2: "Connection Refused: Client Identifier Rejected",
	3: "Connection Refused: Server Unavailable",
	4: "Connection Refused: Username or Password in unknown format",
	5: "Connection Refused: Not Authorised",
}

// ConnAck is an internal representation of the fields of the CONNACK MQTT packet.
type ConnAck struct {
	FixedHeader
	SessionPresent bool
	ReasonCode     byte
}

func (pkt *ConnAck) Type() byte {
	return ConnAckType
}

func (pkt *ConnAck) String() string {
	return fmt.Sprintf("%s session_present: %t reason_code: %d", pkt.FixedHeader, pkt.SessionPresent, pkt.ReasonCode)
}

// encode produces the fixed 4-byte CONNACK: header byte, remaining length 2,
// session-present flag and return code.
func (pkt *ConnAck) encode(a Allocator) ([]byte, error) {
	buf := a.Allocate(4)
	buf[0] = pkt.byte1()
	buf[1] = 2
	buf[2] = boolToByte(pkt.SessionPresent)
	buf[3] = pkt.ReasonCode
	return buf, nil
}
