// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package packets models MQTT control packets and serializes them to their
// exact wire representation for protocol versions 3.1, 3.1.1 and 5.
// It owns no network I/O and no decode path: one packet in, one contiguous
// byte slice out.
package packets

import (
	"errors"
	"fmt"
)

// Protocol version constants.
const (
	V31  byte = 0x03 // MQTT 3.1
	V311 byte = 0x04 // MQTT 3.1.1
	V5   byte = 0x05 // MQTT 5.0
)

// Packet type constants.
const (
	ConnectType = iota + 1 // 0 value is forbidden
	ConnAckType
	PublishType
	PubAckType
	PubRecType
	PubRelType
	PubCompType
	SubscribeType
	SubAckType
	UnsubscribeType
	UnsubAckType
	PingReqType
	PingRespType
	DisconnectType
)

// PacketNames maps packet type constants to string names.
var PacketNames = map[byte]string{
	ConnectType:     "CONNECT",
	ConnAckType:     "CONNACK",
	PublishType:     "PUBLISH",
	PubAckType:      "PUBACK",
	PubRecType:      "PUBREC",
	PubRelType:      "PUBREL",
	PubCompType:     "PUBCOMP",
	SubscribeType:   "SUBSCRIBE",
	SubAckType:      "SUBACK",
	UnsubscribeType: "UNSUBSCRIBE",
	UnsubAckType:    "UNSUBACK",
	PingReqType:     "PINGREQ",
	PingRespType:    "PINGRESP",
	DisconnectType:  "DISCONNECT",
}

var (
	// ErrProtocolViolation indicates a packet whose flags cannot legally be
	// sent, such as a CONNECT with a password but no username.
	ErrProtocolViolation = errors.New("protocol violation")

	// ErrIdentifierRejected indicates a client identifier that is invalid
	// for the negotiated protocol version.
	ErrIdentifierRejected = errors.New("client identifier rejected")

	// ErrUnsupportedPacketType indicates a packet the encoder does not know.
	ErrUnsupportedPacketType = errors.New("unsupported packet type")
)

// Packet is the interface for all outgoing MQTT control packets.
type Packet interface {
	// Type returns the packet type constant.
	Type() byte

	// String returns a human-readable representation.
	String() string
}

// NewPacket creates an empty packet of the specified type with the
// fixed-header flags the protocol mandates for that type already set.
// It returns nil for unknown packet types.
func NewPacket(packetType byte) Packet {
	switch packetType {
	case ConnectType:
		return &Connect{FixedHeader: FixedHeader{PacketType: ConnectType}}
	case ConnAckType:
		return &ConnAck{FixedHeader: FixedHeader{PacketType: ConnAckType}}
	case PublishType:
		return &Publish{FixedHeader: FixedHeader{PacketType: PublishType}}
	case PubAckType:
		return &PubAck{FixedHeader: FixedHeader{PacketType: PubAckType}}
	case PubRecType:
		return &PubRec{FixedHeader: FixedHeader{PacketType: PubRecType}}
	case PubRelType:
		return &PubRel{FixedHeader: FixedHeader{PacketType: PubRelType, QoS: 1}}
	case PubCompType:
		return &PubComp{FixedHeader: FixedHeader{PacketType: PubCompType}}
	case SubscribeType:
		return &Subscribe{FixedHeader: FixedHeader{PacketType: SubscribeType, QoS: 1}}
	case SubAckType:
		return &SubAck{FixedHeader: FixedHeader{PacketType: SubAckType}}
	case UnsubscribeType:
		return &Unsubscribe{FixedHeader: FixedHeader{PacketType: UnsubscribeType, QoS: 1}}
	case UnsubAckType:
		return &UnsubAck{FixedHeader: FixedHeader{PacketType: UnsubAckType}}
	case PingReqType:
		return &PingReq{FixedHeader: FixedHeader{PacketType: PingReqType}}
	case PingRespType:
		return &PingResp{FixedHeader: FixedHeader{PacketType: PingRespType}}
	case DisconnectType:
		return &Disconnect{FixedHeader: FixedHeader{PacketType: DisconnectType}}
	}
	return nil
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func typeName(t byte) string {
	if name, ok := PacketNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%x)", t)
}
