// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/absmach/mqttwire/packets"
)

// genFile is the root of a packet generation file.
type genFile struct {
	Packets []packetSpec `yaml:"packets"`
}

// packetSpec describes one packet to generate. Fields irrelevant to the
// chosen type are ignored.
type packetSpec struct {
	Type    string `yaml:"type"`
	Version byte   `yaml:"version"`

	// CONNECT
	ClientID     string `yaml:"client_id"`
	CleanSession bool   `yaml:"clean_session"`
	KeepAlive    uint16 `yaml:"keep_alive"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	WillTopic    string `yaml:"will_topic"`
	WillMessage  string `yaml:"will_message"`
	WillQoS      byte   `yaml:"will_qos"`
	WillRetain   bool   `yaml:"will_retain"`

	// PUBLISH
	Topic   string `yaml:"topic"`
	QoS     byte   `yaml:"qos"`
	Retain  bool   `yaml:"retain"`
	Dup     bool   `yaml:"dup"`
	Payload string `yaml:"payload"` // base64 when payload_base64 is true
	Base64  bool   `yaml:"payload_base64"`

	// Shared packet id for PUBLISH, SUBSCRIBE, acks.
	ID uint16 `yaml:"id"`

	// CONNACK
	SessionPresent bool `yaml:"session_present"`
	ReasonCode     byte `yaml:"reason_code"`

	// SUBSCRIBE / UNSUBSCRIBE / SUBACK
	Subscriptions []subSpec `yaml:"subscriptions"`
	Topics        []string  `yaml:"topics"`
	ReturnCodes   []byte    `yaml:"return_codes"`

	// MQTT 5 CONNECT properties.
	Properties []propSpec `yaml:"properties"`
}

type subSpec struct {
	Topic string `yaml:"topic"`
	QoS   byte   `yaml:"qos"`
}

type propSpec struct {
	ID   byte   `yaml:"id"`
	Uint uint32 `yaml:"uint"`
	Str  string `yaml:"str"`
	Data string `yaml:"data"` // base64
}

// build converts the spec into an encodable packet.
func (s packetSpec) build() (packets.Packet, error) {
	switch strings.ToUpper(s.Type) {
	case "CONNECT":
		return s.buildConnect()
	case "CONNACK":
		pkt := packets.NewPacket(packets.ConnAckType).(*packets.ConnAck)
		pkt.SessionPresent = s.SessionPresent
		pkt.ReasonCode = s.ReasonCode
		return pkt, nil
	case "PUBLISH":
		pkt := packets.NewPacket(packets.PublishType).(*packets.Publish)
		pkt.QoS = s.QoS
		pkt.Dup = s.Dup
		pkt.Retain = s.Retain
		pkt.TopicName = s.Topic
		pkt.ID = s.ID
		payload, err := s.payloadBytes()
		if err != nil {
			return nil, err
		}
		pkt.Payload = payload
		return pkt, nil
	case "PUBACK":
		pkt := packets.NewPacket(packets.PubAckType).(*packets.PubAck)
		pkt.ID = s.ID
		return pkt, nil
	case "PUBREC":
		pkt := packets.NewPacket(packets.PubRecType).(*packets.PubRec)
		pkt.ID = s.ID
		return pkt, nil
	case "PUBREL":
		pkt := packets.NewPacket(packets.PubRelType).(*packets.PubRel)
		pkt.ID = s.ID
		return pkt, nil
	case "PUBCOMP":
		pkt := packets.NewPacket(packets.PubCompType).(*packets.PubComp)
		pkt.ID = s.ID
		return pkt, nil
	case "SUBSCRIBE":
		pkt := packets.NewPacket(packets.SubscribeType).(*packets.Subscribe)
		pkt.ID = s.ID
		for _, sub := range s.Subscriptions {
			pkt.Subscriptions = append(pkt.Subscriptions, packets.Subscription{Topic: sub.Topic, QoS: sub.QoS})
		}
		return pkt, nil
	case "SUBACK":
		pkt := packets.NewPacket(packets.SubAckType).(*packets.SubAck)
		pkt.ID = s.ID
		pkt.ReturnCodes = s.ReturnCodes
		return pkt, nil
	case "UNSUBSCRIBE":
		pkt := packets.NewPacket(packets.UnsubscribeType).(*packets.Unsubscribe)
		pkt.ID = s.ID
		pkt.Topics = s.Topics
		return pkt, nil
	case "UNSUBACK":
		pkt := packets.NewPacket(packets.UnsubAckType).(*packets.UnsubAck)
		pkt.ID = s.ID
		return pkt, nil
	case "PINGREQ":
		return packets.NewPacket(packets.PingReqType), nil
	case "PINGRESP":
		return packets.NewPacket(packets.PingRespType), nil
	case "DISCONNECT":
		return packets.NewPacket(packets.DisconnectType), nil
	default:
		return nil, fmt.Errorf("unknown packet type %q", s.Type)
	}
}

func (s packetSpec) buildConnect() (packets.Packet, error) {
	version := s.Version
	if version == 0 {
		version = packets.V311
	}
	name := "MQTT"
	if version == packets.V31 {
		name = "MQIsdp"
	}

	clientID := s.ClientID
	if clientID == "" {
		clientID = uuid.NewString()
	}

	pkt := packets.NewPacket(packets.ConnectType).(*packets.Connect)
	pkt.ProtocolName = name
	pkt.ProtocolVersion = version
	pkt.CleanSession = s.CleanSession
	pkt.KeepAlive = s.KeepAlive
	pkt.ClientIdentifier = clientID
	if s.WillTopic != "" {
		pkt.WillFlag = true
		pkt.WillQoS = s.WillQoS
		pkt.WillRetain = s.WillRetain
		pkt.WillTopic = s.WillTopic
		pkt.WillMessage = []byte(s.WillMessage)
	}
	if s.Username != "" {
		pkt.UsernameFlag = true
		pkt.Username = s.Username
	}
	if s.Password != "" {
		pkt.PasswordFlag = true
		pkt.Password = []byte(s.Password)
	}
	for _, p := range s.Properties {
		data, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			return nil, fmt.Errorf("property 0x%x: %w", p.ID, err)
		}
		pkt.Properties = append(pkt.Properties, packets.Property{
			ID:   p.ID,
			Uint: p.Uint,
			Str:  p.Str,
			Data: data,
		})
	}
	return pkt, nil
}

func (s packetSpec) payloadBytes() ([]byte, error) {
	if s.Payload == "" {
		return nil, nil
	}
	if s.Base64 {
		return base64.StdEncoding.DecodeString(s.Payload)
	}
	return []byte(s.Payload), nil
}
