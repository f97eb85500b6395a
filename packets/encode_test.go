// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absmach/mqttwire/packets"
)

func TestEncodeConnAck(t *testing.T) {
	pkt := &packets.ConnAck{
		FixedHeader:    packets.FixedHeader{PacketType: packets.ConnAckType},
		SessionPresent: true,
		ReasonCode:     packets.Accepted,
	}
	buf, err := packets.Encode(pkt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x02, 0x01, 0x00}, buf)
}

func TestEncodeHeaderOnly(t *testing.T) {
	cases := []struct {
		desc string
		pkt  packets.Packet
		want []byte
	}{
		{desc: "pingreq", pkt: packets.NewPacket(packets.PingReqType), want: []byte{0xC0, 0x00}},
		{desc: "pingresp", pkt: packets.NewPacket(packets.PingRespType), want: []byte{0xD0, 0x00}},
		{desc: "disconnect", pkt: packets.NewPacket(packets.DisconnectType), want: []byte{0xE0, 0x00}},
	}
	for _, tc := range cases {
		buf, err := packets.Encode(tc.pkt)
		require.NoError(t, err, tc.desc)
		assert.Equal(t, tc.want, buf, tc.desc)
	}
}

func TestEncodePublish(t *testing.T) {
	cases := []struct {
		desc string
		pkt  *packets.Publish
		want []byte
	}{
		{
			desc: "qos 0 has no packet id",
			pkt: &packets.Publish{
				FixedHeader: packets.FixedHeader{PacketType: packets.PublishType},
				TopicName:   "a",
				Payload:     []byte{0x01, 0x02},
			},
			want: []byte{0x30, 0x05, 0x00, 0x01, 'a', 0x01, 0x02},
		},
		{
			desc: "qos 1 inserts packet id between topic and payload",
			pkt: &packets.Publish{
				FixedHeader: packets.FixedHeader{PacketType: packets.PublishType, QoS: 1},
				TopicName:   "a",
				ID:          7,
				Payload:     []byte{0x01, 0x02},
			},
			want: []byte{0x32, 0x07, 0x00, 0x01, 'a', 0x00, 0x07, 0x01, 0x02},
		},
		{
			desc: "dup and retain flags in byte 1",
			pkt: &packets.Publish{
				FixedHeader: packets.FixedHeader{PacketType: packets.PublishType, QoS: 2, Dup: true, Retain: true},
				TopicName:   "a",
				ID:          1,
			},
			want: []byte{0x3D, 0x05, 0x00, 0x01, 'a', 0x00, 0x01},
		},
	}
	for _, tc := range cases {
		buf, err := packets.Encode(tc.pkt)
		require.NoError(t, err, tc.desc)
		assert.Equal(t, tc.want, buf, tc.desc)
	}
}

func TestEncodeSubscribe(t *testing.T) {
	pkt := &packets.Subscribe{
		FixedHeader: packets.FixedHeader{PacketType: packets.SubscribeType, QoS: 1},
		ID:          10,
		Subscriptions: []packets.Subscription{
			{Topic: "a/b", QoS: 1},
		},
	}
	buf, err := packets.Encode(pkt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x82, 0x08, 0x00, 0x0A, 0x00, 0x03, 'a', '/', 'b', 0x01}, buf)
}

func TestEncodeUnsubscribe(t *testing.T) {
	pkt := &packets.Unsubscribe{
		FixedHeader: packets.FixedHeader{PacketType: packets.UnsubscribeType, QoS: 1},
		ID:          10,
		Topics:      []string{"a"},
	}
	buf, err := packets.Encode(pkt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA2, 0x05, 0x00, 0x0A, 0x00, 0x01, 'a'}, buf)
}

func TestEncodeSubAck(t *testing.T) {
	pkt := &packets.SubAck{
		FixedHeader: packets.FixedHeader{PacketType: packets.SubAckType},
		ID:          3,
		ReturnCodes: []byte{0x00, 0x01, 0x02},
	}
	buf, err := packets.Encode(pkt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x90, 0x05, 0x00, 0x03, 0x00, 0x01, 0x02}, buf)
}

func TestEncodeAckFamily(t *testing.T) {
	cases := []struct {
		desc string
		pkt  packets.Packet
		want []byte
	}{
		{
			desc: "puback",
			pkt:  &packets.PubAck{FixedHeader: packets.FixedHeader{PacketType: packets.PubAckType}, ID: 0x1234},
			want: []byte{0x40, 0x02, 0x12, 0x34},
		},
		{
			desc: "pubrec",
			pkt:  &packets.PubRec{FixedHeader: packets.FixedHeader{PacketType: packets.PubRecType}, ID: 1},
			want: []byte{0x50, 0x02, 0x00, 0x01},
		},
		{
			desc: "pubrel carries qos 1 flag bits",
			pkt:  &packets.PubRel{FixedHeader: packets.FixedHeader{PacketType: packets.PubRelType, QoS: 1}, ID: 1},
			want: []byte{0x62, 0x02, 0x00, 0x01},
		},
		{
			desc: "pubcomp",
			pkt:  &packets.PubComp{FixedHeader: packets.FixedHeader{PacketType: packets.PubCompType}, ID: 1},
			want: []byte{0x70, 0x02, 0x00, 0x01},
		},
		{
			desc: "unsuback",
			pkt:  &packets.UnsubAck{FixedHeader: packets.FixedHeader{PacketType: packets.UnsubAckType}, ID: 1},
			want: []byte{0xB0, 0x02, 0x00, 0x01},
		},
	}
	for _, tc := range cases {
		buf, err := packets.Encode(tc.pkt)
		require.NoError(t, err, tc.desc)
		assert.Equal(t, tc.want, buf, tc.desc)
	}
}

// readVBI decodes a variable byte integer from b, returning the value and
// the number of bytes consumed.
func readVBI(t *testing.T, b []byte) (int, int) {
	t.Helper()
	var v uint32
	var shift uint32
	for i := 0; i < 4; i++ {
		d := b[i]
		v |= uint32(d&0x7F) << shift
		if d&0x80 == 0 {
			return int(v), i + 1
		}
		shift += 7
	}
	t.Fatal("malformed variable byte integer")
	return 0, 0
}

func TestSizeExactness(t *testing.T) {
	// The remaining length declared in the fixed header must account for
	// every byte that follows it, for every packet shape.
	cases := []struct {
		desc string
		pkt  packets.Packet
	}{
		{
			desc: "connect v311",
			pkt: &packets.Connect{
				FixedHeader:      packets.FixedHeader{PacketType: packets.ConnectType},
				ProtocolName:     "MQTT",
				ProtocolVersion:  packets.V311,
				CleanSession:     true,
				KeepAlive:        60,
				ClientIdentifier: "size-exactness",
			},
		},
		{
			desc: "connect v5 with properties and credentials",
			pkt: &packets.Connect{
				FixedHeader:      packets.FixedHeader{PacketType: packets.ConnectType},
				ProtocolName:     "MQTT",
				ProtocolVersion:  packets.V5,
				UsernameFlag:     true,
				PasswordFlag:     true,
				WillFlag:         true,
				WillQoS:          1,
				KeepAlive:        30,
				ClientIdentifier: "c1",
				WillTopic:        "will/topic",
				WillMessage:      []byte("gone"),
				Username:         "user",
				Password:         []byte("pass"),
				Properties: packets.Properties{
					{ID: packets.ReceiveMaximumProp, Uint: 10},
					{ID: packets.SessionExpiryIntervalProp, Uint: 86400},
					{ID: packets.AuthMethodProp, Str: "SCRAM-SHA-1"},
				},
			},
		},
		{
			desc: "publish with medium payload",
			pkt: &packets.Publish{
				FixedHeader: packets.FixedHeader{PacketType: packets.PublishType, QoS: 2},
				TopicName:   "a/b/c",
				ID:          99,
				Payload:     bytes.Repeat([]byte{0xAB}, 300),
			},
		},
		{
			desc: "subscribe with several filters",
			pkt: &packets.Subscribe{
				FixedHeader: packets.FixedHeader{PacketType: packets.SubscribeType, QoS: 1},
				ID:          5,
				Subscriptions: []packets.Subscription{
					{Topic: "a", QoS: 0},
					{Topic: "b/#", QoS: 1},
					{Topic: "c/+/d", QoS: 2},
				},
			},
		},
		{
			desc: "suback",
			pkt: &packets.SubAck{
				FixedHeader: packets.FixedHeader{PacketType: packets.SubAckType},
				ID:          5,
				ReturnCodes: []byte{0, 1, 2, 0x80},
			},
		},
	}
	for _, tc := range cases {
		buf, err := packets.Encode(tc.pkt)
		require.NoError(t, err, tc.desc)

		remaining, n := readVBI(t, buf[1:])
		assert.Equal(t, 1+n+remaining, len(buf), tc.desc)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	pkt := &packets.Connect{
		FixedHeader:      packets.FixedHeader{PacketType: packets.ConnectType},
		ProtocolName:     "MQTT",
		ProtocolVersion:  packets.V5,
		CleanSession:     true,
		KeepAlive:        10,
		ClientIdentifier: "determinism",
		Properties: packets.Properties{
			{ID: packets.ReceiveMaximumProp, Uint: 10},
			{ID: packets.UserProp, Str: "trace-id"},
		},
	}
	first, err := packets.Encode(pkt)
	require.NoError(t, err)
	second, err := packets.Encode(pkt)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type unknownPacket struct {
	packets.FixedHeader
}

func (p *unknownPacket) Type() byte { return 0xF }

func TestEncodeUnsupportedType(t *testing.T) {
	var allocated bool
	alloc := packets.AllocatorFunc(func(size int) []byte {
		allocated = true
		return make([]byte, size)
	})

	buf, err := packets.EncodeWith(alloc, &unknownPacket{})
	assert.ErrorIs(t, err, packets.ErrUnsupportedPacketType)
	assert.Nil(t, buf)
	assert.False(t, allocated, "no buffer may be allocated on failure")
}

func TestNewPacket(t *testing.T) {
	sub, ok := packets.NewPacket(packets.SubscribeType).(*packets.Subscribe)
	require.True(t, ok)
	assert.Equal(t, byte(1), sub.QoS)

	rel, ok := packets.NewPacket(packets.PubRelType).(*packets.PubRel)
	require.True(t, ok)
	assert.Equal(t, byte(1), rel.QoS)

	assert.Nil(t, packets.NewPacket(0))
	assert.Nil(t, packets.NewPacket(0xF))
}

func TestPack(t *testing.T) {
	pkt := packets.NewPacket(packets.PingReqType)
	var out bytes.Buffer
	require.NoError(t, packets.Pack(&out, pkt))
	assert.Equal(t, []byte{0xC0, 0x00}, out.Bytes())
}
