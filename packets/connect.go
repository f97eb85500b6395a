// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"

	"github.com/absmach/mqttwire/packets/codec"
)

// Client identifier length bounds mandated by MQTT 3.1.
const (
	minClientIDLen = 1
	maxClientIDLen = 23
)

const connectFormat = `protocol_name: %s
protocol_version: %d
clean_session: %t
will: %t
will_qos: %d
will_retain: %t
username_flag: %t
password_flag: %t
keepalive: %d
client_id: %s`

// Connect is an internal representation of the fields of the MQTT CONNECT packet.
type Connect struct {
	FixedHeader
	ProtocolName    string
	ProtocolVersion byte
	CleanSession    bool
	WillFlag        bool
	WillQoS         byte
	WillRetain      bool
	UsernameFlag    bool
	PasswordFlag    bool
	KeepAlive       uint16
	Properties      Properties // MQTT 5.0 only

	ClientIdentifier string
	WillTopic        string
	WillMessage      []byte
	Username         string
	Password         []byte
}

func (pkt *Connect) Type() byte {
	return ConnectType
}

func (pkt *Connect) String() string {
	return pkt.FixedHeader.String() + " " + fmt.Sprintf(connectFormat,
		pkt.ProtocolName, pkt.ProtocolVersion, pkt.CleanSession, pkt.WillFlag,
		pkt.WillQoS, pkt.WillRetain, pkt.UsernameFlag, pkt.PasswordFlag,
		pkt.KeepAlive, pkt.ClientIdentifier)
}

// validate rejects packets that must never reach the wire: a password flag
// without a username flag, and a client identifier outside the limits of the
// negotiated protocol version. MQTT 3.1 limits client identifiers to 1-23
// bytes; 3.1.1 and 5.0 leave length restrictions to the server.
func (pkt *Connect) validate() error {
	if pkt.PasswordFlag && !pkt.UsernameFlag {
		return fmt.Errorf("%w: password flag set without username flag", ErrProtocolViolation)
	}
	if pkt.ProtocolVersion == V31 &&
		(len(pkt.ClientIdentifier) < minClientIDLen || len(pkt.ClientIdentifier) > maxClientIDLen) {
		return fmt.Errorf("%w: %q", ErrIdentifierRejected, pkt.ClientIdentifier)
	}
	return nil
}

// flags packs the connect-flags byte of the variable header.
func (pkt *Connect) flags() byte {
	return boolToByte(pkt.CleanSession)<<1 | boolToByte(pkt.WillFlag)<<2 |
		pkt.WillQoS<<3 | boolToByte(pkt.WillRetain)<<5 |
		boolToByte(pkt.PasswordFlag)<<6 | boolToByte(pkt.UsernameFlag)<<7
}

// payloadSize measures the CONNECT payload: client identifier, then will
// topic and message, username and password, each included only when its flag
// is set and each carrying a 2-byte length prefix.
func (pkt *Connect) payloadSize() (int, error) {
	size, err := codec.StringLen(pkt.ClientIdentifier)
	if err != nil {
		return 0, err
	}
	if pkt.WillFlag {
		n, err := codec.StringLen(pkt.WillTopic)
		if err != nil {
			return 0, err
		}
		size += n
		if n, err = codec.BytesLen(pkt.WillMessage); err != nil {
			return 0, err
		}
		size += n
	}
	if pkt.UsernameFlag {
		n, err := codec.StringLen(pkt.Username)
		if err != nil {
			return 0, err
		}
		size += n
	}
	if pkt.PasswordFlag {
		n, err := codec.BytesLen(pkt.Password)
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

func (pkt *Connect) encode(a Allocator) ([]byte, error) {
	if err := pkt.validate(); err != nil {
		return nil, err
	}

	// The property block exists only in MQTT 5.0; for 3.1 and 3.1.1 it
	// contributes zero bytes, with no length prefix.
	var props []byte
	if pkt.ProtocolVersion == V5 {
		var err error
		if props, err = pkt.Properties.encode(); err != nil {
			return nil, err
		}
	}

	payloadSize, err := pkt.payloadSize()
	if err != nil {
		return nil, err
	}
	nameLen, err := codec.StringLen(pkt.ProtocolName)
	if err != nil {
		return nil, err
	}

	// Protocol name, protocol level, connect flags, keep-alive, properties.
	varHeaderSize := nameLen + 1 + 1 + 2 + len(props)
	remaining := varHeaderSize + payloadSize
	vbiLen, err := codec.VBILen(remaining)
	if err != nil {
		return nil, err
	}

	buf := a.Allocate(1 + vbiLen + remaining)
	off := putHeader(buf, pkt.FixedHeader, remaining)
	off += codec.PutString(buf[off:], pkt.ProtocolName)
	buf[off] = pkt.ProtocolVersion
	buf[off+1] = pkt.flags()
	off += 2
	codec.PutUint16(buf[off:], pkt.KeepAlive)
	off += 2
	off += copy(buf[off:], props)

	off += codec.PutString(buf[off:], pkt.ClientIdentifier)
	if pkt.WillFlag {
		off += codec.PutString(buf[off:], pkt.WillTopic)
		off += codec.PutBytes(buf[off:], pkt.WillMessage)
	}
	if pkt.UsernameFlag {
		off += codec.PutString(buf[off:], pkt.Username)
	}
	if pkt.PasswordFlag {
		off += codec.PutBytes(buf[off:], pkt.Password)
	}
	return buf[:off], nil
}
