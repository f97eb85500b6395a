// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"fmt"
	"io"

	"github.com/absmach/mqttwire/packets/codec"
)

// Allocator provides output buffers for encoded packets. Allocate returns a
// writable slice of exactly size bytes. Implementations must be safe for
// concurrent use; encoding itself holds no shared state.
type Allocator interface {
	Allocate(size int) []byte
}

// AllocatorFunc adapts a function to the Allocator interface.
type AllocatorFunc func(size int) []byte

// Allocate calls f.
func (f AllocatorFunc) Allocate(size int) []byte { return f(size) }

// DefaultAllocator allocates a fresh buffer for every packet.
var DefaultAllocator Allocator = AllocatorFunc(func(size int) []byte {
	return make([]byte, size)
})

// Encode serializes pkt to its wire representation using DefaultAllocator.
func Encode(pkt Packet) ([]byte, error) {
	return EncodeWith(DefaultAllocator, pkt)
}

// EncodeWith serializes pkt into a buffer obtained from a. Every encoder
// runs in two passes: all sizes are computed and all errors raised first,
// then a single buffer of exactly the packet size is requested and filled.
// On error no buffer is allocated.
func EncodeWith(a Allocator, pkt Packet) ([]byte, error) {
	switch p := pkt.(type) {
	case *Connect:
		return p.encode(a)
	case *ConnAck:
		return p.encode(a)
	case *Publish:
		return p.encode(a)
	case *Subscribe:
		return p.encode(a)
	case *Unsubscribe:
		return p.encode(a)
	case *SubAck:
		return p.encode(a)
	case *PubAck:
		return encodeMessageID(a, p.FixedHeader, p.ID)
	case *PubRec:
		return encodeMessageID(a, p.FixedHeader, p.ID)
	case *PubRel:
		return encodeMessageID(a, p.FixedHeader, p.ID)
	case *PubComp:
		return encodeMessageID(a, p.FixedHeader, p.ID)
	case *UnsubAck:
		return encodeMessageID(a, p.FixedHeader, p.ID)
	case *PingReq:
		return encodeHeaderOnly(a, p.FixedHeader)
	case *PingResp:
		return encodeHeaderOnly(a, p.FixedHeader)
	case *Disconnect:
		return encodeHeaderOnly(a, p.FixedHeader)
	default:
		return nil, fmt.Errorf("%w: 0x%x", ErrUnsupportedPacketType, pkt.Type())
	}
}

// Pack encodes pkt with DefaultAllocator and writes it to w.
func Pack(w io.Writer, pkt Packet) error {
	buf, err := Encode(pkt)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// encodeMessageID encodes the ack-family shape shared by PUBACK, PUBREC,
// PUBREL, PUBCOMP and UNSUBACK: fixed header plus a 2-byte packet id.
func encodeMessageID(a Allocator, fh FixedHeader, id uint16) ([]byte, error) {
	buf := a.Allocate(4)
	n := putHeader(buf, fh, 2)
	codec.PutUint16(buf[n:], id)
	return buf, nil
}

// encodeHeaderOnly encodes PINGREQ, PINGRESP and DISCONNECT: fixed header
// byte 1 followed by a literal zero remaining length.
func encodeHeaderOnly(a Allocator, fh FixedHeader) ([]byte, error) {
	buf := a.Allocate(2)
	buf[0] = fh.byte1()
	buf[1] = 0
	return buf, nil
}
