// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package packets

import (
	"github.com/absmach/mqttwire/packets/codec"
)

// Property identifier constants (MQTT 5.0).
const (
	PayloadFormatProp          byte = 1
	MessageExpiryProp          byte = 2
	ContentTypeProp            byte = 3
	ResponseTopicProp          byte = 8
	CorrelationDataProp        byte = 9
	SubscriptionIdentifierProp byte = 11
	SessionExpiryIntervalProp  byte = 17
	AssignedClientIDProp       byte = 18
	ServerKeepAliveProp        byte = 19
	AuthMethodProp             byte = 21
	AuthDataProp               byte = 22
	RequestProblemInfoProp     byte = 23
	WillDelayIntervalProp      byte = 24
	RequestResponseInfoProp    byte = 25
	ResponseInfoProp           byte = 26
	ServerReferenceProp        byte = 28
	ReasonStringProp           byte = 31
	ReceiveMaximumProp         byte = 33
	TopicAliasMaximumProp      byte = 34
	TopicAliasProp             byte = 35
	MaximumQOSProp             byte = 36
	RetainAvailableProp        byte = 37
	UserProp                   byte = 38
	MaximumPacketSizeProp      byte = 39
	WildcardSubAvailableProp   byte = 40
	SubIDAvailableProp         byte = 41
	SharedSubAvailableProp     byte = 42
)

// Property is a single MQTT 5.0 property. The identifier selects which value
// field goes on the wire: Uint for integer properties (truncated to the
// width the identifier mandates), Str for UTF-8 string properties and Data
// for binary properties.
type Property struct {
	ID   byte
	Uint uint32
	Str  string
	Data []byte
}

// size returns the wire size of the property: its identifier as a variable
// byte integer plus its value at the width fixed by the identifier.
// Identifiers outside the table contribute zero bytes; put skips them the
// same way, so measured and written sizes always agree.
func (p Property) size() (int, error) {
	idLen, err := codec.VBILen(int(p.ID))
	if err != nil {
		return 0, err
	}
	switch p.ID {
	case PayloadFormatProp, RequestProblemInfoProp, RequestResponseInfoProp,
		MaximumQOSProp, RetainAvailableProp, WildcardSubAvailableProp,
		SubIDAvailableProp, SharedSubAvailableProp:
		return idLen + 1, nil
	case ServerKeepAliveProp, ReceiveMaximumProp, TopicAliasMaximumProp, TopicAliasProp:
		return idLen + 2, nil
	case MessageExpiryProp, SessionExpiryIntervalProp, WillDelayIntervalProp, MaximumPacketSizeProp:
		return idLen + 4, nil
	case SubscriptionIdentifierProp:
		n, err := codec.VBILen(int(p.Uint))
		if err != nil {
			return 0, err
		}
		return idLen + n, nil
	case ContentTypeProp, ResponseTopicProp, AssignedClientIDProp, AuthMethodProp,
		ResponseInfoProp, ServerReferenceProp, ReasonStringProp, UserProp:
		n, err := codec.StringLen(p.Str)
		if err != nil {
			return 0, err
		}
		return idLen + n, nil
	case CorrelationDataProp, AuthDataProp:
		n, err := codec.BytesLen(p.Data)
		if err != nil {
			return 0, err
		}
		return idLen + n, nil
	}
	return 0, nil
}

// put writes the property into b and returns the number of bytes written,
// always equal to size. The caller must have sized b with size.
func (p Property) put(b []byte) int {
	switch p.ID {
	case PayloadFormatProp, RequestProblemInfoProp, RequestResponseInfoProp,
		MaximumQOSProp, RetainAvailableProp, WildcardSubAvailableProp,
		SubIDAvailableProp, SharedSubAvailableProp:
		off := codec.PutVBI(b, int(p.ID))
		b[off] = byte(p.Uint)
		return off + 1
	case ServerKeepAliveProp, ReceiveMaximumProp, TopicAliasMaximumProp, TopicAliasProp:
		off := codec.PutVBI(b, int(p.ID))
		codec.PutUint16(b[off:], uint16(p.Uint))
		return off + 2
	case MessageExpiryProp, SessionExpiryIntervalProp, WillDelayIntervalProp, MaximumPacketSizeProp:
		off := codec.PutVBI(b, int(p.ID))
		codec.PutUint32(b[off:], p.Uint)
		return off + 4
	case SubscriptionIdentifierProp:
		off := codec.PutVBI(b, int(p.ID))
		return off + codec.PutVBI(b[off:], int(p.Uint))
	case ContentTypeProp, ResponseTopicProp, AssignedClientIDProp, AuthMethodProp,
		ResponseInfoProp, ServerReferenceProp, ReasonStringProp, UserProp:
		off := codec.PutVBI(b, int(p.ID))
		return off + codec.PutString(b[off:], p.Str)
	case CorrelationDataProp, AuthDataProp:
		off := codec.PutVBI(b, int(p.ID))
		return off + codec.PutBytes(b[off:], p.Data)
	}
	return 0
}

// Properties is an ordered list of MQTT 5.0 properties. Order is preserved
// on the wire.
type Properties []Property

// size returns the wire size of all properties, without the block's own
// length prefix.
func (ps Properties) size() (int, error) {
	var total int
	for _, p := range ps {
		n, err := p.size()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// encode serializes the property block into its own scratch buffer: every
// property in list order, prefixed with the total property length as a
// variable byte integer. The caller copies the block once into the packet
// buffer. An empty list still yields the mandatory zero length prefix.
func (ps Properties) encode() ([]byte, error) {
	n, err := ps.size()
	if err != nil {
		return nil, err
	}
	prefixLen, err := codec.VBILen(n)
	if err != nil {
		return nil, err
	}
	block := make([]byte, prefixLen+n)
	off := codec.PutVBI(block, n)
	for _, p := range ps {
		off += p.put(block[off:])
	}
	return block[:off], nil
}
