// Package codec defines the contract a venue implements to translate its
// own WebSocket stream vocabulary into and out of the kernel's wire
// representation, keeping core/kernel/ws exchange-agnostic.
package codec

// Frame is one outbound WebSocket message: a gorilla/websocket message
// type (websocket.TextMessage or websocket.BinaryMessage) plus payload.
type Frame struct {
	Type    int
	Payload []byte
}

// WsCodec turns stream names into subscribe/unsubscribe frames and raw
// frames into decoded messages of type M. Implementations must not block
// on network I/O; encoding and decoding are pure functions of their input.
type WsCodec[M any] interface {
	// EncodeSubscription builds the wire frame that subscribes to streams.
	EncodeSubscription(streams []string) (Frame, error)

	// EncodeUnsubscription builds the wire frame that unsubscribes from
	// streams.
	EncodeUnsubscription(streams []string) (Frame, error)

	// DecodeMessage translates one raw frame into a decoded message.
	// Returning (zero, false, nil) tells the session to silently drop the
	// frame (heartbeat-shaped payloads a venue sends inside text frames,
	// subscription acks, etc.) without treating it as an error.
	DecodeMessage(frame Frame) (M, bool, error)
}
