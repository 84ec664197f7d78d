package unreal

import "errors"

// Transport failure taxonomy. All of these surface to tool handlers as
// canonical error results, never as raised errors; the sentinels exist so the
// receive loop and its tests can tell the conditions apart.
var (
	// ErrConnectFailed - dialing the editor failed
	ErrConnectFailed = errors.New("failed to connect to Unreal Engine")

	// ErrPeerClosed - the editor closed the socket before sending any data
	ErrPeerClosed = errors.New("connection closed before receiving data")

	// ErrReceiveTimeout - no complete response arrived within the read timeout
	ErrReceiveTimeout = errors.New("timeout receiving Unreal response")

	// ErrProtocol - bytes arrived but never formed a valid JSON document
	ErrProtocol = errors.New("response never formed valid JSON")

	// ErrNotConnected - receive or send attempted without a live socket
	ErrNotConnected = errors.New("not connected to Unreal Engine")
)
