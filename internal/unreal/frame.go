package unreal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
	"unicode/utf8"

	"github.com/unrealmcp/unrealmcp/internal/logger"
)

// readTimeout bounds each individual read while receiving a response. It is
// deliberately distinct from the connect timeout: once the editor has accepted
// a command it answers quickly, but large responses arrive in chunks.
// Variable so tests can shorten it.
var readTimeout = 5 * time.Second

// frameStatus classifies an accumulated buffer during receive
type frameStatus int

const (
	// frameComplete - the buffer is exactly one JSON document
	frameComplete frameStatus = iota
	// frameIncomplete - the buffer is a prefix of a JSON document; keep reading
	frameIncomplete
	// frameMalformed - the buffer cannot become a single document by
	// appending bytes; treated as transient, the loop keeps reading
	frameMalformed
)

// probeFrame decides whether the accumulated bytes form one complete JSON
// document. There is no length prefix on the wire: message completion is
// detected purely by a successful parse, which is the framing the Unreal
// plugin speaks. A buffer with trailing non-whitespace after the document is
// not complete - the plugin never pipelines responses, so trailing bytes mean
// the buffer is not what we think it is.
func probeFrame(data []byte) frameStatus {
	if len(data) == 0 {
		return frameIncomplete
	}

	// A multi-byte UTF-8 rune split across reads makes the tail invalid until
	// the rest arrives. Invalid bytes anywhere else will never become valid.
	if !utf8.Valid(data) {
		for trim := 1; trim <= 3 && trim < len(data); trim++ {
			if utf8.Valid(data[:len(data)-trim]) {
				return frameIncomplete
			}
		}
		return frameMalformed
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return frameIncomplete
		}
		var syn *json.SyntaxError
		if errors.As(err, &syn) && syn.Offset >= int64(len(bytes.TrimRight(data, " \t\r\n"))) {
			return frameIncomplete
		}
		return frameMalformed
	}

	if rest := bytes.TrimSpace(data[dec.InputOffset():]); len(rest) > 0 {
		return frameMalformed
	}
	return frameComplete
}

// ReceiveFullResponse reads from the socket until the accumulated bytes parse
// as one complete JSON document. The peer closing its write side is the
// expected end-of-message signal for the final chunk. Returns ErrPeerClosed
// if the socket closes before any data arrives, ErrReceiveTimeout if no
// parseable document arrives in time, and ErrProtocol if the peer closed
// after sending bytes that never formed valid JSON.
func (c *Connection) ReceiveFullResponse() ([]byte, error) {
	if c.sock == nil {
		return nil, ErrNotConnected
	}

	var acc []byte
	chunk := make([]byte, c.cfg.BufferSize)

	for {
		_ = c.sock.SetReadDeadline(time.Now().Add(readTimeout))
		n, err := c.sock.Read(chunk)

		if n > 0 {
			acc = append(acc, chunk[:n]...)
			switch probeFrame(acc) {
			case frameComplete:
				logger.Info("Received complete response (%d bytes)", len(acc))
				return acc, nil
			case frameIncomplete:
				// keep reading
			case frameMalformed:
				logger.Warn("Response buffer not yet parseable after %d bytes, continuing", len(acc))
			}
		}

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			if len(acc) == 0 {
				return nil, ErrPeerClosed
			}
			// The peer closed after sending; whatever we have is all there is
			if probeFrame(acc) == frameComplete {
				return acc, nil
			}
			return nil, fmt.Errorf("%w (connection closed after %d bytes)", ErrProtocol, len(acc))
		}

		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			logger.Warn("Socket timeout during receive")
			// A slow-but-complete response is still usable
			if len(acc) > 0 && probeFrame(acc) == frameComplete {
				logger.Info("Using response assembled before timeout (%d bytes)", len(acc))
				return acc, nil
			}
			return nil, ErrReceiveTimeout
		}

		return nil, fmt.Errorf("error during receive: %w", err)
	}
}
