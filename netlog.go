// Package netlog delivers formatted log records to a remote collector
// over TCP or UDP, IPv4 or IPv6.
//
// The target package holds the connection lifecycle: open, send,
// reopen on demand, close, all serialized per target. This package
// adds two thin adapters on top of an open target:
//
//   - Writer, an io.Writer, so the standard library log package or any
//     formatter can point at a collector;
//   - Hook, a logrus hook, so an application logger delivers each
//     entry over the network.
//
// Neither adapter buffers, retries, or reconnects: a failed delivery
// surfaces to the caller, who decides whether to reopen the target.
package netlog

import (
	"bytes"

	"github.com/opd-ai/netlog/target"
)

// Writer adapts a network target to io.Writer. Each Write is one send
// on the target, with the record terminator appended when the payload
// does not already end with it.
type Writer struct {
	target     *target.NetworkTarget
	terminator []byte
}

// NewWriter wraps an already-constructed target. The default record
// terminator is a newline.
func NewWriter(t *target.NetworkTarget) *Writer {
	return &Writer{target: t, terminator: []byte("\n")}
}

// SetTerminator replaces the record terminator. An empty terminator
// sends payloads exactly as given.
func (w *Writer) SetTerminator(s string) {
	w.terminator = []byte(s)
}

// Target returns the underlying network target, for reopen and close.
func (w *Writer) Target() *target.NetworkTarget {
	return w.target
}

// Write sends one record. It returns the number of payload bytes
// delivered, which is len(p) on full success. A partial send of the
// payload is returned as-is; the terminator's bytes are never counted.
func (w *Writer) Write(p []byte) (int, error) {
	msg := p
	if len(w.terminator) > 0 && !bytes.HasSuffix(p, w.terminator) {
		msg = make([]byte, 0, len(p)+len(w.terminator))
		msg = append(msg, p...)
		msg = append(msg, w.terminator...)
	}

	n, err := w.target.Send(msg)
	if err != nil {
		return 0, err
	}
	if n > len(p) {
		n = len(p)
	}
	return n, nil
}
