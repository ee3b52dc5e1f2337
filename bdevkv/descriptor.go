// Package bdevkv is the Block-Device KV Facade (spec §4.6): it re-exposes
// the seven namespace-level KV operations in a shape that takes a
// descriptor and channel handle and constructs an opaque I/O object, the
// way a block-device abstraction's KV path would. It assembles no command
// words itself; each operation validates and shapes an I/O object, then
// issues the operation with the same arguments through the namespace-level
// API (internal/command's builders via nvmekv/kv), standing in for the host
// I/O engine that routes such objects in a full block-device stack. The I/O
// object holds its pool slot until the completion is delivered.
package bdevkv

import "nvmekv/kv"

// Descriptor is an open handle on a namespace, carrying the read/write mode
// the facade enforces against write-shaped operations.
type Descriptor struct {
	ns       *kv.Namespace
	readOnly bool
}

// OpenDescriptor returns a Descriptor over ns. readOnly governs whether
// LIST, DELETE, STORE, and SEND_SELECT are rejected with a bad-descriptor
// error.
func OpenDescriptor(ns *kv.Namespace, readOnly bool) *Descriptor {
	return &Descriptor{ns: ns, readOnly: readOnly}
}

// ReadOnly reports whether the descriptor rejects writing operations.
func (d *Descriptor) ReadOnly() bool { return d.readOnly }
