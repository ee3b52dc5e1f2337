// Package kv is the namespace-level public API (spec §2's "surrounding"
// layer one rung above the Request Binder): it exposes the seven KV
// operations as ergonomic methods on a Namespace, wiring together
// internal/command's builders, internal/qpair's Request Binder, and
// internal/trampoline's SELECT-Send Trampoline so callers never touch
// command words directly.
package kv

import (
	"nvmekv/internal/command"
	"nvmekv/internal/dma"
	"nvmekv/internal/payload"
	"nvmekv/internal/qpair"
	"nvmekv/internal/trampoline"
	"nvmekv/pkg/kvtypes"
)

// Namespace is a thin, per-namespace view over a queue pair. It holds no
// state of its own beyond the namespace id and the allocator the SELECT-Send
// Trampoline needs; all request lifetime lives on the queue pair.
type Namespace struct {
	qp    *qpair.QueuePair
	nsid  uint32
	alloc dma.Allocator
}

// New returns a Namespace that issues KV operations for nsid over qp,
// using alloc for SELECT-send's scratch buffer.
func New(qp *qpair.QueuePair, nsid uint32, alloc dma.Allocator) *Namespace {
	return &Namespace{qp: qp, nsid: nsid, alloc: alloc}
}

// List issues KV_LIST with the given key prefix (an empty prefix matches
// every key in the namespace). Results are written into buf in the format
// described in spec §6; cb fires once with CDW0 = number of keys returned.
func (n *Namespace) List(prefix []byte, buf []byte, cb qpair.CompletionFunc) error {
	cmd, err := command.BuildList(n.nsid, prefix, uint32(len(buf)))
	if err != nil {
		return err
	}
	return n.qp.Bind(cmd, payload.Contiguous{Addr: buf, Len: uint64(len(buf))}, cb)
}

// Delete issues KV_DELETE for key. key must be non-empty.
func (n *Namespace) Delete(key []byte, cb qpair.CompletionFunc) error {
	cmd, err := command.BuildDelete(n.nsid, key)
	if err != nil {
		return err
	}
	return n.qp.Bind(cmd, nil, cb)
}

// Exist issues KV_EXIST for key. key must be non-empty.
func (n *Namespace) Exist(key []byte, cb qpair.CompletionFunc) error {
	cmd, err := command.BuildExist(n.nsid, key)
	if err != nil {
		return err
	}
	return n.qp.Bind(cmd, nil, cb)
}

// Store issues KV_STORE, writing value under key subject to flags (see
// kvtypes.StoreFlag). key must be non-empty.
func (n *Namespace) Store(key []byte, value []byte, flags kvtypes.StoreFlag, cb qpair.CompletionFunc) error {
	cmd, err := command.BuildStore(n.nsid, key, uint64(len(value)), flags)
	if err != nil {
		return err
	}
	return n.qp.Bind(cmd, payload.Contiguous{Addr: value, Len: uint64(len(value))}, cb)
}

// Retrieve issues KV_RETRIEVE for key, reading into buf starting at offset.
// CDW0 on completion carries the value's total size, which may exceed
// len(buf); the caller re-issues Retrieve at increasing offsets to read the
// rest.
func (n *Namespace) Retrieve(key []byte, buf []byte, offset uint64, cb qpair.CompletionFunc) error {
	cmd, err := command.BuildRetrieve(n.nsid, key, uint64(len(buf)), offset)
	if err != nil {
		return err
	}
	return n.qp.Bind(cmd, payload.Contiguous{Addr: buf, Len: uint64(len(buf))}, cb)
}

// SendSelect issues KV_SEND_SELECT for the contiguous-buffer form of a
// query string: the query is copied into a trampoline-owned DMA scratch
// buffer (internal/trampoline) which is released exactly when cb observes
// the completion. CDW0 on completion carries the resulting select-id.
func (n *Namespace) SendSelect(key []byte, query string, input, output kvtypes.SelectDataType, headerOpts kvtypes.SelectHeaderOpt, cb qpair.CompletionFunc) error {
	scratch, err := trampoline.PrepareQuery(n.alloc, query)
	if err != nil {
		return err
	}

	cmd, err := command.BuildSendSelect(n.nsid, key, uint64(len(query)), input, output, headerOpts)
	if err != nil {
		_ = n.alloc.Free(scratch)
		return err
	}

	wrapped := trampoline.Wrap(n.alloc, scratch, cb)
	p := payload.Contiguous{Addr: scratch, Len: uint64(len(scratch))}
	if err := n.qp.Bind(cmd, p, wrapped); err != nil {
		_ = n.alloc.Free(scratch)
		return err
	}
	return nil
}

// SendSelectSGL issues KV_SEND_SELECT for the scatter-gather form of a
// query: no scratch buffer is allocated, so cb fires directly from the
// queue pair's completion (the trampoline's free step is a no-op for a nil
// scratch pointer, per spec §4.5).
func (n *Namespace) SendSelectSGL(key []byte, sgl payload.SGL, queryLen uint64, input, output kvtypes.SelectDataType, headerOpts kvtypes.SelectHeaderOpt, cb qpair.CompletionFunc) error {
	cmd, err := command.BuildSendSelect(n.nsid, key, queryLen, input, output, headerOpts)
	if err != nil {
		return err
	}
	wrapped := trampoline.Wrap(n.alloc, nil, cb)
	return n.qp.Bind(cmd, sgl, wrapped)
}

// RetrieveSelect issues KV_RETRIEVE_SELECT against a result set previously
// named by SendSelect's select-id, reading into buf starting at offset.
// opts governs whether the device retains or frees the result set; the
// core does not track retention state itself.
func (n *Namespace) RetrieveSelect(selectID uint32, offset uint32, buf []byte, opts kvtypes.SelectRetrieveOpt, cb qpair.CompletionFunc) error {
	cmd, err := command.BuildRetrieveSelect(n.nsid, selectID, offset, uint32(len(buf)), opts)
	if err != nil {
		return err
	}
	return n.qp.Bind(cmd, payload.Contiguous{Addr: buf, Len: uint64(len(buf))}, cb)
}
