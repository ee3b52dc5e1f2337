package bdevkv

import (
	"nvmekv/internal/command"
	"nvmekv/internal/qpair"
	"nvmekv/kv"
	"nvmekv/pkg/kvtypes"
)

// Channel is an I/O channel bound to one Descriptor: it owns the
// per-channel I/O object pool and issues each operation through the
// namespace-level API. It is not safe for concurrent use, matching the
// single-owner model the rest of the core assumes.
type Channel struct {
	descriptor *Descriptor
	pool       *ioPool
}

// NewChannel opens a channel against d with a fixed-depth I/O object pool.
func NewChannel(d *Descriptor, depth int) *Channel {
	if depth <= 0 {
		depth = 1
	}
	return &Channel{descriptor: d, pool: newIOPool(depth)}
}

// Available reports how many I/O object slots are currently free.
func (ch *Channel) Available() int { return ch.pool.available() }

func checkKeyLength(key []byte, allowEmpty bool) error {
	if len(key) > command.MaxKeyLength {
		return kvtypes.ErrKeyTooLong
	}
	if len(key) == 0 && !allowEmpty {
		return kvtypes.ErrEmptyKey
	}
	return nil
}

// acquire validates the key length and (for writing operations) the
// descriptor's read/write mode, then obtains a pool slot shaped for typ.
// It returns the IOObject to populate and submit, or an error if
// validation or pool acquisition failed.
func (ch *Channel) acquire(typ IOType, key []byte, allowEmptyKey bool, requiresWrite bool) (*IOObject, error) {
	if err := checkKeyLength(key, allowEmptyKey); err != nil {
		return nil, err
	}
	if requiresWrite && ch.descriptor.ReadOnly() {
		return nil, kvtypes.ErrReadOnlyDescriptor
	}
	io, ok := ch.pool.acquire()
	if !ok {
		return nil, kvtypes.ErrIOObjectPoolExhausted
	}
	io.Channel = ch
	io.Descriptor = ch.descriptor
	io.Type = typ
	io.Key = key
	return io, nil
}

// wrapRelease returns a completion callback that releases io back to the
// pool before forwarding to cb, so the pool slot is reusable as soon as the
// caller observes the completion.
func (ch *Channel) wrapRelease(io *IOObject, cb qpair.CompletionFunc) qpair.CompletionFunc {
	return func(c kvtypes.Completion) {
		ch.pool.release(io)
		if cb != nil {
			cb(c)
		}
	}
}

// List issues KV_LIST. An empty prefix is valid (prefix-matches every key).
func (ch *Channel) List(prefix []byte, buf []byte, cb qpair.CompletionFunc) error {
	io, err := ch.acquire(IOTypeList, prefix, true, true)
	if err != nil {
		return err
	}
	io.Iovs, io.Iovcnt = buf, 1
	return ch.descriptor.ns.List(prefix, buf, ch.wrapRelease(io, cb))
}

// Delete issues KV_DELETE. It carries no buffer: Iovs is nil, Iovcnt is 0.
func (ch *Channel) Delete(key []byte, cb qpair.CompletionFunc) error {
	io, err := ch.acquire(IOTypeDelete, key, false, true)
	if err != nil {
		return err
	}
	return ch.descriptor.ns.Delete(key, ch.wrapRelease(io, cb))
}

// Exist issues KV_EXIST. It is a read operation: it is permitted through a
// read-only descriptor.
func (ch *Channel) Exist(key []byte, cb qpair.CompletionFunc) error {
	io, err := ch.acquire(IOTypeExist, key, false, false)
	if err != nil {
		return err
	}
	return ch.descriptor.ns.Exist(key, ch.wrapRelease(io, cb))
}

// Store issues KV_STORE.
func (ch *Channel) Store(key []byte, value []byte, flags kvtypes.StoreFlag, cb qpair.CompletionFunc) error {
	io, err := ch.acquire(IOTypeStore, key, false, true)
	if err != nil {
		return err
	}
	io.Iovs, io.Iovcnt = value, 1
	io.StoreFlags = flags
	return ch.descriptor.ns.Store(key, value, flags, ch.wrapRelease(io, cb))
}

// Retrieve issues KV_RETRIEVE. It is a read operation.
func (ch *Channel) Retrieve(key []byte, buf []byte, offset uint64, cb qpair.CompletionFunc) error {
	io, err := ch.acquire(IOTypeRetrieve, key, false, false)
	if err != nil {
		return err
	}
	io.Iovs, io.Iovcnt = buf, 1
	io.Offset = offset
	return ch.descriptor.ns.Retrieve(key, buf, offset, ch.wrapRelease(io, cb))
}

// SendSelect issues KV_SEND_SELECT for the contiguous-buffer query form.
func (ch *Channel) SendSelect(key []byte, query string, input, output kvtypes.SelectDataType, headerOpts kvtypes.SelectHeaderOpt, cb qpair.CompletionFunc) error {
	io, err := ch.acquire(IOTypeSendSelect, key, false, true)
	if err != nil {
		return err
	}
	io.Query, io.InputType, io.OutputType, io.HeaderOpts = query, input, output, headerOpts
	return ch.descriptor.ns.SendSelect(key, query, input, output, headerOpts, ch.wrapRelease(io, cb))
}

// RetrieveSelect issues KV_RETRIEVE_SELECT. There is no key on this
// opcode: it is a read operation permitted through a read-only descriptor.
func (ch *Channel) RetrieveSelect(selectID uint32, offset uint32, buf []byte, opts kvtypes.SelectRetrieveOpt, cb qpair.CompletionFunc) error {
	io, ok := ch.pool.acquire()
	if !ok {
		return kvtypes.ErrIOObjectPoolExhausted
	}
	io.Channel, io.Descriptor, io.Type = ch, ch.descriptor, IOTypeRetrieveSelect
	io.Iovs, io.Iovcnt = buf, 1
	io.SelectID, io.Offset, io.RetrieveOpt = selectID, uint64(offset), opts

	return ch.descriptor.ns.RetrieveSelect(selectID, offset, buf, opts, ch.wrapRelease(io, cb))
}
