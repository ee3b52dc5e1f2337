package bdevkv

import (
	"nvmekv/internal/qpair"
	"nvmekv/pkg/kvtypes"
)

// IOType tags which of the seven KV operations an IOObject carries.
type IOType int

const (
	IOTypeList IOType = iota
	IOTypeDelete
	IOTypeExist
	IOTypeStore
	IOTypeRetrieve
	IOTypeSendSelect
	IOTypeRetrieveSelect
)

// IOObject is the opaque unit the facade hands to the host I/O engine: a
// channel and descriptor reference, a tagged operation type, a
// single-segment buffer (when the operation has one), and the KV subfields
// every opcode needs. A DELETE or EXIST carries no buffer: Iovs is nil and
// Iovcnt is 0, the zero-segment shape every write-less KV op uses.
type IOObject struct {
	Channel    *Channel
	Descriptor *Descriptor
	Type       IOType

	Iovs   []byte
	Iovcnt int

	Key         []byte
	StoreFlags  kvtypes.StoreFlag
	HeaderOpts  kvtypes.SelectHeaderOpt
	RetrieveOpt kvtypes.SelectRetrieveOpt
	InputType   kvtypes.SelectDataType
	OutputType  kvtypes.SelectDataType
	Offset      uint64
	SelectID    uint32
	Query       string

	Callback qpair.CompletionFunc
}

// reset zeroes an IOObject for reuse from the channel's pool, without
// discarding the struct allocation itself.
func (io *IOObject) reset() {
	*io = IOObject{}
}
