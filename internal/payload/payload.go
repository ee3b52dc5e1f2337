// Package payload defines the tagged payload descriptor the Request Binder
// attaches to a request: either a contiguous buffer or a scatter-gather
// callback pair. The Command Builder never looks at a Descriptor; only the
// Request Binder and the underlying transport interpret it.
package payload

// Descriptor is implemented by Contiguous and SGL. It carries no behavior
// of its own; it exists so qpair.Bind can accept either shape through one
// parameter, per Design Note §9's "polymorphic payload" guidance.
type Descriptor interface {
	isDescriptor()
}

// Contiguous describes a single virtually-contiguous buffer. The pool's DMA
// mapping of Addr is assumed by the transport; this package does not map
// memory itself.
type Contiguous struct {
	Addr []byte
	Len  uint64
}

func (Contiguous) isDescriptor() {}

// ResetSGLFunc repositions an SGL iterator to sglOffset bytes into the
// logical buffer.
type ResetSGLFunc func(ctx any, sglOffset uint64)

// NextSGEFunc yields the next physically contiguous segment and advances
// the iterator. It returns a nil addr and zero length at end of buffer.
type NextSGEFunc func(ctx any) (addr []byte, length uint64)

// SGL describes a payload as a pair of iterator callbacks plus an opaque
// context, mirroring the device's scatter-gather submission path. TotalLen
// is carried out-of-band from the segments themselves, matching §4.4.
type SGL struct {
	Reset    ResetSGLFunc
	Next     NextSGEFunc
	Ctx      any
	TotalLen uint64
}

func (SGL) isDescriptor() {}
