// Package trampoline implements the SELECT-Send Trampoline (spec §4.5): for
// the contiguous-buffer form of SEND_SELECT, it owns an allocator-backed
// DMA-suitable scratch buffer holding the query string, and wraps the
// caller's completion callback so the scratch buffer is released exactly
// when the device completion is observed.
//
// The SGL form of SEND_SELECT never allocates scratch: Wrap's scratch
// argument is nil and the returned callback skips the free step while still
// forwarding to the caller, giving both forms a uniform completion path.
package trampoline

import (
	"nvmekv/internal/dma"
	"nvmekv/internal/qpair"
	"nvmekv/pkg/kvtypes"
)

// PrepareQuery allocates a zeroed scratch buffer of len(query)+1 bytes,
// copies query into it followed by a NUL terminator, and returns the
// buffer. The wire payload length submitted for SEND_SELECT is therefore
// len(query)+1, while the command's CDW10 carries len(query) — an
// asymmetry the command builder layer preserves intentionally (see
// internal/command.BuildSendSelect).
//
// Callers must pass the returned buffer to Wrap so its lifetime is tied to
// the eventual completion, not to PrepareQuery's caller.
func PrepareQuery(alloc dma.Allocator, query string) ([]byte, error) {
	buf, err := alloc.Alloc(len(query) + 1)
	if err != nil {
		return nil, &kvtypes.Error{
			Kind: kvtypes.ErrKindOutOfMemory,
			Msg:  kvtypes.ErrScratchAlloc.Msg,
			Err:  err,
		}
	}
	copy(buf, query)
	buf[len(query)] = 0
	return buf, nil
}

// Wrap returns a completion callback that releases scratch via alloc (if
// scratch is non-nil) and then invokes user with the completion. Passing a
// nil scratch produces the SGL variant's skip-free-but-forward behavior.
//
// The returned closure is the request's installed CompletionFunc: it is
// the trampoline itself, carrying the scratch handle and the user callback
// in its captured environment rather than through a separate context
// record and registry.
func Wrap(alloc dma.Allocator, scratch []byte, user qpair.CompletionFunc) qpair.CompletionFunc {
	return func(c kvtypes.Completion) {
		if scratch != nil {
			_ = alloc.Free(scratch) // best-effort: a free failure must not suppress the completion
		}
		if user != nil {
			user(c)
		}
	}
}
