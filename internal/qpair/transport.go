package qpair

import "nvmekv/internal/payload"
import "nvmekv/pkg/kvtypes"

// Token identifies one in-flight command on a Transport. It has no meaning
// outside the Transport implementation that issued it.
type Token uint64

// CompletionEvent pairs a previously issued Token with the completion the
// device produced for it. A Transport may return events in any order.
type CompletionEvent struct {
	Token      Token
	Completion kvtypes.Completion
}

// Transport is the submission/completion ring collaborator a queue pair
// drives. It is out of scope for this module (spec.md §1: "the command
// submission ring" is an external collaborator); a real implementation
// talks to PCIe hardware, and internal/devicesim provides an in-process
// fake for tests and the CLI harness.
type Transport interface {
	// Submit hands a built command and its payload descriptor to the
	// device. It returns a Token identifying the command for later
	// matching against CompletionEvent, or an error if the transport is
	// disconnected.
	Submit(cmd kvtypes.Command, p payload.Descriptor) (Token, error)

	// Poll returns any completions that became available since the last
	// call. It must never block: this is the "drain completions"
	// primitive of spec.md §5.
	Poll() []CompletionEvent
}
