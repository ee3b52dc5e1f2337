// Package qpair implements the Request Binder and the queue pair it binds
// requests onto (spec §4.4): a fixed-depth free request pool, submission of
// a built command and payload descriptor to a Transport, and non-blocking
// completion draining.
//
// A QueuePair is NOT thread-safe. Exactly one goroutine owns a queue pair
// and drives both Bind and DrainCompletions; this mirrors the
// single-threaded-per-queue-pair model of the underlying transport and lets
// the hot path skip locking entirely.
package qpair

import (
	"nvmekv/internal/payload"
	"nvmekv/pkg/kvtypes"
)

// QueuePair binds built commands to a Transport and surfaces their
// completions. It owns a fixed-depth pool of request slots; submitting a
// command beyond that depth without first draining completions returns
// kvtypes.ErrQueuePairExhausted.
type QueuePair struct {
	transport Transport
	pool      *pool
	inFlight  map[Token]*request
}

// New constructs a queue pair of the given depth driving transport. Depth
// must be positive; it bounds how many commands may be outstanding at once.
func New(transport Transport, depth int) *QueuePair {
	if depth <= 0 {
		depth = 1
	}
	return &QueuePair{
		transport: transport,
		pool:      newPool(depth),
		inFlight:  make(map[Token]*request, depth),
	}
}

// Depth returns the queue pair's fixed slot capacity.
func (q *QueuePair) Depth() int { return q.pool.depth() }

// Available returns how many request slots are currently free.
func (q *QueuePair) Available() int { return q.pool.available() }

// Bind is the Request Binder: it obtains a free request slot, attaches the
// built command and its payload descriptor, installs the completion
// callback, and hands the pair off to the transport's submit primitive.
//
// Bind returns kvtypes.ErrQueuePairExhausted if every slot is in flight, or
// a wrapped kvtypes.ErrTransportFailed if the transport rejects the
// command. On either error the slot (if one was acquired) is returned to
// the free pool and cb is never invoked.
func (q *QueuePair) Bind(cmd kvtypes.Command, p payload.Descriptor, cb CompletionFunc) error {
	r, ok := q.pool.acquire()
	if !ok {
		return kvtypes.ErrQueuePairExhausted
	}

	token, err := q.transport.Submit(cmd, p)
	if err != nil {
		q.pool.release(r)
		return &kvtypes.Error{
			Kind: kvtypes.ErrKindTransportFailed,
			Msg:  kvtypes.ErrTransportFailed.Msg,
			Err:  err,
		}
	}

	r.callback = cb
	r.token = token
	r.inFlight = true
	q.inFlight[token] = r
	return nil
}

// DrainCompletions polls the transport once and synchronously invokes the
// completion callback for every event it returns, then returns the slot to
// the free pool. It never blocks and returns the number of completions
// processed. Events for unknown tokens (already drained, or from another
// queue pair sharing the transport) are ignored.
func (q *QueuePair) DrainCompletions() int {
	events := q.transport.Poll()
	processed := 0
	for _, ev := range events {
		r, ok := q.inFlight[ev.Token]
		if !ok {
			continue
		}
		delete(q.inFlight, ev.Token)
		cb := r.callback
		q.pool.release(r)
		processed++
		if cb != nil {
			cb(ev.Completion)
		}
	}
	return processed
}
