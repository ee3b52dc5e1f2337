// Package devicesim is an in-process fake KV device: it implements
// qpair.Transport over a plain in-memory map, letting tests and the CLI
// harness exercise the full command-assembly-through-completion path
// without real PCIe hardware. It is a test collaborator, not a
// specification of on-device behavior: the on-device KV storage engine and
// the SELECT query executor are explicitly out of scope (spec §1), so the
// SELECT side of this simulator answers from a small fixture table rather
// than evaluating the query.
package devicesim

import (
	"bytes"
	"sort"

	"nvmekv/internal/buf"
	"nvmekv/internal/command"
	"nvmekv/internal/payload"
	"nvmekv/internal/qpair"
	"nvmekv/pkg/kvtypes"
)

// Device is a single-namespace fake KV store plus a SELECT result-set
// table. It is not safe for concurrent use, matching the single-owner
// queue-pair model it stands in for.
type Device struct {
	keys         map[string][]byte
	selects      map[uint32][]byte
	nextSelectID uint32
	nextToken    qpair.Token
	pending      []qpair.CompletionEvent
}

// New returns an empty simulated device.
func New() *Device {
	return &Device{
		keys:    make(map[string][]byte),
		selects: make(map[uint32][]byte),
	}
}

// Submit implements qpair.Transport. The simulator executes the command
// immediately but queues its completion for the next Poll, so callers
// still observe the BOUND → SUBMITTED → COMPLETED state machine rather
// than a synchronous call.
func (d *Device) Submit(cmd kvtypes.Command, p payload.Descriptor) (qpair.Token, error) {
	d.nextToken++
	tok := d.nextToken
	d.pending = append(d.pending, qpair.CompletionEvent{
		Token:      tok,
		Completion: d.execute(cmd, p),
	})
	return tok, nil
}

// Poll implements qpair.Transport.
func (d *Device) Poll() []qpair.CompletionEvent {
	out := d.pending
	d.pending = nil
	return out
}

func (d *Device) execute(cmd kvtypes.Command, p payload.Descriptor) kvtypes.Completion {
	op := cmd.Opcode()
	keyLen := int(cmd.Word(kvtypes.CDW11) & 0xFF)
	full := command.DecodeKey(&cmd)
	if keyLen > len(full) {
		keyLen = len(full)
	}
	key := string(full[:keyLen])

	switch op {
	case kvtypes.OpcodeList:
		return d.list(key, p)
	case kvtypes.OpcodeDelete:
		return d.delete(key)
	case kvtypes.OpcodeExist:
		return d.exist(key)
	case kvtypes.OpcodeStore:
		return d.store(key, cmd, p)
	case kvtypes.OpcodeRetrieve:
		return d.retrieve(key, cmd, p)
	case kvtypes.OpcodeSendSelect:
		return d.sendSelect(p)
	case kvtypes.OpcodeRetrieveSelect:
		return d.retrieveSelect(cmd, p)
	default:
		return success(0)
	}
}

func (d *Device) list(prefix string, p payload.Descriptor) kvtypes.Completion {
	var matched []string
	for k := range d.keys {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			matched = append(matched, k)
		}
	}
	sort.Strings(matched)

	if c, ok := p.(payload.Contiguous); ok {
		encodeListBuffer(c.Addr, matched)
	}
	return success(uint32(len(matched)))
}

func (d *Device) delete(key string) kvtypes.Completion {
	if _, ok := d.keys[key]; !ok {
		return kvtypes.Completion{Status: kvtypes.StatusKeyDoesNotExist}
	}
	delete(d.keys, key)
	return success(0)
}

func (d *Device) exist(key string) kvtypes.Completion {
	if _, ok := d.keys[key]; !ok {
		return kvtypes.Completion{Status: kvtypes.StatusKeyDoesNotExist}
	}
	return success(0)
}

func (d *Device) store(key string, cmd kvtypes.Command, p payload.Descriptor) kvtypes.Completion {
	flags := kvtypes.StoreFlag(cmd.Word(kvtypes.CDW11) >> 8)
	_, exists := d.keys[key]

	if flags&kvtypes.StoreFlagMustExist != 0 && !exists {
		return kvtypes.Completion{Status: kvtypes.StatusKeyDoesNotExist}
	}
	if flags&kvtypes.StoreFlagMustNotExist != 0 && exists {
		return kvtypes.Completion{Status: kvtypes.StatusKeyExists}
	}

	c, _ := p.(payload.Contiguous)
	value := append([]byte(nil), c.Addr...)
	if flags&kvtypes.StoreFlagAppend != 0 && exists {
		d.keys[key] = append(d.keys[key], value...)
	} else {
		d.keys[key] = value
	}
	return success(0)
}

func (d *Device) retrieve(key string, cmd kvtypes.Command, p payload.Descriptor) kvtypes.Completion {
	value, exists := d.keys[key]
	if !exists {
		return kvtypes.Completion{Status: kvtypes.StatusKeyDoesNotExist}
	}

	offset := uint64(cmd.Word(kvtypes.CDW12))
	if c, ok := p.(payload.Contiguous); ok {
		copySlice(c.Addr, value, offset)
	}
	return success(uint32(len(value)))
}

func (d *Device) sendSelect(p payload.Descriptor) kvtypes.Completion {
	var query string
	if c, ok := p.(payload.Contiguous); ok {
		query = string(bytes.TrimRight(c.Addr, "\x00"))
	}

	d.nextSelectID++
	id := d.nextSelectID
	d.selects[id] = resultFor(query)
	return success(id)
}

func (d *Device) retrieveSelect(cmd kvtypes.Command, p payload.Descriptor) kvtypes.Completion {
	selectID := cmd.Word(kvtypes.CDW13)
	offset := cmd.Word(kvtypes.CDW12)
	opts := kvtypes.SelectRetrieveOpt(cmd.Word(kvtypes.CDW11) >> 8)

	result, ok := d.selects[selectID]
	if !ok {
		return kvtypes.Completion{Status: kvtypes.StatusKeyDoesNotExist}
	}

	if c, okc := p.(payload.Contiguous); okc {
		copySlice(c.Addr, result, uint64(offset))
	}
	if opts == kvtypes.SelectRetrieveFreeAll {
		delete(d.selects, selectID)
	}
	return success(uint32(len(result)))
}

func success(cdw0 uint32) kvtypes.Completion {
	return kvtypes.Completion{Status: kvtypes.StatusSuccess, CDW0: cdw0}
}

// copySlice copies as much of src[offset:] as fits into dst, leaving the
// rest of dst untouched.
func copySlice(dst []byte, src []byte, offset uint64) {
	if offset >= uint64(len(src)) {
		return
	}
	copy(dst, src[offset:])
}

// encodeListBuffer writes keys into out using the little-endian layout of
// spec §6: a leading u32 count, then per key a u16 length, the key bytes,
// and zero padding so each record's (len+2) rounds up to a multiple of 4.
func encodeListBuffer(out []byte, keys []string) {
	if len(out) < 4 {
		return
	}
	buf.PutU32LE(out, 0, uint32(len(keys)))

	off := 4
	for _, k := range keys {
		recLen := len(k) + 2
		padded := (recLen + 3) &^ 3
		if off+padded > len(out) {
			return
		}
		buf.PutU16LE(out, off, uint16(len(k)))
		copy(out[off+2:], k)
		off += padded
	}
}
