// Package command assembles 64-byte NVMe command words for the seven KV
// opcodes: key packing (Key Packer), store-flag and select-header-option
// validation (Flag Validator), and the per-opcode command builders
// (Command Builder).
package command

import (
	"nvmekv/internal/buf"
	"nvmekv/pkg/kvtypes"
)

// MaxKeyLength is the largest key the device's 16-byte key field can hold.
const MaxKeyLength = 16

// PackKey writes key into the four key dwords of cmd (CDW15, CDW14, RSVD3,
// RSVD2) in the device's prescribed byte order: key byte 0 lands in the
// most-significant byte of CDW15, key byte 15 in the least-significant byte
// of RSVD2. Bytes past len(key) are treated as zero. It returns
// ErrKeyTooLong without touching cmd if len(key) exceeds MaxKeyLength.
func PackKey(cmd *kvtypes.Command, key []byte) error {
	if len(key) > MaxKeyLength {
		return kvtypes.ErrKeyTooLong
	}

	word := func(base int) uint32 {
		return uint32(buf.Byte(key, base))<<24 |
			uint32(buf.Byte(key, base+1))<<16 |
			uint32(buf.Byte(key, base+2))<<8 |
			uint32(buf.Byte(key, base+3))
	}

	cmd.PutWord(kvtypes.CDW15, word(0))
	cmd.PutWord(kvtypes.CDW14, word(4))
	cmd.PutWord(kvtypes.RSVD3, word(8))
	cmd.PutWord(kvtypes.RSVD2, word(12))
	return nil
}

// DecodeKey reverses PackKey, reading the 16-byte zero-padded key field back
// out of cmd. Used by tests to verify the packer's round-trip property and
// by internal/devicesim to recover the key from a submitted command.
func DecodeKey(cmd *kvtypes.Command) []byte {
	out := make([]byte, MaxKeyLength)
	words := []uint32{
		cmd.Word(kvtypes.CDW15),
		cmd.Word(kvtypes.CDW14),
		cmd.Word(kvtypes.RSVD3),
		cmd.Word(kvtypes.RSVD2),
	}
	for wi, w := range words {
		out[wi*4+0] = byte(w >> 24)
		out[wi*4+1] = byte(w >> 16)
		out[wi*4+2] = byte(w >> 8)
		out[wi*4+3] = byte(w)
	}
	return out
}
