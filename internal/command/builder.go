package command

import "nvmekv/pkg/kvtypes"

func baseCommand(op kvtypes.Opcode, nsid uint32) kvtypes.Command {
	var cmd kvtypes.Command
	cmd.SetOpcodeAndNamespace(op, nsid)
	return cmd
}

// keyedCommand builds the opcode/namespace header and packs key into the
// command's key dwords, enforcing the empty-key policy described at each
// call site. allowEmpty is false for every opcode except LIST.
func keyedCommand(op kvtypes.Opcode, nsid uint32, key []byte, allowEmpty bool) (kvtypes.Command, error) {
	cmd := baseCommand(op, nsid)
	if len(key) == 0 && !allowEmpty {
		return cmd, kvtypes.ErrEmptyKey
	}
	if err := PackKey(&cmd, key); err != nil {
		return cmd, err
	}
	cmd.PutWord(kvtypes.CDW11, uint32(len(key))&0xFF)
	return cmd, nil
}

// BuildList assembles a KV_LIST command. An empty prefix is valid and
// matches every key in the namespace.
func BuildList(nsid uint32, prefix []byte, bufferSize uint32) (kvtypes.Command, error) {
	cmd, err := keyedCommand(kvtypes.OpcodeList, nsid, prefix, true)
	if err != nil {
		return cmd, err
	}
	cmd.PutWord(kvtypes.CDW10, bufferSize)
	return cmd, nil
}

// BuildDelete assembles a KV_DELETE command. The key must be non-empty.
func BuildDelete(nsid uint32, key []byte) (kvtypes.Command, error) {
	return keyedCommand(kvtypes.OpcodeDelete, nsid, key, false)
}

// BuildExist assembles a KV_EXIST command. The key must be non-empty.
func BuildExist(nsid uint32, key []byte) (kvtypes.Command, error) {
	return keyedCommand(kvtypes.OpcodeExist, nsid, key, false)
}

// BuildStore assembles a KV_STORE command. The key must be non-empty and
// flags must satisfy ValidateStoreFlags.
func BuildStore(nsid uint32, key []byte, payloadSize uint64, flags kvtypes.StoreFlag) (kvtypes.Command, error) {
	if err := ValidateStoreFlags(flags); err != nil {
		return kvtypes.Command{}, err
	}
	cmd, err := keyedCommand(kvtypes.OpcodeStore, nsid, key, false)
	if err != nil {
		return cmd, err
	}
	cmd.PutWord(kvtypes.CDW10, uint32(payloadSize))
	cmd.PutWord(kvtypes.CDW11, uint32(flags)<<8|uint32(len(key))&0xFF)
	return cmd, nil
}

// BuildRetrieve assembles a KV_RETRIEVE command. The key must be non-empty.
// offset lets the caller continue a retrieve of a value that didn't fit in
// a single buffer.
func BuildRetrieve(nsid uint32, key []byte, bufferSize uint64, offset uint64) (kvtypes.Command, error) {
	cmd, err := keyedCommand(kvtypes.OpcodeRetrieve, nsid, key, false)
	if err != nil {
		return cmd, err
	}
	cmd.PutWord(kvtypes.CDW12, uint32(offset))
	cmd.PutWord(kvtypes.CDW10, uint32(bufferSize))
	return cmd, nil
}

// BuildSendSelect assembles a KV_SEND_SELECT command. The key must be
// non-empty and headerOpts must satisfy ValidateSelectHeaderOpts. queryLen
// is the query string length in bytes, excluding the terminator the
// SELECT-Send Trampoline appends to the wire payload (see internal/trampoline;
// this asymmetry is intentional, not an off-by-one).
func BuildSendSelect(nsid uint32, key []byte, queryLen uint64, input, output kvtypes.SelectDataType, headerOpts kvtypes.SelectHeaderOpt) (kvtypes.Command, error) {
	if err := ValidateSelectHeaderOpts(headerOpts); err != nil {
		return kvtypes.Command{}, err
	}
	cmd, err := keyedCommand(kvtypes.OpcodeSendSelect, nsid, key, false)
	if err != nil {
		return cmd, err
	}
	composed := uint32(headerOpts) | uint32(input)<<8 | uint32(output)<<16
	cmd.PutWord(kvtypes.CDW11, composed<<8|uint32(len(key))&0xFF)
	cmd.PutWord(kvtypes.CDW10, uint32(queryLen))
	return cmd, nil
}

// BuildRetrieveSelect assembles a KV_RETRIEVE_SELECT command. There is no
// key on this opcode: the key packer is bypassed entirely and the
// key-length byte of CDW11 is zero, with opts in the bits above it.
func BuildRetrieveSelect(nsid uint32, selectID uint32, offset uint32, bufferSize uint32, opts kvtypes.SelectRetrieveOpt) (kvtypes.Command, error) {
	cmd := baseCommand(kvtypes.OpcodeRetrieveSelect, nsid)
	cmd.PutWord(kvtypes.CDW10, bufferSize)
	cmd.PutWord(kvtypes.CDW11, uint32(opts)<<8)
	cmd.PutWord(kvtypes.CDW12, offset)
	cmd.PutWord(kvtypes.CDW13, selectID)
	return cmd, nil
}
