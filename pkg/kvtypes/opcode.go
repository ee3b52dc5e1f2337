package kvtypes

// Opcode is one of the seven vendor-specific KV command opcodes. Values are
// wire-format constants and must never change.
type Opcode uint8

const (
	OpcodeList            Opcode = 0x06
	OpcodeDelete          Opcode = 0x10
	OpcodeExist           Opcode = 0x14
	OpcodeStore           Opcode = 0x81
	OpcodeRetrieve        Opcode = 0x82
	OpcodeSendSelect      Opcode = 0x85
	OpcodeRetrieveSelect  Opcode = 0x86
)

func (op Opcode) String() string {
	switch op {
	case OpcodeList:
		return "KV_LIST"
	case OpcodeDelete:
		return "KV_DELETE"
	case OpcodeExist:
		return "KV_EXIST"
	case OpcodeStore:
		return "KV_STORE"
	case OpcodeRetrieve:
		return "KV_RETRIEVE"
	case OpcodeSendSelect:
		return "KV_SEND_SELECT"
	case OpcodeRetrieveSelect:
		return "KV_RETRIEVE_SELECT"
	default:
		return "KV_UNKNOWN"
	}
}

// StoreFlag is an 8-bit mask over the KV_STORE option bits.
type StoreFlag uint8

const (
	StoreFlagMustExist    StoreFlag = 0x01
	StoreFlagMustNotExist StoreFlag = 0x02
	StoreFlagAppend       StoreFlag = 0x08

	// StoreFlagValidMask is the set of bits STORE accepts; any other bit set
	// is rejected by the Flag Validator.
	StoreFlagValidMask StoreFlag = 0x0B
)

// Valid reports whether f contains only recognized bits and does not set
// both MustExist and MustNotExist.
func (f StoreFlag) Valid() bool {
	if f&^StoreFlagValidMask != 0 {
		return false
	}
	if f&(StoreFlagMustExist|StoreFlagMustNotExist) == (StoreFlagMustExist | StoreFlagMustNotExist) {
		return false
	}
	return true
}

// SelectHeaderOpt is a 2-bit mask controlling header handling on SEND_SELECT.
type SelectHeaderOpt uint8

const (
	SelectHeaderInput  SelectHeaderOpt = 0x01
	SelectHeaderOutput SelectHeaderOpt = 0x02

	SelectHeaderValidMask SelectHeaderOpt = 0x03
)

// Valid reports whether opts contains only recognized bits.
func (opts SelectHeaderOpt) Valid() bool {
	return opts&^SelectHeaderValidMask == 0
}

// SelectDataType names the CSV/JSON/PARQUET format of SELECT input or output.
type SelectDataType uint8

const (
	SelectDataCSV     SelectDataType = 0
	SelectDataJSON    SelectDataType = 1
	SelectDataParquet SelectDataType = 2
)

// SelectRetrieveOpt governs whether the device retains or frees a SELECT
// result set as RETRIEVE_SELECT consumes it. The core never tracks this
// itself; it is supplied by the caller on each retrieve.
type SelectRetrieveOpt uint8

const (
	SelectRetrieveFreeAll   SelectRetrieveOpt = 0
	SelectRetrieveNoFree    SelectRetrieveOpt = 1
	SelectRetrieveFreeIfFit SelectRetrieveOpt = 2
)
