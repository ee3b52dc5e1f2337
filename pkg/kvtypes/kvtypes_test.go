package kvtypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFlagValid(t *testing.T) {
	cases := []struct {
		name string
		flag StoreFlag
		want bool
	}{
		{"zero", 0, true},
		{"must exist", StoreFlagMustExist, true},
		{"must not exist", StoreFlagMustNotExist, true},
		{"append", StoreFlagAppend, true},
		{"full valid mask", StoreFlagValidMask, false}, // sets both exist bits
		{"exist and not exist", StoreFlagMustExist | StoreFlagMustNotExist, false},
		{"append and must exist", StoreFlagAppend | StoreFlagMustExist, true},
		{"unknown bit", 0x04, false},
		{"superset of mask", 0xFF, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flag.Valid())
		})
	}
}

func TestSelectHeaderOptValid(t *testing.T) {
	assert.True(t, SelectHeaderOpt(0).Valid())
	assert.True(t, SelectHeaderInput.Valid())
	assert.True(t, (SelectHeaderInput | SelectHeaderOutput).Valid())
	assert.False(t, SelectHeaderOpt(0x04).Valid())
	assert.False(t, SelectHeaderOpt(0xFF).Valid())
}

func TestCommandWordsLittleEndian(t *testing.T) {
	var c Command
	c.SetOpcodeAndNamespace(OpcodeStore, 1)
	c.PutWord(CDW11, 0xAABBCCDD)

	b := c.Bytes()
	require.Len(t, b, Size)
	assert.Equal(t, byte(OpcodeStore), b[0])
	assert.Equal(t, byte(0), b[1]) // upper opcode-word bytes untouched
	assert.Equal(t, byte(1), b[CDW1*WordSize])
	assert.Equal(t, []byte{0xDD, 0xCC, 0xBB, 0xAA}, b[CDW11*WordSize:CDW11*WordSize+4])
	assert.Equal(t, OpcodeStore, c.Opcode())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := &Error{Kind: ErrKindOutOfMemory, Msg: "alloc failed", Err: cause}

	assert.Equal(t, "alloc failed: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "out-of-memory", wrapped.Kind.String())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestSentinelsCarryExpectedKinds(t *testing.T) {
	assert.Equal(t, ErrKindInvalidArgument, ErrKeyTooLong.Kind)
	assert.Equal(t, ErrKindInvalidArgument, ErrEmptyKey.Kind)
	assert.Equal(t, ErrKindInvalidArgument, ErrInvalidStoreFlags.Kind)
	assert.Equal(t, ErrKindInvalidArgument, ErrInvalidSelectHeaderOpts.Kind)
	assert.Equal(t, ErrKindOutOfMemory, ErrQueuePairExhausted.Kind)
	assert.Equal(t, ErrKindOutOfMemory, ErrScratchAlloc.Kind)
	assert.Equal(t, ErrKindTransportFailed, ErrTransportFailed.Kind)
	assert.Equal(t, ErrKindBadDescriptor, ErrReadOnlyDescriptor.Kind)
	assert.Equal(t, ErrKindOutOfMemory, ErrIOObjectPoolExhausted.Kind)
}

func TestStatusOk(t *testing.T) {
	assert.True(t, StatusSuccess.Ok())
	assert.False(t, StatusKeyDoesNotExist.Ok())
}
