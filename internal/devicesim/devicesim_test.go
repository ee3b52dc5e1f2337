package devicesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nvmekv/internal/command"
	"nvmekv/internal/payload"
	"nvmekv/pkg/kvtypes"
)

func TestDeleteOfMissingKeyReportsKeyDoesNotExist(t *testing.T) {
	d := New()
	cmd, err := command.BuildDelete(1, []byte("missing"))
	require.NoError(t, err)

	tok, err := d.Submit(cmd, nil)
	require.NoError(t, err)

	events := d.Poll()
	require.Len(t, events, 1)
	assert.Equal(t, tok, events[0].Token)
	assert.Equal(t, kvtypes.StatusKeyDoesNotExist, events[0].Completion.Status)
}

func TestStoreThenDeleteThenExistRoundTrip(t *testing.T) {
	d := New()

	storeCmd, err := command.BuildStore(1, []byte("k"), 3, 0)
	require.NoError(t, err)
	_, err = d.Submit(storeCmd, payload.Contiguous{Addr: []byte("val"), Len: 3})
	require.NoError(t, err)
	require.True(t, d.Poll()[0].Completion.Status.Ok())

	existCmd, err := command.BuildExist(1, []byte("k"))
	require.NoError(t, err)
	_, err = d.Submit(existCmd, nil)
	require.NoError(t, err)
	require.True(t, d.Poll()[0].Completion.Status.Ok())

	deleteCmd, err := command.BuildDelete(1, []byte("k"))
	require.NoError(t, err)
	_, err = d.Submit(deleteCmd, nil)
	require.NoError(t, err)
	require.True(t, d.Poll()[0].Completion.Status.Ok())

	_, err = d.Submit(existCmd, nil)
	require.NoError(t, err)
	assert.Equal(t, kvtypes.StatusKeyDoesNotExist, d.Poll()[0].Completion.Status)
}

func TestEncodeListBufferLayout(t *testing.T) {
	out := make([]byte, 32)
	encodeListBuffer(out, []string{"ab", "xyz"})

	assert.Equal(t, uint32(2), uint32(out[0])|uint32(out[1])<<8|uint32(out[2])<<16|uint32(out[3])<<24)

	// record 1: len=2 ("ab") -> recLen 4, already a multiple of 4
	assert.Equal(t, uint16(2), uint16(out[4])|uint16(out[5])<<8)
	assert.Equal(t, "ab", string(out[6:8]))

	// record 2 starts at offset 8: len=3 ("xyz") -> recLen 5, padded to 8
	assert.Equal(t, uint16(3), uint16(out[8])|uint16(out[9])<<8)
	assert.Equal(t, "xyz", string(out[10:13]))
}
