package trampoline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nvmekv/internal/dma"
	"nvmekv/pkg/kvtypes"
)

func TestPrepareQueryCopiesQueryAndTerminator(t *testing.T) {
	alloc := dma.New()
	query := "select s_name from s3object"

	buf, err := PrepareQuery(alloc, query)
	require.NoError(t, err)
	defer alloc.Free(buf)

	require.Len(t, buf, len(query)+1)
	assert.Equal(t, query, string(buf[:len(query)]))
	assert.Equal(t, byte(0), buf[len(query)], "scratch buffer must be NUL-terminated")
}

func TestWrapReleasesScratchBeforeInvokingUser(t *testing.T) {
	alloc := dma.New()
	buf, err := PrepareQuery(alloc, "x")
	require.NoError(t, err)

	var order []string
	freeingAlloc := &trackingAllocator{Allocator: alloc, onFree: func() {
		order = append(order, "free")
	}}

	cb := Wrap(freeingAlloc, buf, func(kvtypes.Completion) {
		order = append(order, "user")
	})
	cb(kvtypes.Completion{Status: kvtypes.StatusSuccess})

	assert.Equal(t, []string{"free", "user"}, order)
}

func TestWrapSGLVariantSkipsFreeButForwardsCallback(t *testing.T) {
	called := false
	cb := Wrap(dma.New(), nil, func(kvtypes.Completion) {
		called = true
	})
	cb(kvtypes.Completion{Status: kvtypes.StatusSuccess})
	assert.True(t, called)
}

func TestWrapToleratesNilUserCallback(t *testing.T) {
	alloc := dma.New()
	buf, err := PrepareQuery(alloc, "q")
	require.NoError(t, err)

	cb := Wrap(alloc, buf, nil)
	assert.NotPanics(t, func() {
		cb(kvtypes.Completion{Status: kvtypes.StatusSuccess})
	})
}

// trackingAllocator wraps a dma.Allocator to observe Free calls without
// changing Alloc behavior.
type trackingAllocator struct {
	dma.Allocator
	onFree func()
}

func (t *trackingAllocator) Free(buf []byte) error {
	if t.onFree != nil {
		t.onFree()
	}
	return t.Allocator.Free(buf)
}
