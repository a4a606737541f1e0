package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeClass(t *testing.T) {
	assert.Equal(t, 1024, sizeClass(1))
	assert.Equal(t, 1024, sizeClass(1024))
	assert.Equal(t, 2048, sizeClass(1025))
	assert.Equal(t, 4096, sizeClass(4096))
	assert.Equal(t, 5120, sizeClass(4097))
}

func TestGetFloat32Length(t *testing.T) {
	buf := GetFloat32(100)
	assert.Len(t, buf, 100)
	assert.GreaterOrEqual(t, cap(buf), 1024)
	PutFloat32(buf)
}

func TestGetFloat32LargeRequest(t *testing.T) {
	buf := GetFloat32(10000)
	assert.Len(t, buf, 10000)
	PutFloat32(buf)
}

func TestPutFloat32Nil(t *testing.T) {
	assert.NotPanics(t, func() { PutFloat32(nil) })
}

func TestRoundTripReuse(t *testing.T) {
	buf := GetFloat32(4096)
	for i := range buf {
		buf[i] = float32(i)
	}
	PutFloat32(buf)

	// A fresh buffer of the same class may carry stale data; callers are
	// expected to overwrite it fully.
	again := GetFloat32(4096)
	assert.Len(t, again, 4096)
	PutFloat32(again)
}
