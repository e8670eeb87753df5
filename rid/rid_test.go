package rid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndFields(t *testing.T) {
	r := New(12, 345)
	assert.Equal(t, uint16(12), r.ClusterID)
	assert.Equal(t, uint64(345), r.Position)
}

func TestString(t *testing.T) {
	assert.Equal(t, "#12:345", New(12, 345).String())
	assert.Equal(t, "#0:0", New(0, 0).String())
}

func TestEquality(t *testing.T) {
	assert.Equal(t, New(1, 2), New(1, 2))
	assert.NotEqual(t, New(1, 2), New(1, 3))
}
