package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func TestDeref(t *testing.T) {
	assert.True(t, ptr.Deref(nil, true))
	assert.False(t, ptr.Deref(ptr.New(false), true))
	assert.Equal(t, "a", ptr.Deref(ptr.New("a"), ""))
}
