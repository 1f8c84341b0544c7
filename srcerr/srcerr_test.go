package srcerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/0xalexb/srcfg/srcerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilErrorUsesKindName(t *testing.T) {
	t.Parallel()

	err := srcerr.New(srcerr.KindUnsupported, nil)

	require.EqualError(t, err, "unsupported")
	assert.Equal(t, srcerr.KindUnsupported, srcerr.KindOf(err))
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	t.Parallel()

	sentinel := srcerr.New(srcerr.KindConflict, errors.New("section is an array"))
	wrapped := fmt.Errorf("section %q: %w", "servers", sentinel)

	assert.Equal(t, srcerr.KindConflict, srcerr.KindOf(wrapped))
	assert.True(t, srcerr.Is(wrapped, srcerr.KindConflict))
	assert.False(t, srcerr.Is(wrapped, srcerr.KindSyntax))
	require.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, `section "servers": section is an array`, wrapped.Error())
}

func TestKindOf_Unclassified(t *testing.T) {
	t.Parallel()

	assert.Equal(t, srcerr.Kind(""), srcerr.KindOf(errors.New("plain")))
	assert.Equal(t, srcerr.Kind(""), srcerr.KindOf(nil))
	assert.False(t, srcerr.Is(nil, srcerr.KindSyntax))
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := srcerr.Newf(srcerr.KindSyntax, "unknown directive %q", "@include")

	require.EqualError(t, err, `unknown directive "@include"`)
	assert.True(t, srcerr.Is(err, srcerr.KindSyntax))
}

func TestError_NilReceiver(t *testing.T) {
	t.Parallel()

	var err *srcerr.Error

	assert.Empty(t, err.Error())
	require.NoError(t, err.Unwrap())
}
