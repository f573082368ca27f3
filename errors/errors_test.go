package errors

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncludesCallSite(t *testing.T) {
	err := New("something broke: %s", "disk")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\[errors_test\.go:\d+\] something broke: disk$`), err.Error())
}

func TestWrapfNilStaysNil(t *testing.T) {
	assert.NoError(t, Wrapf(nil, "ignored"))
}

func TestWrapfPreservesChain(t *testing.T) {
	base := fmt.Errorf("base failure")
	wrapped := Wrapf(base, "loading config from %s", "/tmp/x")

	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "loading config from /tmp/x")
	assert.Contains(t, wrapped.Error(), "base failure")
}
