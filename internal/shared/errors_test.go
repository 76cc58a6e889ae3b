package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapStorage(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := WrapStorage("upsert event", cause)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "upsert event")
}
