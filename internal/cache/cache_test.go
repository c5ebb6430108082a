package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInfoKey(t *testing.T) {
	assert.Equal(t, "userinfo:user:42", UserInfoKey(42))
}

// Without a redis client every operation must degrade to a miss or a
// no-op instead of panicking; the server and the tests rely on this.
func TestNilClientIsANoop(t *testing.T) {
	ctx := context.Background()

	var dest struct{ V int }
	found, err := Get(ctx, nil, "some:key", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, Set(ctx, nil, "some:key", dest, time.Minute))
	assert.NoError(t, InvalidateUser(ctx, nil, 1))
}
