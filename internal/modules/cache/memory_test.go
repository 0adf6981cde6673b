package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	m := NewManager[string](time.Minute, time.Minute)

	v, err := m.GetValue("missing")
	require.NoError(t, err)
	require.Equal(t, "", v)

	require.NoError(t, m.SetWithExpiration("k", "v", time.Minute))
	v, err = m.GetValue("k")
	require.NoError(t, err)
	require.Equal(t, "v", v)

	require.NoError(t, m.Delete("k"))
	v, err = m.GetValue("k")
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestManager_Expiration(t *testing.T) {
	m := NewManager[[]int](time.Minute, time.Minute)
	require.NoError(t, m.SetWithExpiration("k", []int{1}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)
	v, err := m.GetValue("k")
	require.NoError(t, err)
	require.Nil(t, v)
}
