//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package botcache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetOrCreate(t *testing.T) {
	c := New[int]()
	builds := 0
	build := func() (int, error) {
		builds++
		return 42, nil
	}

	v, err := c.GetOrCreate("alice", build)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = c.GetOrCreate("alice", build)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, builds)

	_, err = c.GetOrCreate("bob", build)
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
}

func TestCache_BuildErrorNotCached(t *testing.T) {
	c := New[int]()
	_, err := c.GetOrCreate("alice", func() (int, error) {
		return 0, errors.New("boom")
	})
	require.Error(t, err)

	v, err := c.GetOrCreate("alice", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestCache_Invalidate(t *testing.T) {
	c := New[int]()
	builds := 0
	build := func() (int, error) {
		builds++
		return builds, nil
	}

	v, _ := c.GetOrCreate("alice", build)
	assert.Equal(t, 1, v)

	c.Invalidate("alice")
	v, _ = c.GetOrCreate("alice", build)
	assert.Equal(t, 2, v)

	// Invalidating a missing key is a no-op.
	c.Invalidate("ghost")
}
