/*
 * MIT License
 *
 * Copyright (c) 2024-2026 Janus Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	t.Run("With root path", func(t *testing.T) {
		path := RootPath("sys")
		assert.Equal(t, "/sys", path.String())
		assert.Equal(t, "sys", path.Name())
		assert.Equal(t, 1, path.Depth())
		assert.Nil(t, path.Parent())
	})
	t.Run("With child paths", func(t *testing.T) {
		path := RootPath("sys").Child("a").Child("b")
		assert.Equal(t, "/sys/a/b", path.String())
		assert.Equal(t, "b", path.Name())
		assert.Equal(t, 3, path.Depth())
		assert.Equal(t, []string{"sys", "a", "b"}, path.Segments())
	})
	t.Run("With parent traversal", func(t *testing.T) {
		path := RootPath("sys").Child("a").Child("b")
		parent := path.Parent()
		require.NotNil(t, parent)
		assert.Equal(t, "/sys/a", parent.String())
		grandParent := parent.Parent()
		require.NotNil(t, grandParent)
		assert.Equal(t, "/sys", grandParent.String())
		assert.Nil(t, grandParent.Parent())
	})
	t.Run("With Child immutability", func(t *testing.T) {
		base := RootPath("sys").Child("a")
		first := base.Child("b")
		second := base.Child("c")
		assert.Equal(t, "/sys/a", base.String())
		assert.Equal(t, "/sys/a/b", first.String())
		assert.Equal(t, "/sys/a/c", second.String())
	})
	t.Run("With equality", func(t *testing.T) {
		first := RootPath("sys").Child("a")
		second := RootPath("sys").Child("a")
		third := RootPath("sys").Child("b")
		assert.True(t, first.Equals(second))
		assert.False(t, first.Equals(third))
		assert.False(t, first.Equals(nil))
	})
}
