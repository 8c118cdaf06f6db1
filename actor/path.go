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

import "strings"

// Path is the hierarchical address of an actor within a system. Paths are
// immutable: Child returns a new Path and never mutates the receiver.
//
// The textual form is slash-separated with a leading slash, e.g. the child
// "b" of the child "a" of the root "sys" renders as "/sys/a/b".
type Path struct {
	segments []string
	str      string
}

// RootPath creates the path of a root actor, i.e. "/name".
func RootPath(name string) *Path {
	return &Path{
		segments: []string{name},
		str:      "/" + name,
	}
}

// Child returns the path of the direct child with the given name.
func (p *Path) Child(name string) *Path {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, name)
	return &Path{
		segments: segments,
		str:      p.str + "/" + name,
	}
}

// Parent returns the path of the direct parent, or nil for a root path.
func (p *Path) Parent() *Path {
	if len(p.segments) <= 1 {
		return nil
	}
	segments := p.segments[:len(p.segments)-1]
	return &Path{
		segments: segments,
		str:      "/" + strings.Join(segments, "/"),
	}
}

// Name returns the last segment of the path.
func (p *Path) Name() string {
	return p.segments[len(p.segments)-1]
}

// Segments returns the path segments from root to leaf.
func (p *Path) Segments() []string {
	segments := make([]string, len(p.segments))
	copy(segments, p.segments)
	return segments
}

// Depth returns the number of segments in the path. A root path has depth 1.
func (p *Path) Depth() int {
	return len(p.segments)
}

// String returns the textual form of the path.
func (p *Path) String() string {
	return p.str
}

// Equals returns true when both paths address the same actor.
func (p *Path) Equals(other *Path) bool {
	if other == nil {
		return false
	}
	return p.str == other.str
}
