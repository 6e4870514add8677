// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package acidmap

import (
	"golang.org/x/exp/constraints"
)

// LessFunc - strict weak order over keys
//
// must be pure and stable for the lifetime of the map; two keys a and
// b are considered equal iff neither less(a,b) nor less(b,a)
type LessFunc[K any] func(a K, b K) bool

// Map - type to hold the root node of a tree and its ordering
type Map[K any, V any] struct {
	root       *node[K, V]
	count      int
	less       LessFunc[K]
	pool       *node[K, V] // linked list of reclaimed nodes
	totalNodes int         // total nodes created by this map
	freeNodes  int         // number of nodes in the pool
}

// New - create an initially empty map ordered by the natural "<" of
// the key type
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](func(a K, b K) bool { return a < b })
}

// NewFunc - create an initially empty map ordered by a caller
// supplied comparator; less must not be nil
func NewFunc[K any, V any](less LessFunc[K]) *Map[K, V] {
	if nil == less {
		panic("acidmap: nil comparator")
	}
	return &Map[K, V]{
		root:  nil,
		count: 0,
		less:  less,
	}
}

// IsEmpty - true if map contains no live entries
func (m *Map[K, V]) IsEmpty() bool {
	return nil == m.root
}

// Count - number of live entries currently in the map
func (m *Map[K, V]) Count() int {
	return m.count
}

// Depth - height of the tree, zero when empty
func (m *Map[K, V]) Depth() int {
	return m.root.h()
}
