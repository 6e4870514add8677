// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package acidmap

import (
	"github.com/bitmark-inc/acidmap/fault"
)

// descend from root looking for key
//
// returns the last node visited and the match; the match is nil when
// the key is absent, in which case the returned parent is the node a
// new entry for key would attach under
func (m *Map[K, V]) findNode(root *node[K, V], key K) (parent *node[K, V], p *node[K, V]) {
	p = root
	for nil != p {
		switch {
		case m.less(key, p.key):
			parent = p
			p = p.left
		case m.less(p.key, key):
			parent = p
			p = p.right
		default:
			return parent, p
		}
	}
	return parent, nil
}

// Find - iterator at the entry for key, end iterator if absent
func (m *Map[K, V]) Find(key K) *Iterator[K, V] {
	_, p := m.findNode(m.root, key)
	return m.makeIterator(p)
}

// FindFunc - lookup by a foreign key type
//
// cmp orders the search target against a stored key: negative when
// the target sorts before the key, positive when after, zero on a
// match.  Only the ordering is consulted, so any type the caller can
// compare against K is usable as a search argument.
func (m *Map[K, V]) FindFunc(cmp func(key K) int) *Iterator[K, V] {
	p := m.root
	for nil != p {
		switch c := cmp(p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return m.makeIterator(p)
		}
	}
	return m.End()
}

// Contains - true if a live entry for key exists
func (m *Map[K, V]) Contains(key K) bool {
	_, p := m.findNode(m.root, key)
	return nil != p
}

// CountKey - number of live entries for key, always 0 or 1
func (m *Map[K, V]) CountKey(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// At - value stored for key
//
// returns fault.ErrKeyNotFound when no live entry for key exists
func (m *Map[K, V]) At(key K) (V, error) {
	_, p := m.findNode(m.root, key)
	if nil == p {
		var zeroValue V
		return zeroValue, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Search - find a specific entry and its in-order position
//
// the second result is the number of live entries with smaller keys,
// or -1 when the key is absent
func (m *Map[K, V]) Search(key K) (*Iterator[K, V], int) {
	p := m.root
	index := 0
	for nil != p {
		switch {
		case m.less(key, p.key):
			p = p.left
		case m.less(p.key, key):
			index += p.left.size() + 1
			p = p.right
		default:
			return m.makeIterator(p), index + p.left.size()
		}
	}
	return m.End(), -1
}
