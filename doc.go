// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package acidmap - an AVL balanced ordered map with the addition of
// parent pointers to allow iteration through the nodes
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// This version keeps iterators usable across structural changes on
// the same map.  Deleting the element an iterator references leaves
// the iterator on a logically deleted node: the entry can still be
// read and the iterator can still be advanced, landing on the nearest
// surviving neighbour.  Deleted nodes are kept allocated for as long
// as any iterator can reach them and are recycled afterwards.
//
// Keys are ordered by a strict weak order supplied at creation time;
// no equality or hashing is ever required.  An insert with an already
// present key does not overwrite, it reports "not inserted".
package acidmap
