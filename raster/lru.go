// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	xfont "golang.org/x/image/font"

	"lwtk.org/font"
)

// faceCache keeps the most recently used sized faces.
type faceCache struct {
	m          map[faceKey]*faceElem
	head, tail *faceElem
}

type faceElem struct {
	next, prev *faceElem
	key        faceKey
	face       xfont.Face
}

type faceKey struct {
	face font.Face
	size float64
}

const maxFaces = 32

func (c *faceCache) Get(k faceKey) (xfont.Face, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.face, true
	}
	return nil, false
}

func (c *faceCache) Put(k faceKey, f xfont.Face) {
	if c.m == nil {
		c.m = make(map[faceKey]*faceElem)
		c.head = new(faceElem)
		c.tail = new(faceElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	val := &faceElem{key: k, face: f}
	c.m[k] = val
	c.insert(val)
	if len(c.m) > maxFaces {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
		oldest.face.Close()
	}
}

func (c *faceCache) Len() int {
	return len(c.m)
}

func (c *faceCache) remove(e *faceElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *faceCache) insert(e *faceElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
