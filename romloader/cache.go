// This file is part of model2rom.
//
// model2rom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// model2rom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with model2rom.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/model2emu/model2rom/logger"
)

const cacheLogTag = "cache"

// Key identifies an image in the cache.
type Key struct {
	Title string
	Name  string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Title, k.Name)
}

type cacheItem struct {
	key Key
	img *Image
}

// Cache is a size bounded store of images. The least recently used images
// are evicted when the budget would be exceeded. The size of the cache never
// exceeds the budget.
type Cache struct {
	crit sync.Mutex

	budget int64
	size   int64

	// front of the list is the most recently used
	lru   *list.List
	items map[Key]*list.Element
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache(budget int64) *Cache {
	return &Cache{
		budget: budget,
		lru:    list.New(),
		items:  make(map[Key]*list.Element),
	}
}

// Get returns the image for the key and marks it as recently used.
func (c *Cache) Get(k Key) (*Image, bool) {
	c.crit.Lock()
	defer c.crit.Unlock()

	el, ok := c.items[k]
	if !ok {
		return nil, false
	}
	c.lru.MoveToFront(el)
	return el.Value.(*cacheItem).img, true
}

// Peek returns the image for the key without marking it as recently used.
func (c *Cache) Peek(k Key) (*Image, bool) {
	c.crit.Lock()
	defer c.crit.Unlock()

	el, ok := c.items[k]
	if !ok {
		return nil, false
	}
	return el.Value.(*cacheItem).img, true
}

// Touch marks the images for the keys as recently used. The first key is
// the most recent. Keys not in the cache are ignored.
func (c *Cache) Touch(keys ...Key) {
	c.crit.Lock()
	defer c.crit.Unlock()

	for i := len(keys) - 1; i >= 0; i-- {
		if el, ok := c.items[keys[i]]; ok {
			c.lru.MoveToFront(el)
		}
	}
}

// Contains returns true if the key is in the cache. The image is not marked
// as recently used.
func (c *Cache) Contains(k Key) bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	_, ok := c.items[k]
	return ok
}

// Put adds the image to the cache. Returns false if the image is larger than
// the entire budget, in which case it is not added.
func (c *Cache) Put(img *Image) bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.put(img)
}

// PutAll adds every image in a single operation. Images that are larger than
// the budget are not added and are returned.
func (c *Cache) PutAll(imgs []*Image) []*Image {
	c.crit.Lock()
	defer c.crit.Unlock()

	var rejected []*Image
	for _, img := range imgs {
		if !c.put(img) {
			rejected = append(rejected, img)
		}
	}
	return rejected
}

func (c *Cache) put(img *Image) bool {
	k := img.Key()
	n := int64(img.Len())

	if n > c.budget {
		return false
	}

	if el, ok := c.items[k]; ok {
		c.remove(el)
	}

	c.evict(c.budget - n)

	c.items[k] = c.lru.PushFront(&cacheItem{key: k, img: img})
	c.size += n

	return true
}

// evict least recently used images until the size is no larger than limit.
func (c *Cache) evict(limit int64) {
	for c.size > limit {
		el := c.lru.Back()
		if el == nil {
			return
		}
		logger.Logf(logger.Allow, cacheLogTag, "evicting %s", el.Value.(*cacheItem).key)
		c.remove(el)
	}
}

func (c *Cache) remove(el *list.Element) {
	it := el.Value.(*cacheItem)
	c.lru.Remove(el)
	delete(c.items, it.key)
	c.size -= int64(it.img.Len())
}

// Remove the image for the key. Returns false if the key was not in the
// cache.
func (c *Cache) Remove(k Key) bool {
	c.crit.Lock()
	defer c.crit.Unlock()

	el, ok := c.items[k]
	if !ok {
		return false
	}
	c.remove(el)
	return true
}

// Clear removes every image.
func (c *Cache) Clear() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.lru.Init()
	c.items = make(map[Key]*list.Element)
	c.size = 0
}

// Len returns the number of images in the cache.
func (c *Cache) Len() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.lru.Len()
}

// Size returns the number of bytes used by the images in the cache.
func (c *Cache) Size() int64 {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.size
}

// Budget returns the maximum size of the cache.
func (c *Cache) Budget() int64 {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.budget
}

// SetBudget changes the maximum size of the cache. Images are evicted
// immediately if the new budget is smaller than the current size.
func (c *Cache) SetBudget(budget int64) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.budget = budget
	c.evict(budget)
}

// Keys returns the key of every image, most recently used first.
func (c *Cache) Keys() []Key {
	c.crit.Lock()
	defer c.crit.Unlock()

	keys := make([]Key, 0, c.lru.Len())
	for el := c.lru.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*cacheItem).key)
	}
	return keys
}
