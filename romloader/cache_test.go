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
	"testing"

	"github.com/model2emu/model2rom/archivefs"
	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/test"
	"github.com/model2emu/model2rom/validation"
)

func cacheImage(name string, size int) *Image {
	return newImage("test", catalog.RomEntry{Name: name, Size: size}, make([]byte, size),
		validation.Report{}, source{filename: name, archive: &archivefs.Archive{}})
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(100)

	test.ExpectSuccess(t, c.Put(cacheImage("a", 40)))
	test.ExpectSuccess(t, c.Put(cacheImage("b", 40)))
	test.ExpectEquality(t, c.Size(), int64(80))

	// a becomes the most recently used so b is evicted next
	_, ok := c.Get(Key{Title: "test", Name: "a"})
	test.ExpectSuccess(t, ok)

	test.ExpectSuccess(t, c.Put(cacheImage("c", 40)))
	test.ExpectEquality(t, c.Len(), 2)
	test.ExpectEquality(t, c.Size(), int64(80))
	test.ExpectFailure(t, c.Contains(Key{Title: "test", Name: "b"}))

	keys := c.Keys()
	test.DemandEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0].Name, "c")
	test.ExpectEquality(t, keys[1].Name, "a")
	test.ExpectEquality(t, keys[0].String(), "test/c")
}

func TestCachePeekAndTouch(t *testing.T) {
	c := NewCache(100)
	test.ExpectSuccess(t, c.Put(cacheImage("a", 30)))
	test.ExpectSuccess(t, c.Put(cacheImage("b", 30)))
	test.ExpectSuccess(t, c.Put(cacheImage("c", 30)))

	// peek leaves the order alone
	img, ok := c.Peek(Key{Title: "test", Name: "a"})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, img.Name(), "a")
	test.ExpectEquality(t, c.Keys()[2].Name, "a")

	c.Touch(Key{Title: "test", Name: "a"}, Key{Title: "test", Name: "b"}, Key{Title: "test", Name: "missing"})
	keys := c.Keys()
	test.DemandEquality(t, len(keys), 3)
	test.ExpectEquality(t, keys[0].Name, "a")
	test.ExpectEquality(t, keys[1].Name, "b")
	test.ExpectEquality(t, keys[2].Name, "c")
}

func TestCacheOversize(t *testing.T) {
	c := NewCache(100)
	test.ExpectSuccess(t, c.Put(cacheImage("a", 60)))

	// an image larger than the budget is rejected and nothing is evicted
	test.ExpectFailure(t, c.Put(cacheImage("big", 101)))
	test.ExpectEquality(t, c.Len(), 1)

	rejected := c.PutAll([]*Image{cacheImage("b", 30), cacheImage("huge", 200)})
	test.DemandEquality(t, len(rejected), 1)
	test.ExpectEquality(t, rejected[0].Name(), "huge")
	test.ExpectEquality(t, c.Size(), int64(90))
}

func TestCacheBudget(t *testing.T) {
	c := NewCache(100)
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		c.Put(cacheImage(n, 30))
		test.ExpectSuccess(t, c.Size() <= c.Budget(), n)
	}
	test.ExpectEquality(t, c.Len(), 3)

	c.SetBudget(50)
	test.ExpectEquality(t, c.Budget(), int64(50))
	test.ExpectEquality(t, c.Len(), 1)
	test.ExpectSuccess(t, c.Contains(Key{Title: "test", Name: "f"}))

	// replacing an image does not count it twice
	c.Put(cacheImage("f", 30))
	test.ExpectEquality(t, c.Size(), int64(30))

	test.ExpectSuccess(t, c.Remove(Key{Title: "test", Name: "f"}))
	test.ExpectFailure(t, c.Remove(Key{Title: "test", Name: "f"}))
	test.ExpectEquality(t, c.Size(), int64(0))

	c.Put(cacheImage("g", 10))
	c.Clear()
	test.ExpectEquality(t, c.Len(), 0)
	test.ExpectEquality(t, c.Size(), int64(0))
}

func TestImage(t *testing.T) {
	img := newImage("test", catalog.RomEntry{Name: "x", Type: catalog.Program}, []byte{1, 2, 3, 4},
		validation.Report{}, source{filename: "x", archive: &archivefs.Archive{Format: archivefs.None}})

	test.ExpectEquality(t, img.Len(), 4)
	test.ExpectEquality(t, img.Type(), catalog.Program)

	b, err := img.Byte(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(3))
	_, err = img.Byte(4)
	test.ExpectFailure(t, err)

	p := make([]byte, 3)
	n, err := img.ReadAt(p, 2)
	test.ExpectEquality(t, n, 2)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p[1], uint8(4))

	// changing a copy does not change the image
	c := img.Copy()
	c[0] = 0xff
	b, _ = img.Byte(0)
	test.ExpectEquality(t, b, uint8(1))
	test.ExpectEquality(t, img.Source(), "x")
}
