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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/prefs"
	"github.com/model2emu/model2rom/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "model2rom_prefs_test")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, dsk.Add("numberC", &x))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.ExpectSuccess(t, x.Set("0x08000000"))
	test.ExpectEquality(t, x.Int64(), int64(0x08000000))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\nnumberC :: 134217728\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get(), prefs.Value(int64(10)))
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")

	test.ExpectSuccess(t, v.Set("123456789"))
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "12345")
	v.SetMaxLen(0)
	test.ExpectEquality(t, v.String(), "12345")
	v.SetMaxLen(3)
	test.ExpectSuccess(t, v.Set("abcdefghi"))
	test.ExpectEquality(t, v.String(), "abc")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, dsk.Add("n", &n))

	// loading a file that does not exist is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, n.Set(42))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, b.Reset())
	test.ExpectSuccess(t, n.Reset())
	test.ExpectEquality(t, b.String(), "false")

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.String(), "true")
	test.ExpectEquality(t, n.Int64(), int64(42))

	// a file without the warning line is rejected
	test.DemandSuccess(t, os.WriteFile(fn, []byte("b :: false\n"), 0o600))
	test.ExpectFailure(t, dsk.Load())
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestSharedFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestHooks(t *testing.T) {
	var n prefs.Int
	n.SetHookPre(func(v prefs.Value) error {
		if v.(int64) < 0 {
			return curated.Errorf("negative")
		}
		return nil
	})

	var post int64
	n.SetHookPost(func(v prefs.Value) error {
		post = v.(int64)
		return nil
	})

	test.ExpectSuccess(t, n.Set(5))
	test.ExpectEquality(t, post, int64(5))
	test.ExpectFailure(t, n.Set(-1))
	test.ExpectEquality(t, n.Int64(), int64(5))
	test.ExpectEquality(t, post, int64(5))
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a key", &v))
	test.ExpectFailure(t, dsk.Add("a::key", &v))
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("key", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("value", &v))
	test.ExpectSuccess(t, v.Set(1))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("value::2; unused::3")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("value", &w))
	test.ExpectEquality(t, w.Int64(), int64(2))

	// the command line value survives a load and is not saved
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, w.Int64(), int64(2))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "value :: 1\n")
	test.ExpectEquality(t, dsk.String(), "value :: 2\n")
}
