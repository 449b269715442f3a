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

package validation_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/romtest"
	"github.com/model2emu/model2rom/test"
	"github.com/model2emu/model2rom/validation"
)

func TestChecksum(t *testing.T) {
	test.ExpectEquality(t, validation.Checksum([]byte("123456789"), validation.CRC32), "cbf43926")
	test.ExpectEquality(t, validation.Checksum(nil, validation.CRC32), "00000000")
	test.ExpectEquality(t, validation.Checksum([]byte("abc"), validation.MD5), "900150983cd24fb0d6963f7d28e17f72")
	test.ExpectEquality(t, validation.Checksum([]byte("abc"), validation.SHA256),
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

	c := validation.ChecksumAll([]byte("abc"))
	test.ExpectEquality(t, c.MD5, validation.Checksum([]byte("abc"), validation.MD5))
	test.ExpectEquality(t, c.SHA256, validation.Checksum([]byte("abc"), validation.SHA256))
	test.ExpectEquality(t, c.CRC32, uint32(0x352441c2))

	// same data, same digests
	d := romtest.Random("determinism", 100000)
	test.ExpectEquality(t, validation.ChecksumAll(d), validation.ChecksumAll(d))
}

func TestEntropy(t *testing.T) {
	test.ExpectEquality(t, validation.EntropyScore(nil), 0.0)
	test.ExpectEquality(t, validation.EntropyScore(make([]byte, 100)), 0.0)
	test.ExpectApproximate(t, validation.EntropyScore(romtest.Pattern(1024)), 2.0, 0.0001)
	test.ExpectApproximate(t, validation.EntropyScore(romtest.Random("entropy", 1<<20)), 8.0, 0.01)
}

// writeWAV encodes the samples as a mono 16 bit WAV file and returns the
// content of the file.
func writeWAV(t *testing.T, samples []int) []byte {
	t.Helper()

	p := filepath.Join(t.TempDir(), "sound.wav")
	f, err := os.Create(p)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, 22050, 16, 1, 1)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 22050},
		Data:           samples,
		SourceBitDepth: 16,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	d, err := os.ReadFile(p)
	test.DemandSuccess(t, err)
	return d
}

func TestInferType(t *testing.T) {
	test.ExpectEquality(t, validation.InferType(append([]byte("\x7fELF"), romtest.Random("elf", 100)...)), catalog.Program)
	test.ExpectEquality(t, validation.InferType(append([]byte("NECV"), romtest.Random("v60", 100)...)), catalog.Program)
	test.ExpectEquality(t, validation.InferType(romtest.Program("68k", 8192)), catalog.Program)
	test.ExpectEquality(t, validation.InferType(append([]byte("TEXT"), romtest.Random("tex", 8192)...)), catalog.Texture)
	test.ExpectEquality(t, validation.InferType(romtest.Pattern(32*1024)), catalog.Config)
	test.ExpectEquality(t, validation.InferType(romtest.Pattern(128*1024)), catalog.Data)
	test.ExpectEquality(t, validation.InferType(romtest.Random("gfx", 1<<20)), catalog.Graphics)
	test.ExpectEquality(t, validation.InferType(romtest.Pattern(3<<20)), catalog.Graphics)
	test.ExpectEquality(t, validation.InferType(romtest.Random("data", 100*1024)), catalog.Data)

	samples := make([]int, 2000)
	for i := range samples {
		samples[i] = (i % 200) * 100
	}
	test.ExpectEquality(t, validation.InferType(writeWAV(t, samples)), catalog.Sound)

	// a vector table with a reset vector outside of the image is not a
	// program
	p := romtest.Program("short", 8192)
	p[4], p[5], p[6], p[7] = 0x00, 0x01, 0x00, 0x00
	test.ExpectInequality(t, validation.InferType(p), catalog.Program)
}

func TestSoundProfile(t *testing.T) {
	samples := make([]int, 2205)
	for i := range samples {
		samples[i] = (i % 100) * 10
	}
	samples[50] = -3000

	info, ok := validation.SoundProfile(writeWAV(t, samples))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, info.Format, "wav")
	test.ExpectEquality(t, info.SampleRate, 22050)
	test.ExpectEquality(t, info.Channels, 1)
	test.ExpectEquality(t, info.BitDepth, 16)
	test.ExpectEquality(t, info.Frames, 2205)
	test.ExpectEquality(t, info.Peak, 3000)
	test.ExpectApproximate(t, info.Duration().Seconds(), 0.1, 0.0001)

	_, ok = validation.SoundProfile(romtest.Random("not sound", 4096))
	test.ExpectFailure(t, ok)
}

func programEntry(d []byte) catalog.RomEntry {
	e := catalog.RomEntry{
		Name: "epr-17570.ic12",
		Type: catalog.Program,
		Size: len(d),
	}
	e.Checksums = romtest.Checksums(e, d)
	return e
}

func TestValidate(t *testing.T) {
	d := romtest.Program("validate", 8192)
	e := programEntry(d)

	r, err := validation.Validate("", d, e, validation.DefaultPolicy())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Name, e.Name)
	test.ExpectEquality(t, r.Status, validation.Pass)
	test.ExpectEquality(t, r.Detected, catalog.Program)
	test.ExpectEquality(t, r.Checksum(validation.CRC32).Result, validation.Match)
	test.ExpectEquality(t, r.Checksum(validation.MD5).Result, validation.Match)
	test.ExpectEquality(t, r.Checksum(validation.SHA256).Result, validation.NoReference)
	test.ExpectEquality(t, len(r.Warnings), 0)
}

func TestValidateDigestCase(t *testing.T) {
	d := romtest.Program("validate", 8192)
	e := programEntry(d)
	e.Checksums.MD5 = strings.ToUpper(e.Checksums.MD5)
	e.Checksums.SHA256 = strings.ToUpper(validation.Checksum(d, validation.SHA256))

	r, err := validation.Validate(e.Name, d, e, validation.DefaultPolicy())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Checksum(validation.MD5).Result, validation.Match)
	test.ExpectEquality(t, r.Checksum(validation.SHA256).Result, validation.Match)
	test.ExpectEquality(t, r.Status, validation.Pass)
}

func TestValidateMismatch(t *testing.T) {
	d := romtest.Program("validate", 8192)
	e := programEntry(d)
	c := romtest.Corrupt(d)

	r, err := validation.Validate(e.Name, c, e, validation.DefaultPolicy())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, validation.ChecksumMismatch))
	test.ExpectSuccess(t, strings.Contains(err.Error(), e.Name))
	test.ExpectEquality(t, r.Status, validation.Fail)
	test.ExpectEquality(t, r.Checksum(validation.CRC32).Result, validation.Mismatch)

	// mismatches are allowed by policy
	r, err = validation.Validate(e.Name, c, e, validation.Policy{ValidateChecksums: true, AllowBadChecksums: true})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Status, validation.Warn)
	test.ExpectEquality(t, r.Checksum(validation.CRC32).Result, validation.Mismatch)
	test.ExpectEquality(t, len(r.Errors), 0)

	// checksums not computed at all
	r, err = validation.Validate(e.Name, c, e, validation.Policy{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Status, validation.Pass)
	for _, alg := range validation.Algorithms {
		test.ExpectEquality(t, r.Checksum(alg).Result, validation.NotChecked, alg)
	}
	test.ExpectSuccess(t, !r.Computed.HasAny())
}

func TestValidateWarnings(t *testing.T) {
	d := romtest.Program("validate", 8192)
	e := programEntry(d)
	e.Size = 16384

	// length mismatch is a warning even though the checksums match
	r, err := validation.Validate(e.Name, d, e, validation.DefaultPolicy())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Status, validation.Warn)
	test.DemandEquality(t, len(r.Warnings), 1)
	test.ExpectSuccess(t, strings.HasPrefix(r.Warnings[0], "length mismatch"))

	// silent sound
	s := make([]byte, 4096)
	se := catalog.RomEntry{Name: "epr-17580.ic31", Type: catalog.Sound, Size: len(s)}
	se.Checksums = romtest.Checksums(se, s)
	r, err = validation.Validate(se.Name, s, se, validation.DefaultPolicy())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Status, validation.Warn)
	test.ExpectSuccess(t, strings.Contains(r.String(), "warning: sound rom is silent"))

	// empty program
	p := make([]byte, 4096)
	pe := programEntry(p)
	r, _ = validation.Validate(pe.Name, p, pe, validation.DefaultPolicy())
	test.ExpectSuccess(t, strings.Contains(r.String(), "warning: program rom appears to be empty"))
}

func TestWriteReports(t *testing.T) {
	d := romtest.Program("validate", 8192)
	e := programEntry(d)

	pass, _ := validation.Validate(e.Name, d, e, validation.DefaultPolicy())
	fail, _ := validation.Validate(e.Name, romtest.Corrupt(d), e, validation.DefaultPolicy())

	s := &strings.Builder{}
	test.DemandSuccess(t, validation.WriteReports(s, []validation.Report{pass, fail}))
	test.ExpectSuccess(t, strings.Contains(s.String(), "epr-17570.ic12: PASS\n"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "epr-17570.ic12: FAIL\n"))
	test.ExpectSuccess(t, strings.HasSuffix(s.String(), "Summary: 1 passed, 0 with warnings, 1 failed (2 total)\n"))
}
