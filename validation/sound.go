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

package validation

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// SoundInfo describes audio data found in a ROM image.
type SoundInfo struct {
	Format     string
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int

	// largest absolute sample value
	Peak int
}

// Duration of the audio data.
func (s SoundInfo) Duration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(s.Frames) / float64(s.SampleRate) * float64(time.Second))
}

func fingerprintWAV(data []byte) bool {
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return false
	}
	return wav.NewDecoder(bytes.NewReader(data)).IsValidFile()
}

// mp3Header returns true if the four bytes are a plausible MPEG-1/2 layer III
// frame header.
func mp3Header(h []byte) bool {
	if len(h) < 4 {
		return false
	}
	if h[0] != 0xff || h[1]&0xe0 != 0xe0 {
		return false
	}
	version := (h[1] >> 3) & 0x03
	layer := (h[1] >> 1) & 0x03
	bitrate := h[2] >> 4
	rate := (h[2] >> 2) & 0x03
	return version != 0x01 && layer == 0x01 && bitrate != 0x00 && bitrate != 0x0f && rate != 0x03
}

func fingerprintMP3(data []byte) bool {
	if !bytes.HasPrefix(data, []byte("ID3")) && !mp3Header(data) {
		return false
	}
	_, err := mp3.NewDecoder(bytes.NewReader(data))
	return err == nil
}

// SoundProfile decodes WAV or MP3 data and describes it. Returns false if the
// data is not in either format.
func SoundProfile(data []byte) (SoundInfo, bool) {
	if fingerprintWAV(data) {
		return wavProfile(data)
	}
	if fingerprintMP3(data) {
		return mp3Profile(data)
	}
	return SoundInfo{}, false
}

func wavProfile(data []byte) (SoundInfo, bool) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return SoundInfo{}, false
	}

	var buf *audio.IntBuffer
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return SoundInfo{}, false
	}

	info := SoundInfo{
		Format:     "wav",
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Frames:     buf.NumFrames(),
	}

	for _, v := range buf.Data {
		if v < 0 {
			v = -v
		}
		if v > info.Peak {
			info.Peak = v
		}
	}

	return info, true
}

func mp3Profile(data []byte) (SoundInfo, bool) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return SoundInfo{}, false
	}

	// the decoded stream is always 16 bit little endian stereo. a sample
	// therefore consists of four bytes
	info := SoundInfo{
		Format:     "mp3",
		SampleRate: dec.SampleRate(),
		Channels:   2,
		BitDepth:   16,
	}

	chunk := make([]byte, 4096)
	var n int
	for {
		c, err := dec.Read(chunk)
		for i := 0; i+1 < c; i += 2 {
			v := int(int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8))
			if v < 0 {
				v = -v
			}
			if v > info.Peak {
				info.Peak = v
			}
		}
		n += c
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return SoundInfo{}, false
			}
			break
		}
	}

	info.Frames = n / 4

	return info, true
}
