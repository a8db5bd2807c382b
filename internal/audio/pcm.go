package audio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

// bytesPerFrame is one stereo frame of 16-bit little-endian samples.
const bytesPerFrame = 4

// EncodePCM renders a finite streamer to 16-bit little-endian stereo PCM.
// Rendering stops after max frames for endless streamers.
func EncodePCM(st beep.Streamer, max int) []byte {
	out := make([]byte, 0, 1024)
	buf := make([][2]float64, 512)
	written := 0
	for written < max {
		want := len(buf)
		if max-written < want {
			want = max - written
		}
		n, ok := st.Stream(buf[:want])
		out = appendFrames(out, buf[:n])
		written += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Reader exposes an endless streamer as a PCM byte stream.
type Reader struct {
	st      beep.Streamer
	buf     [][2]float64
	pending []byte
}

// NewReader wraps st as an io.Reader of 16-bit little-endian stereo PCM.
func NewReader(st beep.Streamer) *Reader {
	return &Reader{st: st, buf: make([][2]float64, 512)}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		frames := len(p) / bytesPerFrame
		if frames == 0 {
			frames = 1
		}
		if frames > len(r.buf) {
			frames = len(r.buf)
		}
		n, ok := r.st.Stream(r.buf[:frames])
		if n == 0 && !ok {
			return 0, io.EOF
		}
		r.pending = appendFrames(r.pending[:0], r.buf[:n])
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func appendFrames(out []byte, frames [][2]float64) []byte {
	var b [bytesPerFrame]byte
	for _, f := range frames {
		binary.LittleEndian.PutUint16(b[0:], uint16(toInt16(f[0])))
		binary.LittleEndian.PutUint16(b[2:], uint16(toInt16(f[1])))
		out = append(out, b[:]...)
	}
	return out
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}
