package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is beep's interpolation quality for rate conversion.
const resampleQuality = 4

// LoadWAV reads a WAV file into float32 stereo PCM at SampleRate.
func LoadWAV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()
	pcm, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pcm, nil
}

// DecodeWAV decodes a WAV stream, resampling to SampleRate when needed.
// Mono input is duplicated to both channels by the decoder.
func DecodeWAV(r io.Reader) ([]byte, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer s.Close()

	var st beep.Streamer = s
	if format.SampleRate != beep.SampleRate(SampleRate) {
		st = beep.Resample(resampleQuality, format.SampleRate, beep.SampleRate(SampleRate), s)
	}

	var (
		chunk = make([][2]float64, 512)
		out   []byte
		frame = frameBuf(1)
	)
	for {
		n, ok := st.Stream(chunk)
		for i := 0; i < n; i++ {
			putFrame(frame, 0, chunk[i][0], chunk[i][1])
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("decode wav: no samples")
	}
	return out, nil
}
