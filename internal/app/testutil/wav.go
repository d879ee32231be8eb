package testutil

import (
	"bytes"
	"encoding/binary"

	"voice2site/internal/app/errors"
)

// EncodeWAV wraps mono 16-bit PCM samples in a canonical 44-byte WAV header
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, errors.InvalidField("sample rate", "must be positive")
	}

	const (
		formatPCM     = uint16(1)
		channels      = uint16(1)
		bitsPerSample = uint16(16)
	)
	dataSize := uint32(len(samples) * 2)

	buf := bytes.NewBuffer(make([]byte, 0, 44+len(samples)*2))
	header := []interface{}{
		[4]byte{'R', 'I', 'F', 'F'},
		36 + dataSize,
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		formatPCM,
		channels,
		uint32(sampleRate),
		uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample) / 8,
		channels * bitsPerSample / 8,
		bitsPerSample,
		[4]byte{'d', 'a', 't', 'a'},
		dataSize,
	}
	for _, field := range header {
		if err := binary.Write(buf, binary.LittleEndian, field); err != nil {
			return nil, errors.Wrap(err, "failed to write WAV header")
		}
	}
	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, errors.Wrap(err, "failed to write audio data")
	}

	return buf.Bytes(), nil
}
