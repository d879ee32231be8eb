package audio

import (
	"encoding/binary"
	"path/filepath"
	"strings"

	"voice2site/internal/app/errors"
)

const (
	formatPCM        = 0x0001
	formatExtensible = 0xFFFE
	riffHeaderSize   = 12
	chunkHeaderSize  = 8
)

// WAVInfo describes the PCM stream inside a WAV container
type WAVInfo struct {
	SampleRate    uint32  `json:"sample_rate"`
	Channels      uint16  `json:"channels"`
	BitsPerSample uint16  `json:"bits_per_sample"`
	DataSize      uint32  `json:"data_size_bytes"`
	Duration      float64 `json:"duration_seconds"`
}

// HasWAVExtension reports whether a file name carries the .wav extension
func HasWAVExtension(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".wav")
}

// ValidateWAV checks that data is linear PCM in a RIFF/WAVE container.
// Chunks other than "fmt " and "data" (LIST, fact, ...) are skipped.
func ValidateWAV(data []byte) (*WAVInfo, error) {
	if len(data) < riffHeaderSize+chunkHeaderSize {
		return nil, errors.Wrapf(errors.ErrNotWAV, "need at least %d bytes, got %d", riffHeaderSize+chunkHeaderSize, len(data))
	}
	if string(data[0:4]) != "RIFF" {
		return nil, errors.Wrap(errors.ErrNotWAV, "missing RIFF header")
	}
	if string(data[8:12]) != "WAVE" {
		return nil, errors.Wrap(errors.ErrNotWAV, "missing WAVE format")
	}

	var info WAVInfo
	var haveFmt, haveData bool
	var byteRate uint32

	offset := riffHeaderSize
	for offset+chunkHeaderSize <= len(data) && !(haveFmt && haveData) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		body := offset + chunkHeaderSize
		remaining := uint32(len(data) - body)

		switch id {
		case "fmt ":
			if size < 16 || remaining < 16 {
				return nil, errors.Wrap(errors.ErrNotWAV, "truncated fmt chunk")
			}
			fmtChunk := data[body : body+int(min(size, remaining))]
			tag := binary.LittleEndian.Uint16(fmtChunk[0:2])
			if tag == formatExtensible && len(fmtChunk) >= 26 {
				tag = binary.LittleEndian.Uint16(fmtChunk[24:26])
			}
			if tag != formatPCM {
				return nil, errors.Wrapf(errors.ErrUnsupportedWAV, "format tag %#04x is not linear PCM", tag)
			}
			info.Channels = binary.LittleEndian.Uint16(fmtChunk[2:4])
			info.SampleRate = binary.LittleEndian.Uint32(fmtChunk[4:8])
			byteRate = binary.LittleEndian.Uint32(fmtChunk[8:12])
			info.BitsPerSample = binary.LittleEndian.Uint16(fmtChunk[14:16])
			haveFmt = true
		case "data":
			// streaming writers leave the size at 0 or 0xFFFFFFFF
			if size == 0 || size > remaining {
				size = remaining
			}
			info.DataSize = size
			haveData = true
		}

		next := uint64(body) + uint64(size) + uint64(size&1)
		if next > uint64(len(data)) {
			break
		}
		offset = int(next)
	}

	if !haveFmt {
		return nil, errors.Wrap(errors.ErrNotWAV, "missing fmt chunk")
	}
	if !haveData {
		return nil, errors.Wrap(errors.ErrNotWAV, "missing data chunk")
	}
	if info.Channels == 0 || info.SampleRate == 0 {
		return nil, errors.Wrap(errors.ErrUnsupportedWAV, "zero channels or sample rate")
	}
	if byteRate > 0 {
		info.Duration = float64(info.DataSize) / float64(byteRate)
	}

	return &info, nil
}
