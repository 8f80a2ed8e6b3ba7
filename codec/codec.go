// Package codec persists metric configuration in a compact binary form.
//
// The layout is a stability boundary: bytes written by one version must keep
// decoding in later versions. A record is one variant tag byte followed by
// the variant's configuration; all multi-byte values are little-endian.
//
//	Levenshtein: tag
//	NGram:       tag | int32 window size
//	JaroWinkler: tag | float64 boost threshold (IEEE 754 bits)
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/strdist"
)

// Variant tags. These are persisted; never renumber.
const (
	tagLevenshtein byte = iota
	tagNGram
	tagJaroWinkler
)

var (
	// ErrUnknownTag is returned when decoding a record with an
	// unrecognized variant tag.
	ErrUnknownTag = errors.New("unknown metric tag")

	// ErrShortBuffer is returned when a record is truncated.
	ErrShortBuffer = errors.New("short buffer for metric config")

	// ErrTrailingBytes is returned when a record carries bytes past its
	// variant's configuration.
	ErrTrailingBytes = errors.New("trailing bytes after metric config")
)

// Marshal encodes a metric's configuration.
func Marshal(m strdist.Metric) ([]byte, error) {
	switch m := m.(type) {
	case strdist.Levenshtein:
		return []byte{tagLevenshtein}, nil
	case strdist.NGram:
		buf := make([]byte, 0, 5)
		buf = append(buf, tagNGram)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(m.Size())))
		return buf, nil
	case strdist.JaroWinkler:
		buf := make([]byte, 0, 9)
		buf = append(buf, tagJaroWinkler)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(m.Threshold()))
		return buf, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m.Kind())
	}
}

// Unmarshal decodes a record produced by Marshal. Decoded configurations
// pass the same validation as construction, so a record holding an invalid
// window size or threshold fails rather than producing a broken metric.
func Unmarshal(data []byte) (strdist.Metric, error) {
	if len(data) == 0 {
		return nil, ErrShortBuffer
	}
	tag, payload := data[0], data[1:]

	switch tag {
	case tagLevenshtein:
		if len(payload) != 0 {
			return nil, ErrTrailingBytes
		}
		return strdist.NewLevenshtein(), nil

	case tagNGram:
		if len(payload) < 4 {
			return nil, ErrShortBuffer
		}
		if len(payload) > 4 {
			return nil, ErrTrailingBytes
		}
		n := int32(binary.LittleEndian.Uint32(payload))
		m, err := strdist.NewNGram(int(n))
		if err != nil {
			return nil, err
		}
		return m, nil

	case tagJaroWinkler:
		if len(payload) < 8 {
			return nil, ErrShortBuffer
		}
		if len(payload) > 8 {
			return nil, ErrTrailingBytes
		}
		t := math.Float64frombits(binary.LittleEndian.Uint64(payload))
		m, err := strdist.NewJaroWinkler(t)
		if err != nil {
			return nil, err
		}
		return m, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, tag)
	}
}
