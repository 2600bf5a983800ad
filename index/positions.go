package index

import (
	"encoding/binary"
	"fmt"
)

// encodePositions delta-encodes ascending positions as uvarints.
func encodePositions(positions []uint32) []byte {
	if len(positions) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(positions))
	var prev uint32
	for _, p := range positions {
		buf = binary.AppendUvarint(buf, uint64(p-prev))
		prev = p
	}
	return buf
}

func decodePositions(b []byte) ([]uint32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var out []uint32
	var prev uint64
	for len(b) > 0 {
		delta, n := binary.Uvarint(b)
		if n <= 0 {
			return nil, fmt.Errorf("corrupt positions")
		}
		prev += delta
		out = append(out, uint32(prev))
		b = b[n:]
	}
	return out, nil
}
