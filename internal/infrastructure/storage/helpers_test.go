package storage

import (
	"encoding/binary"
	"io"
)

func writeHeaderOnly(w io.Writer, h ReplayFileHeader) error {
	return binary.Write(w, binary.LittleEndian, &h)
}
