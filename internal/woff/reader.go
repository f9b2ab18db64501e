package woff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Signature is the "wOFF" magic number at the start of every WOFF 1.0 file.
const Signature = 0x774F4646

const (
	headerSize   = 44
	dirEntrySize = 20
)

// MaxTableSize caps the decompressed size of a single table.
var MaxTableSize uint32 = 16 << 20

// Sentinel errors for metadata reading.
var (
	ErrNotWOFF            = errors.New("not a WOFF 1.0 file")
	ErrMalformed          = errors.New("malformed WOFF data")
	ErrTableMissing       = errors.New("table missing")
	ErrUnsupportedVersion = errors.New("unsupported table version")
)

// Header is the fixed-size WOFF header.
type Header struct {
	Signature      uint32
	Flavor         uint32
	Length         uint32
	NumTables      uint16
	Reserved       uint16
	TotalSfntSize  uint32
	MajorVersion   uint16
	MinorVersion   uint16
	MetaOffset     uint32
	MetaLength     uint32
	MetaOrigLength uint32
	PrivOffset     uint32
	PrivLength     uint32
}

// TableEntry is one record of the table directory.
type TableEntry struct {
	Tag          string
	Offset       uint32
	CompLength   uint32
	OrigLength   uint32
	OrigChecksum uint32
}

// Compressed reports whether the table data is zlib-compressed.
func (e TableEntry) Compressed() bool {
	return e.CompLength != e.OrigLength
}

// Font gives access to the tables of an in-memory WOFF file.
type Font struct {
	Header Header
	Tables []TableEntry
	data   []byte
}

// Parse reads the header and table directory of data.
func Parse(data []byte) (*Font, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrNotWOFF, len(data))
	}

	var h Header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if h.Signature != Signature {
		return nil, fmt.Errorf("%w: signature 0x%08X", ErrNotWOFF, h.Signature)
	}

	end := headerSize + int(h.NumTables)*dirEntrySize
	if end > len(data) {
		return nil, fmt.Errorf("%w: table directory truncated", ErrMalformed)
	}

	tables := make([]TableEntry, h.NumTables)
	for i := range tables {
		rec := data[headerSize+i*dirEntrySize:]
		tables[i] = TableEntry{
			Tag:          string(rec[0:4]),
			Offset:       binary.BigEndian.Uint32(rec[4:8]),
			CompLength:   binary.BigEndian.Uint32(rec[8:12]),
			OrigLength:   binary.BigEndian.Uint32(rec[12:16]),
			OrigChecksum: binary.BigEndian.Uint32(rec[16:20]),
		}
	}

	return &Font{Header: h, Tables: tables, data: data}, nil
}

// Lookup finds a table by tag, ignoring case.
func (f *Font) Lookup(tag string) (TableEntry, bool) {
	for _, t := range f.Tables {
		if strings.EqualFold(t.Tag, tag) {
			return t, true
		}
	}
	return TableEntry{}, false
}

// TableData returns the decompressed content of the table with the given tag.
func (f *Font) TableData(tag string) ([]byte, error) {
	entry, ok := f.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTableMissing, tag)
	}

	start := uint64(entry.Offset)
	stop := start + uint64(entry.CompLength)
	if stop > uint64(len(f.data)) {
		return nil, fmt.Errorf("%w: table %q extends past end of file", ErrMalformed, tag)
	}
	raw := f.data[start:stop]

	if !entry.Compressed() {
		return raw, nil
	}
	if entry.CompLength > entry.OrigLength {
		return nil, fmt.Errorf("%w: table %q compressed length exceeds original", ErrMalformed, tag)
	}
	if entry.OrigLength > MaxTableSize {
		return nil, fmt.Errorf("%w: table %q is %d bytes (max %d)", ErrMalformed, tag, entry.OrigLength, MaxTableSize)
	}
	return inflate(raw, entry.OrigLength)
}

// inflate decompresses a zlib stream that must expand to exactly size bytes.
func inflate(raw []byte, size uint32) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = zr.Close() }()

	out := make([]byte, size)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("%w: inflating table: %v", ErrMalformed, err)
	}
	return out, nil
}
