// Package wofftest builds small synthetic WOFF files for tests.
package wofftest

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/unicode"
)

// Font describes the metadata written into a synthetic WOFF file.
// Empty strings are omitted from the name table.
type Font struct {
	Copyright            string
	Family               string
	Subfamily            string
	Full                 string
	PostScript           string
	License              string
	TypographicFamily    string
	TypographicSubfamily string

	OS2Version  uint16
	WeightClass uint16
	WidthClass  uint16
	FSType      uint16
	FSSelection uint16

	NoName     bool // omit the name table
	NoOS2      bool // omit the OS/2 table
	Compress   bool // zlib-compress tables when that makes them smaller
	MacRecords bool // also write Macintosh Roman records
}

type table struct {
	tag  string
	data []byte
}

// Bytes encodes f as a WOFF 1.0 file.
func (f Font) Bytes() []byte {
	var tables []table
	if !f.NoOS2 {
		tables = append(tables, table{"OS/2", f.os2()})
	}
	if !f.NoName {
		tables = append(tables, table{"name", f.name()})
	}

	type stored struct {
		tag        string
		data       []byte
		origLength uint32
	}
	entries := make([]stored, len(tables))
	for i, t := range tables {
		entries[i] = stored{tag: t.tag, data: t.data, origLength: uint32(len(t.data))}
		if f.Compress {
			if z := deflate(t.data); len(z) < len(t.data) {
				entries[i].data = z
			}
		}
	}

	const headerSize, dirEntrySize = 44, 20
	offset := headerSize + dirEntrySize*len(entries)
	var dir, body bytes.Buffer
	sfntSize := 12 + 16*len(entries)
	for _, e := range entries {
		dir.WriteString(e.tag)
		_ = binary.Write(&dir, binary.BigEndian, uint32(offset+body.Len()))
		_ = binary.Write(&dir, binary.BigEndian, uint32(len(e.data)))
		_ = binary.Write(&dir, binary.BigEndian, e.origLength)
		_ = binary.Write(&dir, binary.BigEndian, uint32(0))
		body.Write(e.data)
		for body.Len()%4 != 0 {
			body.WriteByte(0)
		}
		sfntSize += int(e.origLength+3) &^ 3
	}

	var out bytes.Buffer
	header := []any{
		uint32(0x774F4646),              // signature
		uint32(0x00010000),              // flavor
		uint32(offset + body.Len()),     // length
		uint16(len(entries)),            // numTables
		uint16(0),                       // reserved
		uint32(sfntSize),                // totalSfntSize
		uint16(1), uint16(0),            // major, minor
		uint32(0), uint32(0), uint32(0), // metadata
		uint32(0), uint32(0),            // private data
	}
	for _, v := range header {
		_ = binary.Write(&out, binary.BigEndian, v)
	}
	out.Write(dir.Bytes())
	out.Write(body.Bytes())
	return out.Bytes()
}

func (f Font) os2() []byte {
	buf := make([]byte, 96)
	binary.BigEndian.PutUint16(buf[0:2], f.OS2Version)
	binary.BigEndian.PutUint16(buf[4:6], f.WeightClass)
	binary.BigEndian.PutUint16(buf[6:8], f.WidthClass)
	binary.BigEndian.PutUint16(buf[8:10], f.FSType)
	binary.BigEndian.PutUint16(buf[62:64], f.FSSelection)
	return buf
}

func (f Font) name() []byte {
	type record struct {
		platform, encoding, language, id uint16
		value                            []byte
	}
	fields := []struct {
		id    uint16
		value string
	}{
		{0, f.Copyright},
		{1, f.Family},
		{2, f.Subfamily},
		{4, f.Full},
		{6, f.PostScript},
		{13, f.License},
		{16, f.TypographicFamily},
		{17, f.TypographicSubfamily},
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	var records []record
	for _, fld := range fields {
		if fld.value == "" {
			continue
		}
		if f.MacRecords {
			records = append(records, record{1, 0, 0, fld.id, []byte(fld.value)})
		}
		encoded, _ := enc.Bytes([]byte(fld.value))
		records = append(records, record{3, 1, 0x0409, fld.id, encoded})
	}

	storage := 6 + 12*len(records)
	var head, strs bytes.Buffer
	for _, v := range []uint16{0, uint16(len(records)), uint16(storage)} {
		_ = binary.Write(&head, binary.BigEndian, v)
	}
	for _, r := range records {
		for _, v := range []uint16{r.platform, r.encoding, r.language, r.id, uint16(len(r.value)), uint16(strs.Len())} {
			_ = binary.Write(&head, binary.BigEndian, v)
		}
		strs.Write(r.value)
	}
	head.Write(strs.Bytes())
	return head.Bytes()
}

func deflate(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}
