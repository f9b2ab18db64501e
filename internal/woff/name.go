package woff

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// NameID identifies a string in the "name" table.
// https://learn.microsoft.com/en-us/typography/opentype/spec/name#name-ids
type NameID uint16

// Name IDs read by this package.
const (
	NameCopyright            NameID = 0
	NameFamily               NameID = 1
	NameSubfamily            NameID = 2
	NameFull                 NameID = 4
	NameVersion              NameID = 5
	NamePostScript           NameID = 6
	NameLicense              NameID = 13
	NameLicenseURL           NameID = 14
	NameTypographicFamily    NameID = 16
	NameTypographicSubfamily NameID = 17
)

// Platform IDs.
const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3
)

const (
	windowsEnglishUS = 0x0409
	macEnglish       = 0
)

// Names holds the decoded strings of a "name" table, one per ID.
type Names map[NameID]string

// Get returns the string for id, or "".
func (n Names) Get(id NameID) string {
	return n[id]
}

// DecodeNames parses a "name" table (format 0 or 1).
// For each name ID the English record is preferred: Windows US English,
// then Macintosh English, then Unicode platform, then the first decodable record.
func DecodeNames(data []byte) (Names, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("%w: name table too short", ErrMalformed)
	}

	format := binary.BigEndian.Uint16(data[0:2])
	count := int(binary.BigEndian.Uint16(data[2:4]))
	storage := int(binary.BigEndian.Uint16(data[4:6]))

	if format > 1 {
		return nil, fmt.Errorf("%w: name table format %d", ErrUnsupportedVersion, format)
	}
	if 6+count*12 > len(data) {
		return nil, fmt.Errorf("%w: name records truncated", ErrMalformed)
	}

	names := make(Names)
	ranks := make(map[NameID]int)

	for i := 0; i < count; i++ {
		rec := data[6+i*12:]
		platformID := binary.BigEndian.Uint16(rec[0:2])
		encodingID := binary.BigEndian.Uint16(rec[2:4])
		languageID := binary.BigEndian.Uint16(rec[4:6])
		id := NameID(binary.BigEndian.Uint16(rec[6:8]))
		length := int(binary.BigEndian.Uint16(rec[8:10]))
		offset := int(binary.BigEndian.Uint16(rec[10:12]))

		start := storage + offset
		if start+length > len(data) {
			continue
		}

		dec := decoderFor(platformID, encodingID)
		if dec == nil {
			continue
		}
		rank := recordRank(platformID, languageID)
		if prev, seen := ranks[id]; seen && prev <= rank {
			continue
		}

		text, err := dec.Bytes(data[start : start+length])
		if err != nil {
			continue
		}
		value := strings.ReplaceAll(string(text), "\x00", "")
		if value == "" {
			continue
		}

		names[id] = value
		ranks[id] = rank
	}

	return names, nil
}

// decoderFor returns the decoder for a platform/encoding pair, or nil when
// the encoding is not supported.
func decoderFor(platformID, encodingID uint16) *encoding.Decoder {
	switch {
	case platformID == platformUnicode,
		platformID == platformWindows && (encodingID == 1 || encodingID == 10):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case platformID == platformMacintosh && encodingID == 0:
		return charmap.Macintosh.NewDecoder()
	}
	return nil
}

// recordRank orders records by preference; lower is better.
func recordRank(platformID, languageID uint16) int {
	switch {
	case platformID == platformWindows && languageID == windowsEnglishUS:
		return 0
	case platformID == platformMacintosh && languageID == macEnglish:
		return 1
	case platformID == platformUnicode:
		return 2
	}
	return 3
}
