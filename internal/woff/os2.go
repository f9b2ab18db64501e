package woff

import (
	"encoding/binary"
	"fmt"
)

// maxOS2Version is the newest OS/2 table version (OpenType 1.7+).
const maxOS2Version = 5

// fsSelection bits.
const (
	fsSelectionItalic  = 1 << 0
	fsSelectionOblique = 1 << 9
)

// OS2 holds the "OS/2" fields used to derive CSS descriptors.
// https://learn.microsoft.com/en-us/typography/opentype/spec/os2
type OS2 struct {
	Version      uint16
	WeightClass  uint16
	WidthClass   uint16
	FSType       uint16
	FSSelection  uint16
	HasSelection bool
}

// DecodeOS2 parses the leading fields of an "OS/2" table.
// Tables shorter than version 0 requires are accepted as long as the
// weight, width and fsType fields are present.
func DecodeOS2(data []byte) (*OS2, error) {
	if len(data) < 10 {
		return nil, fmt.Errorf("%w: OS/2 table too short", ErrMalformed)
	}

	info := &OS2{
		Version:     binary.BigEndian.Uint16(data[0:2]),
		WeightClass: binary.BigEndian.Uint16(data[4:6]),
		WidthClass:  binary.BigEndian.Uint16(data[6:8]),
		FSType:      binary.BigEndian.Uint16(data[8:10]),
	}
	if info.Version > maxOS2Version {
		return nil, fmt.Errorf("%w: OS/2 version %d", ErrUnsupportedVersion, info.Version)
	}
	if len(data) >= 64 {
		info.FSSelection = binary.BigEndian.Uint16(data[62:64])
		info.HasSelection = true
	}

	return info, nil
}

// Italic reports the fsSelection italic bit.
func (o *OS2) Italic() bool {
	return o.HasSelection && o.FSSelection&fsSelectionItalic != 0
}

// Oblique reports the fsSelection oblique bit (OS/2 version 4 and later).
func (o *OS2) Oblique() bool {
	return o.HasSelection && o.Version >= 4 && o.FSSelection&fsSelectionOblique != 0
}

// Installable reports whether fsType places no embedding restrictions.
func (o *OS2) Installable() bool {
	return o.FSType == 0
}
