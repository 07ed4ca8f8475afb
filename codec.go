package icc

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Signature is a 4-byte ICC code ('acsp', 'desc', 'XYZ ', ...).
// The zero value doubles as the "not present" sentinel for the
// optional header fields.
type Signature uint32

// SignatureOf builds a Signature from a 4-character code, e.g.
// SignatureOf("desc"). Shorter strings are padded with spaces.
func SignatureOf(s string) Signature {
	var b [4]byte
	copy(b[:], "    ")
	copy(b[:], s)
	return Signature(binary.BigEndian.Uint32(b[:]))
}

func (s Signature) IsZero() bool {
	return s == 0
}

// String renders the signature as its 4-character code, trimming
// trailing NULs/spaces; non-printable codes render as hex and the zero
// sentinel renders empty.
func (s Signature) String() string {
	if s == 0 {
		return ""
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(s))
	str := strings.TrimRight(string(b[:]), "\x00 ")
	for _, r := range str {
		if r < 32 || r > 126 {
			return fmt.Sprintf("0x%08X", uint32(s))
		}
	}
	return str
}

// Fixed1616 is an s15Fixed16Number - a signed 32-bit fixed point value
// with 16 fraction bits.
type Fixed1616 int32

func (f Fixed1616) Float64() float64 {
	return float64(f) / 65536.0
}

func readFixed1616(raw []byte) Fixed1616 {
	if len(raw) < 4 {
		panic("readFixed1616: not enough bytes")
	}
	return Fixed1616(int32(binary.BigEndian.Uint32(raw[:4])))
}

// XYZNumber is a tristimulus value, each component an s15.16 on disk.
type XYZNumber struct {
	X, Y, Z float64
}

func readXYZNumber(raw []byte) XYZNumber {
	if len(raw) < 12 {
		panic("readXYZNumber: not enough bytes")
	}
	return XYZNumber{
		X: readFixed1616(raw[0:4]).Float64(),
		Y: readFixed1616(raw[4:8]).Float64(),
		Z: readFixed1616(raw[8:12]).Float64(),
	}
}

// dateTimeNumber is the raw 12-byte header date/time record, six
// big-endian uint16 fields, always UTC.
type dateTimeNumber struct {
	Year, Month, Day     uint16
	Hour, Minute, Second uint16
}

func readDateTimeNumber(raw []byte) dateTimeNumber {
	if len(raw) < 12 {
		panic("readDateTimeNumber: not enough bytes")
	}
	return dateTimeNumber{
		Year:   binary.BigEndian.Uint16(raw[0:2]),
		Month:  binary.BigEndian.Uint16(raw[2:4]),
		Day:    binary.BigEndian.Uint16(raw[4:6]),
		Hour:   binary.BigEndian.Uint16(raw[6:8]),
		Minute: binary.BigEndian.Uint16(raw[8:10]),
		Second: binary.BigEndian.Uint16(raw[10:12]),
	}
}
