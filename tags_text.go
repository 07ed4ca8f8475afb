package icc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// TextTag is a 'text' element - 7-bit ASCII, NUL terminated on disk.
type TextTag struct {
	Text string
}

func (t TextTag) TagType() Signature {
	return TagTypeText
}

func decodeText(raw []byte) (TagData, error) {
	if len(raw) < 8 {
		return nil, fmt.Errorf("text element too short")
	}
	return TextTag{Text: string(bytes.TrimRight(raw[8:], "\x00 "))}, nil
}

// SignatureTag is a 'sig ' element carrying a single 4-byte code (used
// by e.g. the technology tag).
type SignatureTag struct {
	Value Signature
}

func (t SignatureTag) TagType() Signature {
	return TagTypeSignature
}

func decodeSignature(raw []byte) (TagData, error) {
	if len(raw) < 12 {
		return nil, fmt.Errorf("sig element too short")
	}
	return SignatureTag{Value: Signature(binary.BigEndian.Uint32(raw[8:12]))}, nil
}

// DescriptionTag is a v2 'desc' element: an ASCII description with
// optional Unicode and ScriptCode variants.
type DescriptionTag struct {
	ASCII   string
	Unicode string
	Script  string
}

func (t DescriptionTag) TagType() Signature {
	return TagTypeDescription
}

func decodeDescription(raw []byte) (TagData, error) {
	if len(raw) < 12 {
		return nil, fmt.Errorf("desc element too short")
	}
	asciiLen := int(binary.BigEndian.Uint32(raw[8:12]))
	if asciiLen < 1 || 12+asciiLen > len(raw) {
		return nil, fmt.Errorf("invalid ASCII length in desc element")
	}
	ascii := raw[12 : 12+asciiLen]
	if i := bytes.IndexByte(ascii, 0); i >= 0 {
		ascii = ascii[:i]
	}
	result := DescriptionTag{ASCII: string(ascii)}

	offset := 12 + asciiLen
	if len(raw) < offset+8 {
		return result, nil // ASCII-only
	}
	offset += 4 // Unicode language code
	unicodeCount := int(binary.BigEndian.Uint32(raw[offset : offset+4]))
	offset += 4
	if len(raw) < offset+unicodeCount*2 {
		return nil, fmt.Errorf("desc element truncated: missing UTF-16 data")
	}
	unicode, err := decodeUTF16BE(raw[offset : offset+unicodeCount*2])
	if err != nil {
		return nil, fmt.Errorf("invalid UTF-16 in desc element: %w", err)
	}
	result.Unicode = unicode
	offset += unicodeCount * 2

	if len(raw) < offset+3 {
		return result, nil
	}
	offset += 2 // ScriptCode code
	scriptCount := int(raw[offset])
	offset++
	if len(raw) < offset+scriptCount {
		return nil, fmt.Errorf("desc element truncated: missing ScriptCode data")
	}
	result.Script = string(raw[offset : offset+scriptCount])
	return result, nil
}

// MultiLocalizedTag is a v4 'mluc' element.
type MultiLocalizedTag struct {
	Strings []LocalizedString
}

type LocalizedString struct {
	Language string // e.g. "en"
	Country  string // e.g. "US"
	Value    string
}

func (t MultiLocalizedTag) TagType() Signature {
	return TagTypeMultiLocalized
}

func decodeMultiLocalized(raw []byte) (TagData, error) {
	if len(raw) < 16 {
		return nil, fmt.Errorf("mluc element too short")
	}
	count := int(binary.BigEndian.Uint32(raw[8:12]))
	recordSize := int(binary.BigEndian.Uint32(raw[12:16]))
	if recordSize != 12 {
		return nil, fmt.Errorf("unexpected mluc record size: %d", recordSize)
	}
	if len(raw) < 16+count*recordSize {
		return nil, fmt.Errorf("mluc element too small for %d records", count)
	}
	result := MultiLocalizedTag{Strings: make([]LocalizedString, 0, count)}
	for i := 0; i < count; i++ {
		base := 16 + i*recordSize
		strLen := int(binary.BigEndian.Uint32(raw[base+4 : base+8]))
		strOffset := int(binary.BigEndian.Uint32(raw[base+8 : base+12]))
		if strOffset+strLen > len(raw) || strLen%2 != 0 {
			return nil, fmt.Errorf("invalid string offset/length in mluc record %d", i)
		}
		value, err := decodeUTF16BE(raw[strOffset : strOffset+strLen])
		if err != nil {
			return nil, fmt.Errorf("invalid UTF-16 string in mluc record %d: %w", i, err)
		}
		result.Strings = append(result.Strings, LocalizedString{
			Language: string(raw[base : base+2]),
			Country:  string(raw[base+2 : base+4]),
			Value:    value,
		})
	}
	return result, nil
}

func decodeUTF16BE(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("odd length UTF-16BE string")
	}
	codeUnits := make([]uint16, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		codeUnits[i/2] = binary.BigEndian.Uint16(data[i : i+2])
	}
	return string(utf16.Decode(codeUnits)), nil
}
