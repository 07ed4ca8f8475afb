package icc

import (
	"encoding/binary"
	"fmt"
)

const tagEntrySize = 12

// TagTableEntry is one 12-byte tag directory entry. Offset and Size are
// relative to the start of the (size-truncated) profile.
type TagTableEntry struct {
	Signature Signature
	Offset    uint32
	Size      uint32
}

// parseTagTable reads the tag directory that follows the header and
// decodes every entry's data element. data must already be truncated to
// the header's declared profile size.
//
// Entries sharing an identical {offset, size} range are decoded
// independently; duplicate tag signatures fail.
func parseTagTable(data []byte, options *ParseOptions) (map[Signature]TagData, error) {
	if len(data) < HeaderSize+4 {
		return nil, fmt.Errorf("%w: not enough data for tag count", ErrTruncatedInput)
	}
	count := binary.BigEndian.Uint32(data[HeaderSize : HeaderSize+4])
	if uint64(HeaderSize+4)+uint64(count)*tagEntrySize > uint64(len(data)) {
		return nil, fmt.Errorf("%w: not enough data for %d tag table entries", ErrTruncatedInput, count)
	}
	tags := make(map[Signature]TagData, count)
	for i := uint32(0); i < count; i++ {
		base := HeaderSize + 4 + int(i)*tagEntrySize
		entry := TagTableEntry{
			Signature: Signature(binary.BigEndian.Uint32(data[base : base+4])),
			Offset:    binary.BigEndian.Uint32(data[base+4 : base+8]),
			Size:      binary.BigEndian.Uint32(data[base+8 : base+12]),
		}
		if _, exists := tags[entry.Signature]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, entry.Signature)
		}
		value, err := decodeTagData(data, entry, options)
		if err != nil {
			return nil, err
		}
		tags[entry.Signature] = value
	}
	return tags, nil
}

// decodeTagData bounds-checks one directory entry and dispatches its
// byte range on the element's leading type signature. Types with no
// registered decoder come back as OpaqueTag; so do failing decoders
// unless ParseOptions.ErrorOnTagDecode is set.
func decodeTagData(data []byte, entry TagTableEntry, options *ParseOptions) (TagData, error) {
	end := uint64(entry.Offset) + uint64(entry.Size)
	if end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: tag %q range [%d, %d) in %d-byte profile", ErrBoundsViolation, entry.Signature, entry.Offset, end, len(data))
	}
	if entry.Size < 4 {
		return nil, fmt.Errorf("%w: tag %q too short for a type signature", ErrTruncatedInput, entry.Signature)
	}
	raw := data[entry.Offset:end]
	typ := Signature(binary.BigEndian.Uint32(raw[:4]))
	opaque := OpaqueTag{Offset: entry.Offset, Size: entry.Size, Type: typ}
	decoder, ok := options.TagDecoders[typ]
	if !ok {
		decoder, ok = defaultDecoders[typ]
	}
	if !ok {
		return opaque, nil
	}
	value, err := decoder(raw)
	if err != nil {
		if options.ErrorOnTagDecode {
			return nil, fmt.Errorf("decoding tag %q (type %q): %w", entry.Signature, typ, err)
		}
		return opaque, nil
	}
	return value, nil
}
