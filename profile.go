// Package icc parses and validates ICC color profile containers: the
// fixed 128-byte header, the tag table, and the MD5-based profile
// identity. Header validation follows ICC v4 clause 7 and is strict;
// tag content interpretation is extensible and lenient (unknown tag
// types decode to OpaqueTag).
package icc

import (
	"fmt"
	"io"
	"slices"
)

type ParseMode uint8

const (
	// ParseFull parses the header and every tag data element.
	ParseFull ParseMode = iota
	// ParseHeaderOnly validates the header and skips the tag table -
	// useful for just listing profile metadata.
	ParseHeaderOnly
)

// ParseOptions represents the parsing options passed to Parse.
type ParseOptions struct {
	// Mode determines how much of the profile to parse; the default is
	// ParseFull
	Mode ParseMode
	// TagDecoders overrides or extends the default tag data decoders
	// for this parse only, keyed by type signature
	TagDecoders map[Signature]TagDecoder
	// ErrorOnTagDecode makes a failing registered decoder abort the
	// parse; by default such tags degrade to OpaqueTag. Structural
	// violations (bounds, duplicates) always abort regardless.
	ErrorOnTagDecode bool
}

// Profile is a parsed, validated ICC profile. It is immutable once
// constructed and safe to share across goroutines.
type Profile struct {
	// Header is the validated profile header
	Header Header
	tags   map[Signature]TagData
}

// Parse parses and validates an ICC profile from data. Validation is
// fail-fast: the first violated rule aborts with one of the Err...
// sentinels, and no partial Profile is returned.
//
// Decoded tags may retain sub-slices of data; the caller must not
// mutate the buffer while the Profile is in use.
func Parse(data []byte, options *ParseOptions) (*Profile, error) {
	if options == nil {
		options = &ParseOptions{}
	}
	header, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	result := &Profile{Header: header, tags: map[Signature]TagData{}}
	if options.Mode == ParseHeaderOnly {
		return result, nil
	}
	// Everything past the declared profile size is not part of the
	// profile; tag bounds are checked against the truncated view.
	if result.tags, err = parseTagTable(data[:header.ProfileSize], options); err != nil {
		return nil, err
	}
	return result, nil
}

// ParseReader reads all of r and parses it as an ICC profile.
func ParseReader(r io.Reader, options *ParseOptions) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data, options)
}

// Tag retrieves the tag data recorded under a tag table signature.
func (p *Profile) Tag(sig Signature) (TagData, bool) {
	value, ok := p.tags[sig]
	return value, ok
}

// TagCount returns the number of tags in the profile.
func (p *Profile) TagCount() int {
	return len(p.tags)
}

// TagSignatures returns the tag table signatures in ascending order.
func (p *Profile) TagSignatures() []Signature {
	result := make([]Signature, 0, len(p.tags))
	for sig := range p.tags {
		result = append(result, sig)
	}
	slices.Sort(result)
	return result
}
