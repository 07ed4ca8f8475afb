package icc

// Well-known tag table signatures.
const (
	TagProfileDescription  Signature = 0x64657363 // 'desc'
	TagCopyright           Signature = 0x63707274 // 'cprt'
	TagMediaWhitePoint     Signature = 0x77747074 // 'wtpt'
	TagMediaBlackPoint     Signature = 0x626B7074 // 'bkpt'
	TagRedColorant         Signature = 0x7258595A // 'rXYZ'
	TagGreenColorant       Signature = 0x6758595A // 'gXYZ'
	TagBlueColorant        Signature = 0x6258595A // 'bXYZ'
	TagRedTRC              Signature = 0x72545243 // 'rTRC'
	TagGreenTRC            Signature = 0x67545243 // 'gTRC'
	TagBlueTRC             Signature = 0x62545243 // 'bTRC'
	TagGrayTRC             Signature = 0x6B545243 // 'kTRC'
	TagChromaticAdaptation Signature = 0x63686164 // 'chad'
	TagLuminance           Signature = 0x6C756D69 // 'lumi'
	TagMeasurement         Signature = 0x6D656173 // 'meas'
	TagTechnology          Signature = 0x74656368 // 'tech'
	TagViewingConditions   Signature = 0x76696577 // 'view'
	TagViewingCondDesc     Signature = 0x76756564 // 'vued'
)

// Tag data type signatures (the first 4 bytes of a tag data element).
const (
	TagTypeText              Signature = 0x74657874 // 'text'
	TagTypeDescription       Signature = 0x64657363 // 'desc'
	TagTypeMultiLocalized    Signature = 0x6D6C7563 // 'mluc'
	TagTypeSignature         Signature = 0x73696720 // 'sig '
	TagTypeCurve             Signature = 0x63757276 // 'curv'
	TagTypeParametricCurve   Signature = 0x70617261 // 'para'
	TagTypeXYZ               Signature = 0x58595A20 // 'XYZ '
	TagTypeS15Fixed16Array   Signature = 0x73663332 // 'sf32'
	TagTypeMeasurement       Signature = 0x6D656173 // 'meas'
	TagTypeViewingConditions Signature = 0x76696577 // 'view'
)

// TagData is the decoded content of one tag data element. Concrete
// implementations report the type signature they were decoded from;
// unrecognized types surface as OpaqueTag.
type TagData interface {
	TagType() Signature
}

// TagDecoder decodes one tag data element. raw is the element's whole
// byte range, starting with its 4-byte type signature.
type TagDecoder func(raw []byte) (TagData, error)

// OpaqueTag stands in for a tag of unrecognized type: location and
// declared type are retained, content is not materialized.
type OpaqueTag struct {
	Offset uint32
	Size   uint32
	Type   Signature
}

func (t OpaqueTag) TagType() Signature {
	return t.Type
}

// defaultDecoders maps a tag data type signature to its decoder.
// Dispatch is an exact-match lookup; growing the set never touches the
// dispatch path.
var defaultDecoders = map[Signature]TagDecoder{
	TagTypeText:              decodeText,
	TagTypeDescription:       decodeDescription,
	TagTypeMultiLocalized:    decodeMultiLocalized,
	TagTypeSignature:         decodeSignature,
	TagTypeCurve:             decodeCurve,
	TagTypeParametricCurve:   decodeParametricCurve,
	TagTypeXYZ:               decodeXYZ,
	TagTypeS15Fixed16Array:   decodeS15Fixed16Array,
	TagTypeMeasurement:       decodeMeasurement,
	TagTypeViewingConditions: decodeViewingConditions,
}

// RegisterTagDecoder adds (or replaces) the decoder for a tag data type
// signature. Not safe for concurrent use with Parse; intended to be
// called during package init. For a per-call override use
// ParseOptions.TagDecoders.
func RegisterTagDecoder(typ Signature, dec TagDecoder) {
	defaultDecoders[typ] = dec
}
