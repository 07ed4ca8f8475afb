package icc

import (
	"fmt"
	"math"
	"time"

	bst "github.com/mixcode/binarystruct"
)

// HeaderSize is the fixed on-disk size of an ICC profile header.
const HeaderSize = 128

// fileSignature is the mandatory 'acsp' magic at offset 36.
const fileSignature Signature = 0x61637370

// DeviceClass identifies what kind of device or transform a profile
// describes (ICC v4, 7.2.5).
type DeviceClass Signature

const (
	DeviceClassInput      DeviceClass = 0x73636E72 // 'scnr'
	DeviceClassDisplay    DeviceClass = 0x6D6E7472 // 'mntr'
	DeviceClassOutput     DeviceClass = 0x70727472 // 'prtr'
	DeviceClassLink       DeviceClass = 0x6C696E6B // 'link'
	DeviceClassColorSpace DeviceClass = 0x73706163 // 'spac'
	DeviceClassAbstract   DeviceClass = 0x61627374 // 'abst'
	DeviceClassNamedColor DeviceClass = 0x6E6D636C // 'nmcl'
)

func (d DeviceClass) valid() bool {
	switch d {
	case DeviceClassInput, DeviceClassDisplay, DeviceClassOutput,
		DeviceClassLink, DeviceClassColorSpace, DeviceClassAbstract,
		DeviceClassNamedColor:
		return true
	}
	return false
}

func (d DeviceClass) String() string {
	switch d {
	case DeviceClassInput:
		return "InputDevice"
	case DeviceClassDisplay:
		return "DisplayDevice"
	case DeviceClassOutput:
		return "OutputDevice"
	case DeviceClassLink:
		return "DeviceLink"
	case DeviceClassColorSpace:
		return "ColorSpace"
	case DeviceClassAbstract:
		return "Abstract"
	case DeviceClassNamedColor:
		return "NamedColor"
	}
	return Signature(d).String()
}

// ColorSpace is a data color space signature (ICC v4, Table 19). The
// two profile connection spaces share the 'XYZ ' and 'Lab ' codes.
type ColorSpace Signature

const (
	ColorSpaceXYZ   ColorSpace = 0x58595A20 // 'XYZ '
	ColorSpaceLab   ColorSpace = 0x4C616220 // 'Lab '
	ColorSpaceLuv   ColorSpace = 0x4C757620 // 'Luv '
	ColorSpaceYCbCr ColorSpace = 0x59436272 // 'YCbr'
	ColorSpaceYxy   ColorSpace = 0x59787920 // 'Yxy '
	ColorSpaceRGB   ColorSpace = 0x52474220 // 'RGB '
	ColorSpaceGray  ColorSpace = 0x47524159 // 'GRAY'
	ColorSpaceHSV   ColorSpace = 0x48535620 // 'HSV '
	ColorSpaceHLS   ColorSpace = 0x484C5320 // 'HLS '
	ColorSpaceCMYK  ColorSpace = 0x434D594B // 'CMYK'
	ColorSpaceCMY   ColorSpace = 0x434D5920 // 'CMY '
	ColorSpace2     ColorSpace = 0x32434C52 // '2CLR'
	ColorSpace3     ColorSpace = 0x33434C52 // '3CLR'
	ColorSpace4     ColorSpace = 0x34434C52 // '4CLR'
	ColorSpace5     ColorSpace = 0x35434C52 // '5CLR'
	ColorSpace6     ColorSpace = 0x36434C52 // '6CLR'
	ColorSpace7     ColorSpace = 0x37434C52 // '7CLR'
	ColorSpace8     ColorSpace = 0x38434C52 // '8CLR'
	ColorSpace9     ColorSpace = 0x39434C52 // '9CLR'
	ColorSpace10    ColorSpace = 0x41434C52 // 'ACLR'
	ColorSpace11    ColorSpace = 0x42434C52 // 'BCLR'
	ColorSpace12    ColorSpace = 0x43434C52 // 'CCLR'
	ColorSpace13    ColorSpace = 0x44434C52 // 'DCLR'
	ColorSpace14    ColorSpace = 0x45434C52 // 'ECLR'
	ColorSpace15    ColorSpace = 0x46434C52 // 'FCLR'

	// The designated profile connection spaces (ICC v4, Annex D).
	ColorSpacePCSXYZ = ColorSpaceXYZ
	ColorSpacePCSLab = ColorSpaceLab
)

func (c ColorSpace) valid() bool {
	switch c {
	case ColorSpaceXYZ, ColorSpaceLab, ColorSpaceLuv, ColorSpaceYCbCr,
		ColorSpaceYxy, ColorSpaceRGB, ColorSpaceGray, ColorSpaceHSV,
		ColorSpaceHLS, ColorSpaceCMYK, ColorSpaceCMY,
		ColorSpace2, ColorSpace3, ColorSpace4, ColorSpace5, ColorSpace6,
		ColorSpace7, ColorSpace8, ColorSpace9, ColorSpace10, ColorSpace11,
		ColorSpace12, ColorSpace13, ColorSpace14, ColorSpace15:
		return true
	}
	return false
}

// IsPCS reports whether the space is one of the two designated profile
// connection spaces.
func (c ColorSpace) IsPCS() bool {
	return c == ColorSpacePCSXYZ || c == ColorSpacePCSLab
}

func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceXYZ:
		return "nCIEXYZ"
	case ColorSpaceLab:
		return "CIELAB"
	case ColorSpaceLuv:
		return "CIELUV"
	case ColorSpaceYCbCr:
		return "YCbCr"
	case ColorSpaceYxy:
		return "CIEYxy"
	case ColorSpaceRGB:
		return "RGB"
	case ColorSpaceGray:
		return "Gray"
	case ColorSpaceHSV:
		return "HSV"
	case ColorSpaceHLS:
		return "HLS"
	case ColorSpaceCMYK:
		return "CMYK"
	case ColorSpaceCMY:
		return "CMY"
	case ColorSpace2, ColorSpace3, ColorSpace4, ColorSpace5, ColorSpace6,
		ColorSpace7, ColorSpace8, ColorSpace9, ColorSpace10, ColorSpace11,
		ColorSpace12, ColorSpace13, ColorSpace14, ColorSpace15:
		// leading hex digit of the 'xCLR' code is the channel count
		digit := byte(c >> 24)
		n := int(digit - '0')
		if digit >= 'A' {
			n = int(digit-'A') + 10
		}
		return fmt.Sprintf("%d color", n)
	}
	return Signature(c).String()
}

// PrimaryPlatform identifies the platform a profile was created for
// (ICC v4, 7.2.10).
type PrimaryPlatform Signature

const (
	PlatformApple           PrimaryPlatform = 0x4150504C // 'APPL'
	PlatformMicrosoft       PrimaryPlatform = 0x4D534654 // 'MSFT'
	PlatformSiliconGraphics PrimaryPlatform = 0x53474920 // 'SGI '
	PlatformSun             PrimaryPlatform = 0x53554E57 // 'SUNW'
)

func (p PrimaryPlatform) valid() bool {
	switch p {
	case PlatformApple, PlatformMicrosoft, PlatformSiliconGraphics, PlatformSun:
		return true
	}
	return false
}

func (p PrimaryPlatform) String() string {
	switch p {
	case PlatformApple:
		return "Apple"
	case PlatformMicrosoft:
		return "Microsoft"
	case PlatformSiliconGraphics:
		return "Silicon Graphics"
	case PlatformSun:
		return "Sun"
	}
	return Signature(p).String()
}

// RenderingIntent is the header rendering intent (ICC v4, 7.2.15).
type RenderingIntent uint32

const (
	IntentPerceptual           RenderingIntent = 0
	IntentRelativeColorimetric RenderingIntent = 1
	IntentSaturation           RenderingIntent = 2
	IntentAbsoluteColorimetric RenderingIntent = 3
)

func (r RenderingIntent) valid() bool {
	return r <= IntentAbsoluteColorimetric
}

func (r RenderingIntent) String() string {
	switch r {
	case IntentPerceptual:
		return "Perceptual"
	case IntentRelativeColorimetric:
		return "Media-relative colorimetric"
	case IntentSaturation:
		return "Saturation"
	case IntentAbsoluteColorimetric:
		return "ICC-absolute colorimetric"
	}
	return fmt.Sprintf("RenderingIntent(%d)", uint32(r))
}

// ProfileFlags is the 32-bit header flags field. Only the low two bits
// are defined; the rest are CMM hints and vendor bits.
type ProfileFlags uint32

// Embedded reports whether the profile is embedded in a file.
func (f ProfileFlags) Embedded() bool {
	return f&0x1 != 0
}

// EmbeddedOnly reports whether the profile cannot be used independently
// of the color data it is embedded with.
func (f ProfileFlags) EmbeddedOnly() bool {
	return f&0x2 != 0
}

// DeviceAttributes is the 64-bit header attributes field. Bits 4-31 are
// reserved; bits 32-63 are vendor defined.
type DeviceAttributes uint64

const deviceAttributesReservedMask DeviceAttributes = 0xFFFFFFF0

// Transparency reports transparency media (bit 0); unset means reflective.
func (a DeviceAttributes) Transparency() bool {
	return a&0x1 != 0
}

// Matte reports matte media (bit 1); unset means glossy.
func (a DeviceAttributes) Matte() bool {
	return a&0x2 != 0
}

// Negative reports negative media polarity (bit 2).
func (a DeviceAttributes) Negative() bool {
	return a&0x4 != 0
}

// BlackAndWhite reports black & white media (bit 3); unset means color.
func (a DeviceAttributes) BlackAndWhite() bool {
	return a&0x8 != 0
}

// Version is the profile version with the reserved bytes stripped.
type Version struct {
	Major  int
	Minor  int
	Bugfix int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}

// ProfileID is the 128-bit profile identity digest. The zero value
// means no ID was stored.
type ProfileID [16]byte

func (id ProfileID) IsZero() bool {
	return id == ProfileID{}
}

func (id ProfileID) String() string {
	return fmt.Sprintf("%x", id[:])
}

// ManufacturerURL returns the ICC signature registry URL for a device
// manufacturer signature.
func ManufacturerURL(sig Signature) string {
	return fmt.Sprintf("https://www.color.org/signatureRegistry/?entityEntry=%s-%08X", sig, uint32(sig))
}

// DeviceModelURL returns the ICC device registry URL for a device model
// signature.
func DeviceModelURL(sig Signature) string {
	return fmt.Sprintf("https://www.color.org/signatureRegistry/deviceRegistry/?entityEntry=%s-%08X", sig, uint32(sig))
}

// Header is the validated 128-byte profile header. PreferredCMM,
// Manufacturer, Model, Creator and ProfileID are optional; their zero
// values mean the field was not set.
type Header struct {
	ProfileSize      uint32
	PreferredCMM     Signature
	Version          Version
	DeviceClass      DeviceClass
	DataColorSpace   ColorSpace
	ConnectionSpace  ColorSpace
	CreatedAt        time.Time
	PrimaryPlatform  PrimaryPlatform
	Flags            ProfileFlags
	Manufacturer     Signature
	Model            Signature
	DeviceAttributes DeviceAttributes
	RenderingIntent  RenderingIntent
	PCSIlluminant    XYZNumber
	Creator          Signature
	ProfileID        ProfileID
}

// rawHeader mirrors the on-disk header layout; decoded in one shot as
// big-endian by binarystruct.
type rawHeader struct {
	ProfileSize     uint32
	PreferredCMM    uint32
	VersionMajor    uint8
	VersionMinor    uint8
	VersionReserved uint16
	DeviceClass     uint32
	DataColorSpace  uint32
	ConnectionSpace uint32
	Year            uint16
	Month           uint16
	Day             uint16
	Hour            uint16
	Minute          uint16
	Second          uint16
	FileSignature   uint32
	PrimaryPlatform uint32
	Flags           uint32
	Manufacturer    uint32
	Model           uint32
	Attributes      uint64
	RenderingIntent uint32
	IlluminantX     int32
	IlluminantY     int32
	IlluminantZ     int32
	Creator         uint32
	ProfileID       [16]byte
	Reserved        [28]byte
}

// parseHeader validates the first 128 bytes of data and verifies a
// stored profile ID against the whole buffer. Validation is fail-fast:
// the first violated rule aborts with its sentinel error.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is too short for a profile header", ErrTruncatedInput, len(data))
	}
	var raw rawHeader
	if _, err := bst.Unmarshal(data[:HeaderSize], bst.BigEndian, &raw); err != nil {
		return Header{}, fmt.Errorf("decoding header: %w", err)
	}

	if Signature(raw.FileSignature) != fileSignature {
		return Header{}, fmt.Errorf("%w: got %q, want \"acsp\"", ErrBadSignature, Signature(raw.FileSignature))
	}
	if err := validateSize(raw.ProfileSize, len(data)); err != nil {
		return Header{}, err
	}
	if raw.VersionReserved != 0 {
		return Header{}, fmt.Errorf("%w: version reserved bytes", ErrReservedNonZero)
	}
	deviceClass := DeviceClass(raw.DeviceClass)
	if !deviceClass.valid() {
		return Header{}, fmt.Errorf("%w: device class %q", ErrInvalidEnum, Signature(raw.DeviceClass))
	}
	dataSpace := ColorSpace(raw.DataColorSpace)
	if !dataSpace.valid() {
		return Header{}, fmt.Errorf("%w: data color space %q", ErrInvalidEnum, Signature(raw.DataColorSpace))
	}
	connSpace := ColorSpace(raw.ConnectionSpace)
	if !connSpace.valid() {
		return Header{}, fmt.Errorf("%w: connection space %q", ErrInvalidEnum, Signature(raw.ConnectionSpace))
	}
	// Any valid space may connect a DeviceLink profile; everything else
	// must connect through PCSXYZ or PCSLAB (ICC v4, Annex D).
	if deviceClass != DeviceClassLink && !connSpace.IsPCS() {
		return Header{}, fmt.Errorf("%w: %q on %s profile", ErrInvalidConnectionSpace, Signature(raw.ConnectionSpace), deviceClass)
	}
	created, err := validateDateTime(dateTimeNumber{
		Year: raw.Year, Month: raw.Month, Day: raw.Day,
		Hour: raw.Hour, Minute: raw.Minute, Second: raw.Second,
	})
	if err != nil {
		return Header{}, err
	}
	platform := PrimaryPlatform(raw.PrimaryPlatform)
	if !platform.valid() {
		return Header{}, fmt.Errorf("%w: primary platform %q", ErrInvalidEnum, Signature(raw.PrimaryPlatform))
	}
	attributes := DeviceAttributes(raw.Attributes)
	if attributes&deviceAttributesReservedMask != 0 {
		return Header{}, fmt.Errorf("%w: device attributes reserved bits", ErrReservedNonZero)
	}
	intent := RenderingIntent(raw.RenderingIntent)
	if !intent.valid() {
		return Header{}, fmt.Errorf("%w: rendering intent %d", ErrInvalidEnum, raw.RenderingIntent)
	}
	illuminant := XYZNumber{
		X: Fixed1616(raw.IlluminantX).Float64(),
		Y: Fixed1616(raw.IlluminantY).Float64(),
		Z: Fixed1616(raw.IlluminantZ).Float64(),
	}
	if err := validateReferenceWhite(illuminant); err != nil {
		return Header{}, err
	}
	profileID := ProfileID(raw.ProfileID)
	if !profileID.IsZero() {
		if computed := ComputeProfileID(data); computed != profileID {
			return Header{}, fmt.Errorf("%w: stored %s, computed %s", ErrDigestMismatch, profileID, computed)
		}
	}
	if raw.Reserved != [28]byte{} {
		return Header{}, fmt.Errorf("%w: trailing reserved region", ErrReservedNonZero)
	}

	return Header{
		ProfileSize:  raw.ProfileSize,
		PreferredCMM: Signature(raw.PreferredCMM),
		Version: Version{
			Major:  int(raw.VersionMajor),
			Minor:  int(raw.VersionMinor >> 4),
			Bugfix: int(raw.VersionMinor & 0x0F),
		},
		DeviceClass:      deviceClass,
		DataColorSpace:   dataSpace,
		ConnectionSpace:  connSpace,
		CreatedAt:        created,
		PrimaryPlatform:  platform,
		Flags:            ProfileFlags(raw.Flags),
		Manufacturer:     Signature(raw.Manufacturer),
		Model:            Signature(raw.Model),
		DeviceAttributes: attributes,
		RenderingIntent:  intent,
		PCSIlluminant:    illuminant,
		Creator:          Signature(raw.Creator),
		ProfileID:        profileID,
	}, nil
}

// validateSize checks the declared profile size against the minimum
// viable profile (header + tag count) and the supplied buffer.
func validateSize(declared uint32, actual int) error {
	if declared < HeaderSize+4 {
		return fmt.Errorf("%w: declared size %d too small", ErrSizeMismatch, declared)
	}
	if uint64(declared) > uint64(actual) {
		return fmt.Errorf("%w: declared size %d larger than %d-byte input", ErrSizeMismatch, declared, actual)
	}
	return nil
}

func validateDateTime(d dateTimeNumber) (time.Time, error) {
	switch {
	case d.Month < 1 || d.Month > 12:
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDateTime, d.Month)
	case d.Day < 1 || d.Day > 31:
		return time.Time{}, fmt.Errorf("%w: day %d", ErrInvalidDateTime, d.Day)
	case d.Hour > 23:
		return time.Time{}, fmt.Errorf("%w: hour %d", ErrInvalidDateTime, d.Hour)
	case d.Minute > 59:
		return time.Time{}, fmt.Errorf("%w: minute %d", ErrInvalidDateTime, d.Minute)
	case d.Second > 59:
		return time.Time{}, fmt.Errorf("%w: second %d", ErrInvalidDateTime, d.Second)
	}
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), 0, time.UTC)
	// time.Date normalizes impossible dates (April 31 becomes May 1);
	// any component changing means the original was not a real instant.
	if t.Year() != int(d.Year) || t.Month() != time.Month(d.Month) || t.Day() != int(d.Day) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidDateTime, d.Year, d.Month, d.Day)
	}
	return t, nil
}

// validateReferenceWhite requires the PCS illuminant to round to D50
// (X=0.9642, Y=1.0, Z=0.8249) at four decimal places.
func validateReferenceWhite(w XYZNumber) error {
	if math.Round(w.X*10000) != 9642 || math.Round(w.Y*10000) != 10000 || math.Round(w.Z*10000) != 8249 {
		return fmt.Errorf("%w: got X=%.4f Y=%.4f Z=%.4f, want D50", ErrInvalidReferenceWhite, w.X, w.Y, w.Z)
	}
	return nil
}
