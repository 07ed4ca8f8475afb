package icc

import "crypto/md5"

// Byte ranges zeroed in the digest input (ICC v4, 7.2.18): the profile
// flags, rendering intent and profile ID header fields.
const (
	flagsFieldStart  = 44
	flagsFieldEnd    = 48
	intentFieldStart = 64
	intentFieldEnd   = 68
	idFieldStart     = 84
	idFieldEnd       = 100
)

// ComputeProfileID computes the MD5 profile ID over data with the
// profile-flags, rendering-intent and profile-ID header fields replaced
// by zeros in the hash input. data is not modified and must be at least
// HeaderSize bytes; shorter input panics.
func ComputeProfileID(data []byte) ProfileID {
	if len(data) < HeaderSize {
		panic("ComputeProfileID: not enough bytes for a profile header")
	}
	var zero [idFieldEnd - idFieldStart]byte
	h := md5.New()
	h.Write(data[:flagsFieldStart])
	h.Write(zero[:flagsFieldEnd-flagsFieldStart])
	h.Write(data[flagsFieldEnd:intentFieldStart])
	h.Write(zero[:intentFieldEnd-intentFieldStart])
	h.Write(data[intentFieldEnd:idFieldStart])
	h.Write(zero[:])
	h.Write(data[idFieldEnd:])
	return ProfileID(h.Sum(nil))
}
