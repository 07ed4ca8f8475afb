package icc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProfileID_MasksMutableFields(t *testing.T) {
	data := buildProfile(testTag{sig: TagCopyright, data: textElement("x")})
	id := ComputeProfileID(data)
	assert.False(t, id.IsZero())

	// Flags, rendering intent and the ID field itself are zeroed in the
	// hash input, so mutating them must not change the digest.
	mutated := append([]byte(nil), data...)
	mutated[44] = 0xFF              // profile flags
	mutated[64], mutated[67] = 0, 3 // rendering intent
	copy(mutated[84:100], "0123456789abcdef")
	assert.Equal(t, id, ComputeProfileID(mutated))
}

func TestComputeProfileID_SensitiveToContent(t *testing.T) {
	data := buildProfile(testTag{sig: TagCopyright, data: textElement("x")})
	id := ComputeProfileID(data)

	mutated := append([]byte(nil), data...)
	mutated[len(mutated)-1] ^= 0x01
	assert.NotEqual(t, id, ComputeProfileID(mutated))
}

func TestComputeProfileID_ShortInputPanics(t *testing.T) {
	assert.Panics(t, func() {
		ComputeProfileID(make([]byte, HeaderSize-1))
	})
}

func TestParse_StoredProfileID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data := buildProfile(testTag{sig: TagCopyright, data: textElement("x")})
		id := ComputeProfileID(data)
		copy(data[84:100], id[:])

		profile, err := Parse(data, nil)
		require.NoError(t, err)
		assert.Equal(t, id, profile.Header.ProfileID)
	})
	t.Run("mismatch", func(t *testing.T) {
		data := buildProfile(testTag{sig: TagCopyright, data: textElement("x")})
		id := ComputeProfileID(data)
		id[0] ^= 0xFF
		copy(data[84:100], id[:])

		_, err := Parse(data, nil)
		require.ErrorIs(t, err, ErrDigestMismatch)
	})
	t.Run("absent", func(t *testing.T) {
		data := buildProfile(testTag{sig: TagCopyright, data: textElement("x")})
		profile, err := Parse(data, nil)
		require.NoError(t, err)
		assert.True(t, profile.Header.ProfileID.IsZero())
	})
	t.Run("digest survives flag and intent changes", func(t *testing.T) {
		data := buildProfile(testTag{sig: TagCopyright, data: textElement("x")})
		id := ComputeProfileID(data)
		copy(data[84:100], id[:])
		data[47] = 0x01 // embedded flag
		data[67] = 0x00 // perceptual intent

		profile, err := Parse(data, nil)
		require.NoError(t, err)
		assert.Equal(t, id, profile.Header.ProfileID)
		assert.True(t, profile.Header.Flags.Embedded())
		assert.Equal(t, IntentPerceptual, profile.Header.RenderingIntent)
	})
}
