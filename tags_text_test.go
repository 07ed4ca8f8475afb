package icc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	value, err := decodeText(textElement("Copyright 2022"))
	require.NoError(t, err)
	assert.Equal(t, TextTag{Text: "Copyright 2022"}, value)
	assert.Equal(t, TagTypeText, value.TagType())

	_, err = decodeText([]byte{'t', 'e', 'x', 't'})
	require.Error(t, err)
}

func TestDecodeSignature(t *testing.T) {
	body := make([]byte, 4)
	binary.BigEndian.PutUint32(body, uint32(SignatureOf("CRT ")))
	value, err := decodeSignature(element(TagTypeSignature, body))
	require.NoError(t, err)
	assert.Equal(t, SignatureTag{Value: SignatureOf("CRT ")}, value)

	_, err = decodeSignature(element(TagTypeSignature, nil))
	require.Error(t, err)
}

func descElement(ascii string, unicode []byte) []byte {
	body := make([]byte, 4+len(ascii))
	binary.BigEndian.PutUint32(body[0:4], uint32(len(ascii)))
	copy(body[4:], ascii)
	if unicode != nil {
		langAndCount := make([]byte, 8)
		binary.BigEndian.PutUint32(langAndCount[4:8], uint32(len(unicode)/2))
		body = append(body, langAndCount...)
		body = append(body, unicode...)
	}
	return element(TagTypeDescription, body)
}

func TestDecodeDescription(t *testing.T) {
	t.Run("ascii only", func(t *testing.T) {
		value, err := decodeDescription(descElement("sRGB\x00", nil))
		require.NoError(t, err)
		assert.Equal(t, DescriptionTag{ASCII: "sRGB"}, value)
		assert.Equal(t, TagTypeDescription, value.TagType())
	})
	t.Run("with unicode", func(t *testing.T) {
		value, err := decodeDescription(descElement("a\x00", []byte{0x00, 'H', 0x00, 'i'}))
		require.NoError(t, err)
		assert.Equal(t, DescriptionTag{ASCII: "a", Unicode: "Hi"}, value)
	})
	t.Run("zero ascii length", func(t *testing.T) {
		_, err := decodeDescription(descElement("", nil))
		require.Error(t, err)
	})
	t.Run("ascii length past end", func(t *testing.T) {
		raw := descElement("sRGB\x00", nil)
		binary.BigEndian.PutUint32(raw[8:12], 100)
		_, err := decodeDescription(raw)
		require.Error(t, err)
	})
	t.Run("too short", func(t *testing.T) {
		_, err := decodeDescription(make([]byte, 11))
		require.Error(t, err)
	})
}

func mlucElement(lang, country, value string) []byte {
	utf := make([]byte, 0, len(value)*2)
	for _, r := range value {
		utf = append(utf, byte(uint16(r)>>8), byte(uint16(r)))
	}
	raw := make([]byte, 28, 28+len(utf))
	binary.BigEndian.PutUint32(raw[0:4], uint32(TagTypeMultiLocalized))
	binary.BigEndian.PutUint32(raw[8:12], 1)   // record count
	binary.BigEndian.PutUint32(raw[12:16], 12) // record size
	copy(raw[16:18], lang)
	copy(raw[18:20], country)
	binary.BigEndian.PutUint32(raw[20:24], uint32(len(utf)))
	binary.BigEndian.PutUint32(raw[24:28], 28)
	return append(raw, utf...)
}

func TestDecodeMultiLocalized(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		value, err := decodeMultiLocalized(mlucElement("en", "US", "hello"))
		require.NoError(t, err)
		assert.Equal(t, MultiLocalizedTag{Strings: []LocalizedString{
			{Language: "en", Country: "US", Value: "hello"},
		}}, value)
	})
	t.Run("bad record size", func(t *testing.T) {
		raw := mlucElement("en", "US", "hello")
		binary.BigEndian.PutUint32(raw[12:16], 16)
		_, err := decodeMultiLocalized(raw)
		require.Error(t, err)
	})
	t.Run("string range past end", func(t *testing.T) {
		raw := mlucElement("en", "US", "hello")
		binary.BigEndian.PutUint32(raw[20:24], 100)
		_, err := decodeMultiLocalized(raw)
		require.Error(t, err)
	})
	t.Run("too short", func(t *testing.T) {
		_, err := decodeMultiLocalized(make([]byte, 15))
		require.Error(t, err)
	})
}

func TestDecodeUTF16BE(t *testing.T) {
	s, err := decodeUTF16BE([]byte{0x00, 'O', 0x00, 'K'})
	require.NoError(t, err)
	assert.Equal(t, "OK", s)

	_, err = decodeUTF16BE([]byte{0x00})
	require.Error(t, err)
}
