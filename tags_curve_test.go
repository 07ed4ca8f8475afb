package icc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func curveElement(points ...uint16) []byte {
	body := make([]byte, 4+len(points)*2)
	binary.BigEndian.PutUint32(body[0:4], uint32(len(points)))
	for i, p := range points {
		binary.BigEndian.PutUint16(body[4+i*2:6+i*2], p)
	}
	return element(TagTypeCurve, body)
}

func TestDecodeCurve(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		value, err := decodeCurve(curveElement())
		require.NoError(t, err)
		assert.Equal(t, CurveTag{Kind: CurveKindIdentity}, value)
		assert.Equal(t, TagTypeCurve, value.TagType())
	})
	t.Run("gamma", func(t *testing.T) {
		value, err := decodeCurve(curveElement(0x0180)) // 1.5 in 8.8
		require.NoError(t, err)
		assert.Equal(t, CurveTag{Kind: CurveKindGamma, Gamma: 1.5}, value)
	})
	t.Run("sampled points", func(t *testing.T) {
		value, err := decodeCurve(curveElement(0, 32768, 65535))
		require.NoError(t, err)
		assert.Equal(t, CurveTag{Kind: CurveKindPoints, Points: []uint16{0, 32768, 65535}}, value)
	})
	t.Run("count past end", func(t *testing.T) {
		raw := curveElement(1, 2, 3)
		binary.BigEndian.PutUint32(raw[8:12], 1000)
		_, err := decodeCurve(raw)
		require.Error(t, err)
	})
	t.Run("too short", func(t *testing.T) {
		_, err := decodeCurve(make([]byte, 11))
		require.Error(t, err)
	})
}

func paraElement(funcType uint16, params ...uint32) []byte {
	body := make([]byte, 4+len(params)*4)
	binary.BigEndian.PutUint16(body[0:2], funcType)
	for i, p := range params {
		binary.BigEndian.PutUint32(body[4+i*4:8+i*4], p)
	}
	return element(TagTypeParametricCurve, body)
}

func TestDecodeParametricCurve(t *testing.T) {
	t.Run("pure gamma", func(t *testing.T) {
		value, err := decodeParametricCurve(paraElement(0, 0x00018000))
		require.NoError(t, err)
		assert.Equal(t, ParametricCurveTag{FunctionType: 0, Parameters: []float64{1.5}}, value)
		assert.Equal(t, TagTypeParametricCurve, value.TagType())
	})
	t.Run("sRGB shape takes seven parameters", func(t *testing.T) {
		params := make([]uint32, 7)
		for i := range params {
			params[i] = 0x00010000
		}
		value, err := decodeParametricCurve(paraElement(4, params...))
		require.NoError(t, err)
		curve := value.(ParametricCurveTag)
		assert.Equal(t, uint16(4), curve.FunctionType)
		assert.Len(t, curve.Parameters, 7)
	})
	t.Run("unknown function type", func(t *testing.T) {
		_, err := decodeParametricCurve(paraElement(5, 0x00010000))
		require.Error(t, err)
	})
	t.Run("missing parameters", func(t *testing.T) {
		_, err := decodeParametricCurve(paraElement(4, 0x00010000))
		require.Error(t, err)
	})
}
