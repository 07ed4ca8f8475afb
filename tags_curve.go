package icc

import (
	"encoding/binary"
	"fmt"
)

type CurveKind uint

const (
	CurveKindIdentity CurveKind = iota
	CurveKindGamma
	CurveKindPoints
)

// CurveTag is a 'curv' element: identity, a single 8.8 gamma, or a
// sampled 1-D curve.
type CurveTag struct {
	Kind   CurveKind
	Gamma  float64  // Kind == CurveKindGamma
	Points []uint16 // Kind == CurveKindPoints
}

func (t CurveTag) TagType() Signature {
	return TagTypeCurve
}

func decodeCurve(raw []byte) (TagData, error) {
	if len(raw) < 12 {
		return nil, fmt.Errorf("curv element too short")
	}
	count := int(binary.BigEndian.Uint32(raw[8:12]))
	if count == 0 {
		return CurveTag{Kind: CurveKindIdentity}, nil
	}
	if count == 1 {
		if len(raw) < 14 {
			return nil, fmt.Errorf("curv element missing gamma value")
		}
		// 8.8 fixed-point
		gammaRaw := binary.BigEndian.Uint16(raw[12:14])
		return CurveTag{Kind: CurveKindGamma, Gamma: float64(gammaRaw) / 256.0}, nil
	}
	if len(raw) < 12+count*2 {
		return nil, fmt.Errorf("curv element truncated")
	}
	points := make([]uint16, count)
	for i := 0; i < count; i++ {
		points[i] = binary.BigEndian.Uint16(raw[12+i*2 : 14+i*2])
	}
	return CurveTag{Kind: CurveKindPoints, Points: points}, nil
}

// ParametricCurveTag is a 'para' element, one of the five function
// shapes of ICC v4 10.18.
type ParametricCurveTag struct {
	FunctionType uint16
	Parameters   []float64
}

func (t ParametricCurveTag) TagType() Signature {
	return TagTypeParametricCurve
}

func decodeParametricCurve(raw []byte) (TagData, error) {
	if len(raw) < 12 {
		return nil, fmt.Errorf("para element too short")
	}
	funcType := binary.BigEndian.Uint16(raw[8:10])
	var expected int
	switch funcType {
	case 0:
		expected = 1
	case 1:
		expected = 3
	case 2:
		expected = 4
	case 3:
		expected = 5
	case 4:
		expected = 7
	default:
		return nil, fmt.Errorf("unknown parametric function type: %d", funcType)
	}
	if len(raw) < 12+expected*4 {
		return nil, fmt.Errorf("para element truncated for function %d", funcType)
	}
	params := make([]float64, expected)
	for i := 0; i < expected; i++ {
		params[i] = readFixed1616(raw[12+i*4 : 16+i*4]).Float64()
	}
	return ParametricCurveTag{FunctionType: funcType, Parameters: params}, nil
}
