package icc

import "fmt"

// XYZTag is an 'XYZ ' element: one or more XYZNumbers.
type XYZTag struct {
	Values []XYZNumber
}

func (t XYZTag) TagType() Signature {
	return TagTypeXYZ
}

func decodeXYZ(raw []byte) (TagData, error) {
	if len(raw) < 20 {
		return nil, fmt.Errorf("XYZ element too short")
	}
	body := raw[8:]
	if len(body)%12 != 0 {
		return nil, fmt.Errorf("XYZ element length not a multiple of 12")
	}
	count := len(body) / 12
	values := make([]XYZNumber, 0, count)
	for i := 0; i < count; i++ {
		values = append(values, readXYZNumber(body[i*12:i*12+12]))
	}
	return XYZTag{Values: values}, nil
}

// S15Fixed16ArrayTag is an 'sf32' element: an array of s15.16 values
// (the chromatic adaptation matrix, among others).
type S15Fixed16ArrayTag struct {
	Values []float64
}

func (t S15Fixed16ArrayTag) TagType() Signature {
	return TagTypeS15Fixed16Array
}

func decodeS15Fixed16Array(raw []byte) (TagData, error) {
	if len(raw) < 8 {
		return nil, fmt.Errorf("sf32 element too short")
	}
	body := raw[8:]
	if len(body)%4 != 0 {
		return nil, fmt.Errorf("sf32 element data not 4-byte aligned")
	}
	count := len(body) / 4
	values := make([]float64, count)
	for i := 0; i < count; i++ {
		values[i] = readFixed1616(body[i*4 : i*4+4]).Float64()
	}
	return S15Fixed16ArrayTag{Values: values}, nil
}
