package icc

import (
	"encoding/binary"
	"fmt"
)

// MeasurementTag is a 'meas' element describing the measurement setup
// the profile data was produced under.
type MeasurementTag struct {
	Observer   uint32
	Backing    XYZNumber
	Geometry   uint32
	Flare      float64
	Illuminant uint32
}

func (t MeasurementTag) TagType() Signature {
	return TagTypeMeasurement
}

func decodeMeasurement(raw []byte) (TagData, error) {
	if len(raw) < 36 {
		return nil, fmt.Errorf("meas element too short")
	}
	return MeasurementTag{
		Observer:   binary.BigEndian.Uint32(raw[8:12]),
		Backing:    readXYZNumber(raw[12:24]),
		Geometry:   binary.BigEndian.Uint32(raw[24:28]),
		Flare:      readFixed1616(raw[28:32]).Float64(),
		Illuminant: binary.BigEndian.Uint32(raw[32:36]),
	}, nil
}

// ViewingConditionsTag is a 'view' element.
type ViewingConditionsTag struct {
	Illuminant     XYZNumber
	Surround       XYZNumber
	IlluminantType uint32
}

func (t ViewingConditionsTag) TagType() Signature {
	return TagTypeViewingConditions
}

func decodeViewingConditions(raw []byte) (TagData, error) {
	if len(raw) < 36 {
		return nil, fmt.Errorf("view element too short")
	}
	return ViewingConditionsTag{
		Illuminant:     readXYZNumber(raw[8:20]),
		Surround:       readXYZNumber(raw[20:32]),
		IlluminantType: binary.BigEndian.Uint32(raw[32:36]),
	}, nil
}
