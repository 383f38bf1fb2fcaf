package protocol

import (
	"fmt"

	rubikscube "github.com/h4rr9/rubiks-cube"
)

// Rotation is a single face rotation reported by the cube.
type Rotation struct {
	Code              byte // face and direction, 0x00-0x0B
	CenterOrientation byte
	Clockwise         bool
	Color             rubikscube.Color // center color of the turned face
}

// Turn maps the rotation onto a turn. Faces are identified by their center
// color, so the mapping holds for any way the cube is held.
func (r Rotation) Turn() rubikscube.Turn {
	dir := rubikscube.CounterClockwise
	if r.Clockwise {
		dir = rubikscube.Clockwise
	}
	return rubikscube.NewTurn(rubikscube.FaceOf(r.Color), dir)
}

// gocubeColors is the color order of the GoCube face codes.
var gocubeColors = [6]rubikscube.Color{
	rubikscube.Blue,
	rubikscube.Green,
	rubikscube.White,
	rubikscube.Yellow,
	rubikscube.Red,
	rubikscube.Orange,
}

// DecodeRotation decodes a rotation payload: pairs of [code] [center
// orientation]. Even codes are clockwise, odd codes counter-clockwise.
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("rotation payload must have even length, got %d", len(payload))
	}

	rotations := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		idx := int(code / 2)
		if idx >= len(gocubeColors) {
			return nil, fmt.Errorf("unknown face code 0x%02X", code)
		}
		rotations = append(rotations, Rotation{
			Code:              code,
			CenterOrientation: payload[i+1],
			Clockwise:         code%2 == 0,
			Color:             gocubeColors[idx],
		})
	}
	return rotations, nil
}

// RotationTurns converts rotations to turns, merging consecutive turns of
// the same face.
func RotationTurns(rotations []Rotation) []rubikscube.Turn {
	turns := make([]rubikscube.Turn, len(rotations))
	for i, r := range rotations {
		turns[i] = r.Turn()
	}
	return rubikscube.MergeTurns(turns)
}

// EncodeRotation is the inverse of DecodeRotation for quarter turns. Half
// turns are sent as two clockwise rotations. It is used to simulate a cube.
func EncodeRotation(turns ...rubikscube.Turn) []byte {
	var payload []byte
	for _, t := range turns {
		var idx byte
		for i, c := range gocubeColors {
			if c == t.Face().Color() {
				idx = byte(i)
			}
		}
		switch t.Direction() {
		case rubikscube.Clockwise:
			payload = append(payload, idx*2, 0)
		case rubikscube.CounterClockwise:
			payload = append(payload, idx*2+1, 0)
		case rubikscube.Half:
			payload = append(payload, idx*2, 0, idx*2, 0)
		}
	}
	return payload
}

// Battery is a battery level notification.
type Battery struct {
	Level int // percent
}

// DecodeBattery decodes a battery payload.
func DecodeBattery(payload []byte) (Battery, error) {
	if len(payload) < 1 {
		return Battery{}, fmt.Errorf("battery payload too short")
	}
	return Battery{Level: int(payload[0])}, nil
}

// CubeType names the hardware variant reported by the cube.
type CubeType struct {
	Code byte
	Name string
}

// DecodeCubeType decodes a cube type payload.
func DecodeCubeType(payload []byte) (CubeType, error) {
	if len(payload) < 1 {
		return CubeType{}, fmt.Errorf("cube type payload too short")
	}
	name := "standard"
	if payload[0] == 0x01 {
		name = "edge"
	}
	return CubeType{Code: payload[0], Name: name}, nil
}
