// Package protocol implements the GoCube BLE message framing and decodes
// the messages a smart cube sends into cube turns.
package protocol

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write
)

// Message types.
const (
	MsgTypeRotation    byte = 0x01
	MsgTypeState       byte = 0x02
	MsgTypeOrientation byte = 0x03
	MsgTypeBattery     byte = 0x05
	MsgTypeCubeType    byte = 0x08
)

// Commands written to the RX characteristic.
const (
	CmdRequestBattery     byte = 0x32
	CmdRequestState       byte = 0x33
	CmdResetSolved        byte = 0x35
	CmdDisableOrientation byte = 0x37
	CmdEnableOrientation  byte = 0x38
	CmdFlashBacklight     byte = 0x41
	CmdRequestCubeType    byte = 0x56
)

const (
	framePrefix  byte = 0x2A // '*'
	frameSuffix1 byte = 0x0D // CR
	frameSuffix2 byte = 0x0A // LF
)

var (
	ErrInvalidPrefix   = errors.New("protocol: invalid message prefix")
	ErrInvalidSuffix   = errors.New("protocol: invalid message suffix")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrMessageTooShort = errors.New("protocol: message too short")
	ErrInvalidLength   = errors.New("protocol: invalid message length")
)

// Message is one decoded frame.
type Message struct {
	Type    byte
	Payload []byte
	Raw     string // base64 of the whole frame, for logs
}

// ParseMessage parses a BLE notification.
//
// Frame: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A], where
// length counts everything after itself and the checksum is the byte sum of
// all preceding bytes.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 6 {
		return nil, ErrMessageTooShort
	}
	if data[0] != framePrefix {
		return nil, ErrInvalidPrefix
	}

	total := 2 + int(data[1])
	if len(data) < total {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, total, len(data))
	}
	sum := total - 3
	if sum < 3 {
		return nil, ErrMessageTooShort
	}
	if data[sum+1] != frameSuffix1 || data[sum+2] != frameSuffix2 {
		return nil, ErrInvalidSuffix
	}
	if got := checksum(data[:sum]); got != data[sum] {
		return nil, fmt.Errorf("%w: frame says 0x%02X, computed 0x%02X", ErrInvalidChecksum, data[sum], got)
	}

	return &Message{
		Type:    data[2],
		Payload: data[3:sum],
		Raw:     base64.StdEncoding.EncodeToString(data[:total]),
	}, nil
}

func checksum(b []byte) byte {
	var s byte
	for _, v := range b {
		s += v
	}
	return s
}

// BuildCommand frames a payload-less command.
func BuildCommand(cmd byte) []byte {
	return BuildFrame(cmd, nil)
}

// BuildFrame frames a message of the given type. ParseMessage accepts the
// result.
func BuildFrame(msgType byte, payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+6)
	frame = append(frame, framePrefix, byte(len(payload)+4), msgType)
	frame = append(frame, payload...)
	frame = append(frame, checksum(frame), frameSuffix1, frameSuffix2)
	return frame
}

// MessageTypeName returns a readable name for a message type.
func MessageTypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}
