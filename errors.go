package rubikscube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rubikscube package.
var (
	// Decoding errors
	ErrInvalidFaceOrder    = errors.New("rubikscube: invalid face order")
	ErrInvalidFaceletColor = errors.New("rubikscube: invalid facelet color")
	ErrInvalidFaceletCount = errors.New("rubikscube: invalid facelet count")

	// Parsing errors
	ErrInvalidTurn   = errors.New("rubikscube: invalid turn")
	ErrInvalidMetric = errors.New("rubikscube: invalid metric")
)

// FaceOrderError reports a face whose center facelet does not carry the
// color that identifies the face at that array index.
type FaceOrderError struct {
	Color Color
	Index int
}

func (e *FaceOrderError) Error() string {
	return fmt.Sprintf("%v: center %s found on face %d", ErrInvalidFaceOrder, e.Color.Name(), e.Index)
}

func (e *FaceOrderError) Unwrap() error { return ErrInvalidFaceOrder }

// FaceletColorError reports a facelet token that is not a known color.
type FaceletColorError struct {
	Token string
}

func (e *FaceletColorError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidFaceletColor, e.Token)
}

func (e *FaceletColorError) Unwrap() error { return ErrInvalidFaceletColor }
