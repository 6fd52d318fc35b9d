package tokgrid

import "fmt"

// DataType tags the element type of a tensor exchanged with the host.
type DataType int

const (
	// TypeUnknown is the zero DataType.
	TypeUnknown DataType = iota
	// TypeString marks a tensor of UTF-8 strings.
	TypeString
)

// Shape is an ordered sequence of tensor dimension sizes.
type Shape []int64

// Elems returns the total number of elements a tensor of this shape holds.
func (s Shape) Elems() int64 {
	n := int64(1)
	for _, d := range s {
		n *= d
	}
	return n
}

// Input is the host-side accessor for an input batch: an element type tag,
// a shape, and a flat row-major view of the strings.
type Input interface {
	DataType() DataType
	Shape() Shape
	Strings() []string
}

// OutputAllocator provides the writable output buffer for a target shape.
// The returned slice must have exactly shape.Elems() entries.
type OutputAllocator interface {
	Allocate(shape Shape) ([]string, error)
}

// StringTensor is an in-memory Input for hosts without a tensor framework.
type StringTensor struct {
	shape Shape
	data  []string
}

// NewStringTensor wraps a flat row-major string slice with a shape.
func NewStringTensor(shape Shape, data []string) (*StringTensor, error) {
	if shape.Elems() != int64(len(data)) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, have %d strings",
			ErrInvalidShape, shape, shape.Elems(), len(data))
	}
	return &StringTensor{shape: shape, data: data}, nil
}

// DataType returns TypeString.
func (t *StringTensor) DataType() DataType { return TypeString }

// Shape returns a copy of the tensor's shape.
func (t *StringTensor) Shape() Shape { return append(Shape(nil), t.shape...) }

// Strings returns the flat row-major view of the tensor.
func (t *StringTensor) Strings() []string { return t.data }

// GridBuffer is an OutputAllocator that retains the buffer it allocates, so
// callers can read the result back after Compute.
type GridBuffer struct {
	shape Shape
	data  []string
}

// Allocate sizes the buffer to the target shape. Only one allocation is
// live at a time; a second call replaces the first.
func (g *GridBuffer) Allocate(shape Shape) ([]string, error) {
	n := shape.Elems()
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count for shape %v", ErrInvalidShape, shape)
	}
	g.shape = append(Shape(nil), shape...)
	g.data = make([]string, n)
	return g.data, nil
}

// Shape returns the shape of the last allocation.
func (g *GridBuffer) Shape() Shape { return append(Shape(nil), g.shape...) }

// Strings returns the flat row-major buffer of the last allocation.
func (g *GridBuffer) Strings() []string { return g.data }

// Rows splits the buffer by its trailing dimension, one slice per cell.
func (g *GridBuffer) Rows() [][]string {
	if len(g.shape) == 0 {
		return nil
	}
	width := int(g.shape[len(g.shape)-1])
	cells := 0
	if width > 0 {
		cells = len(g.data) / width
	} else {
		cells = int(Shape(g.shape[:len(g.shape)-1]).Elems())
	}
	rows := make([][]string, cells)
	for i := range rows {
		rows[i] = g.data[i*width : (i+1)*width]
	}
	return rows
}
