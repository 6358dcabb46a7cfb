package yoloseg

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Prototype is an immutable view over the shared [1, 160, 160, 32]
// prototype tensor. It is valid for the duration of one inference call and
// shared by every candidate in that call; nothing ever writes through it.
type Prototype struct {
	data []float32
}

// NewPrototype wraps a flattened NHWC prototype buffer of exactly
// ProtoHeight*ProtoWidth*ProtoChannels floats.
func NewPrototype(data []float32) (*Prototype, error) {
	want := ProtoHeight * ProtoWidth * ProtoChannels
	if len(data) != want {
		return nil, errors.Errorf("prototype buffer holds %d floats, expected %d", len(data), want)
	}
	return &Prototype{data: data}, nil
}

// PrototypeFromTensor adapts a gorgonia dense tensor of shape
// (160, 160, 32) or (1, 160, 160, 32) with float32 backing.
func PrototypeFromTensor(t *tensor.Dense) (*Prototype, error) {
	shape := t.Shape()
	dims := []int(shape)
	if len(dims) == 4 && dims[0] == 1 {
		dims = dims[1:]
	}
	if len(dims) != 3 || dims[0] != ProtoHeight || dims[1] != ProtoWidth || dims[2] != ProtoChannels {
		return nil, errors.Errorf("prototype tensor has shape %v, expected (%d, %d, %d)",
			shape, ProtoHeight, ProtoWidth, ProtoChannels)
	}

	data, ok := t.Data().([]float32)
	if !ok {
		return nil, errors.Errorf("prototype tensor backing is %T, expected []float32", t.Data())
	}
	return NewPrototype(data)
}

// At returns basis channel c at mask-space pixel (x, y). No bounds checks;
// callers iterate clamped regions only.
func (p *Prototype) At(x, y, c int) float32 {
	return p.data[(y*ProtoWidth+x)*ProtoChannels+c]
}
