package eckey

import (
	"encoding/pem"
	"slices"
)

// Container is a DER payload together with its PEM label.
type Container struct {
	Type  string
	Bytes []byte
}

// Block returns the container as a pem.Block.
func (c *Container) Block() *pem.Block {
	return &pem.Block{
		Type:  c.Type,
		Bytes: c.Bytes,
	}
}

// PEM returns the textual form: header line, base64 body wrapped at
// 64 columns, footer line.
func (c *Container) PEM() []byte {
	return pem.EncodeToMemory(c.Block())
}

// String implements fmt.Stringer with the PEM text.
func (c *Container) String() string {
	return string(c.PEM())
}

// IsPrivate reports whether the container holds private key material.
func (c *Container) IsPrivate() bool {
	return c.Type == PrivateKeyLabel
}

// ParseContainer decodes the first PEM block in data.
func ParseContainer(data []byte) (*Container, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	return &Container{
		Type:  block.Type,
		Bytes: slices.Clone(block.Bytes),
	}, nil
}
