package eckey

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kochabx/vapid/core/tag"
)

// File modes for written containers
const (
	privateFileMode os.FileMode = 0o600
	publicFileMode  os.FileMode = 0o644
)

// KeyOption contains options for container file output.
type KeyOption struct {
	Dirpath            string `json:"dirpath" default:"."`
	PrivateKeyFilename string `json:"private_key_filename" default:"private.pem"`
	PublicKeyFilename  string `json:"public_key_filename" default:"public.pem"`
}

// WithDirpath sets the directory path for key file operations.
func WithDirpath(dirpath string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.Dirpath = dirpath
	}
}

// WithPrivateKeyFilename sets the filename for the private key.
func WithPrivateKeyFilename(filename string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.PrivateKeyFilename = filename
	}
}

// WithPublicKeyFilename sets the filename for the public key.
func WithPublicKeyFilename(filename string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.PublicKeyFilename = filename
	}
}

// WriteContainers writes the given containers into the configured directory
// and returns the paths written. Either container may be nil.
func WriteContainers(private, public *Container, opts ...func(*KeyOption)) ([]string, error) {
	option := &KeyOption{}
	if err := tag.ApplyDefaults(option); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	for _, opt := range opts {
		opt(option)
	}

	var written []string
	if private != nil {
		path := filepath.Join(option.Dirpath, option.PrivateKeyFilename)
		if err := SaveContainer(private, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if public != nil {
		path := filepath.Join(option.Dirpath, option.PublicKeyFilename)
		if err := SaveContainer(public, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// SaveContainer writes c to path in PEM format. Private containers are
// written with mode 0600.
func SaveContainer(c *Container, path string) error {
	if c == nil {
		return ErrInvalidPEMBlock
	}

	mode := publicFileMode
	if c.IsPrivate() {
		mode = privateFileMode
	}

	if err := os.WriteFile(path, c.PEM(), mode); err != nil {
		return ErrKeyFile.WithCause(err).WithMetadata(map[string]string{"path": path})
	}
	return nil
}

// LoadContainer reads the first PEM block from path.
func LoadContainer(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrKeyFile.WithCause(err).WithMetadata(map[string]string{"path": path})
	}
	return ParseContainer(data)
}
