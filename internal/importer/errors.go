package importer

import "errors"

var (
	ErrFormat            = errors.New("importer: invalid definition format")
	ErrUnsupportedFormat = errors.New("importer: unsupported file format")
	ErrReadFile          = errors.New("importer: failed to read file")
	ErrStore             = errors.New("importer: failed to store definition")
)
