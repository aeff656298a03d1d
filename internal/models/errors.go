package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrPackageParse ErrorType = iota
	ErrInvalidArgument
	ErrSigning
	ErrFileOp
	ErrInvalidConfig
	ErrCatalogRead
	ErrCatalogWrite
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrPackageParse:
		return "PackageParse"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrSigning:
		return "Signing"
	case ErrFileOp:
		return "FileOp"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrCatalogRead:
		return "CatalogRead"
	case ErrCatalogWrite:
		return "CatalogWrite"
	default:
		return "Unknown"
	}
}

// CatalogError represents an error while building or querying the package catalog
type CatalogError struct {
	Type    ErrorType
	Package string
	Err     error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Package, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// IsErrorType reports whether err wraps a CatalogError of the given type
func IsErrorType(err error, t ErrorType) bool {
	var ce *CatalogError
	return errors.As(err, &ce) && ce.Type == t
}
