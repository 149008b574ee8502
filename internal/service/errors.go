package service

import (
	"errors"
	"fmt"
)

// Deterministic input-data errors. None of these are retried — they are
// surfaced verbatim so the operator can correct the source data.
var (
	ErrNotFound      = errors.New("data tidak ditemukan")
	ErrDuplicateCode = errors.New("kode emas sudah digunakan")
	ErrDuplicateNIK  = errors.New("NIK sudah terdaftar")
)

// ValidationError reports a malformed or missing field, rejected before
// any write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// MissingKadarError aborts an entire nota compile: the named product has no
// kadar (purity label) and must be completed in the catalog first.
type MissingKadarError struct {
	ProductName string
}

func (e *MissingKadarError) Error() string {
	return fmt.Sprintf("produk %q tidak memiliki kadar emas; lengkapi data produk terlebih dahulu", e.ProductName)
}
