package errors

import (
	"fmt"

	"dub-translator/pkg/errors/i18n"
)

type DubbingError struct {
	Code    string
	Message string
	Status  int // upstream HTTP durumu, yoksa 0
	Err     error
}

func (e *DubbingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DubbingError) Unwrap() error {
	return e.Err
}

const (
	CodeMissingAudio    = "missing_audio"
	CodeInvalidLanguage = "invalid_language"
	CodeInvalidFormat   = "invalid_format"
	CodeNotFound        = "not_found"
	CodeUpstream        = "upstream_error"
	CodeUploadFailed    = "upload_failed"
	CodeInternal        = "internal_error"
)

func newError(code string, status int, err error) *DubbingError {
	return &DubbingError{Code: code, Message: i18n.T(code), Status: status, Err: err}
}

var (
	ErrMissingAudio = func(err error) *DubbingError {
		return newError(CodeMissingAudio, 0, err)
	}
	ErrInvalidLanguage = func(err error) *DubbingError {
		return newError(CodeInvalidLanguage, 0, err)
	}
	ErrInvalidFormat = func(err error) *DubbingError {
		return newError(CodeInvalidFormat, 0, err)
	}
	ErrNotFound = func(err error) *DubbingError {
		return newError(CodeNotFound, 0, err)
	}
	ErrUpstream = func(status int, err error) *DubbingError {
		return newError(CodeUpstream, status, err)
	}
	ErrUploadFailed = func(status int, err error) *DubbingError {
		return newError(CodeUploadFailed, status, err)
	}
	ErrInternal = func(err error) *DubbingError {
		return newError(CodeInternal, 0, err)
	}
)
