package bundle

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by errors.Is for every malformed-bundle
// error this package produces.
var ErrInvalidFormat = errors.New("invalid bundle format")

// Decoding stages, recorded in FormatError.Stage.
const (
	StageBase64  = "base64"
	StageLZMA    = "lzma"
	StagePayload = "payload"
	StageConfig  = "config"
)

// FormatError describes a bundle that could not be decoded. Stage names
// the decoding step that rejected it.
type FormatError struct {
	Stage  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid bundle (%s): %s: %v", e.Stage, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid bundle (%s): %s", e.Stage, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

// IsInvalidFormat reports whether err came from a bundle that could not
// be decoded.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}
