package importer

import "fmt"

// InstallError is a workspace store rejecting an install. Bundle
// decoding problems are bundle.FormatErrors, not InstallErrors.
type InstallError struct {
	// Name is the project the store rejected.
	Name string

	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing project %q: %v", e.Name, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }
