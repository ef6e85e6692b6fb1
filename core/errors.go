package core

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for the dispatch engine. Callers branch on these
// with errors.Is; the engine never compares error strings.
var (
	// ErrUndefinedCall indicates no registered override applies to the
	// dynamic argument tuple of a call.
	ErrUndefinedCall = errors.New("openmethods: call is not implemented")

	// ErrAmbiguousCall indicates more than one override applies to a call
	// and none is most specific under the partial order.
	ErrAmbiguousCall = errors.New("openmethods: call is ambiguous")

	// ErrSetupMisuse indicates a programming error in setup or dispatch:
	// dispatch before Update, a nil virtual argument, an override whose
	// parameter types are not reachable from its method's declared virtual
	// parameter types, or a non-concrete class appearing as a dynamic type.
	ErrSetupMisuse = errors.New("openmethods: setup misuse")

	// ErrAlreadySealed names the condition of Register/RegisterSpec being
	// called on a Runtime after Update already ran. Runtime reports that
	// condition as an ErrSetupMisuse-wrapped error and does not return
	// ErrAlreadySealed.
	ErrAlreadySealed = errors.New("openmethods: registry already sealed")

	// ErrNotSealed names the condition of Call being invoked before
	// Update. dispatch.Call reports that condition as an
	// ErrSetupMisuse-wrapped error and does not return ErrNotSealed.
	ErrNotSealed = errors.New("openmethods: dispatch before update")
)

// errUndefined builds the call-site error for method name, matching the
// message shape required by the spec: "this call to 'NAME' is not implemented".
func errUndefined(name string) error {
	return fmt.Errorf("%w: this call to '%s' is not implemented", ErrUndefinedCall, name)
}

// errAmbiguous builds the call-site error for method name, matching the
// message shape required by the spec: "this call to 'NAME' is ambiguous".
func errAmbiguous(name string) error {
	return fmt.Errorf("%w: this call to '%s' is ambiguous", ErrAmbiguousCall, name)
}

// WrapMisuse prefixes err with ErrSetupMisuse's sentinel so callers can
// recognize setup-time programming errors with errors.Is.
func WrapMisuse(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSetupMisuse, fmt.Sprintf(format, args...))
}
