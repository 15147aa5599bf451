// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every kind pairs a sentinel with a struct carrying the details:
//
//	ErrValueIsRequired     ValueIsRequiredError
//	ErrValueIsInvalid      ValueIsInvalidError
//	ErrValueIsOutOfRange   ValueIsOutOfRangeError
//	ErrObjectNotFound      ObjectNotFoundError
//	ErrObjectAlreadyExists ObjectAlreadyExistsError
//	ErrAccessDenied        AccessDeniedError
//	ErrVersionIsInvalid    VersionIsInvalidError
//
// The structs unwrap to their sentinel, so callers classify with errors.Is
// even through errors.Join and fmt.Errorf("%w"). The HTTP adapter maps the
// sentinels to status codes.
package errs
