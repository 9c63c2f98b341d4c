// Package errors provides the error handling solution for the sheet-api project.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - User-friendly error messages with HTTP status mapping
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.UnsupportedDiceKindf("unsupported dice kind: %s", kind)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("owner", owner)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get session")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateMin("level", int(input.Level), 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found (no character, no token)
//   - InvalidArgument: Invalid field or enum value supplied to a mutation
//   - AlreadyExists: Resource already exists (soulbound token already minted)
//   - FailedPrecondition: Operation requirements not met (roll already in flight)
//   - UnsupportedDiceKind: Dice kind outside d4/d6/d20
//   - TransactionFailed: External chain client reported a failed or rejected transaction
//   - CodecLoss: Informational; documents fields the token metadata round trip discards
//   - Internal: Internal server error
//   - Unavailable: Dependency temporarily unavailable
package errors
