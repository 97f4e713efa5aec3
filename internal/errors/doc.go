// Package errors provides a comprehensive error handling solution for the cepheus-dice project.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - Process exit code mapping for command-line use
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("roll log not found")
//	err := errors.InvalidArgumentf("invalid dice expression: %s", expr)
//
// Adding metadata:
//
//	err := errors.NotFound("roll log not found").
//	    WithMeta("owner_id", ownerID).
//	    WithMeta("context", rollContext)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get roll log")
//	}
//
// Changing error semantics:
//
//	if err := dice.Parse(text); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInvalidArgument, err.Error())
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
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repo == nil {
//	    vb.RequiredField("Repo")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Exit Codes
//
// Commands map errors to process exit codes at the very end of a run:
//
//	if err := rootCmd.Execute(); err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
//	    os.Exit(errors.ExitCode(err))
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Command layer:
//   - Extract user-friendly messages
//   - Map errors to exit codes
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Entity not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Entity already exists
//   - Internal: Internal error
//   - Unavailable: Store temporarily unavailable
//   - ResourceExhausted: Limit or quota exceeded
//   - FailedPrecondition: Operation requirements not met
//   - OutOfRange: Value out of valid range
//   - Unimplemented: Feature not implemented
//   - Canceled: Operation canceled
//   - DeadlineExceeded: Operation timeout
package errors
