// Package errors provides the structured error type used across rpg-quest.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata. Codes survive wrapping and are mapped onto gRPC status codes at
// the handler boundary with ToGRPCError.
//
// # Basic Usage
//
//	err := errors.NotFound("game not found")
//	err := errors.InvalidArgumentf("unknown attribute: %q", name)
//
// Wrapping keeps the original code:
//
//	if err != nil {
//		return errors.Wrap(err, "failed to load game")
//	}
//
// # Game rule rejections
//
// ItemUnavailable, InvalidAction and NoAttributePoints are recoverable: the
// state that was acted on is left exactly as it was. Check them with
// IsItemUnavailable, IsInvalidAction, IsNoAttributePoints or IsRecoverable.
//
// # Validation
//
// Config structs validate their dependencies with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.GameRepo == nil {
//		vb.RequiredField("GameRepo")
//	}
//	return vb.Build()
package errors
