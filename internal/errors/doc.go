// Package errors provides the structured error type shared by every layer of
// rpg-battle.
//
// An Error carries a Code (the broad category a transport would surface), an
// optional Reason (the game rule that was violated) and a user-facing Message.
// Hitting a pool cap or acting outside a battle is an ordinary outcome, so the
// battle and daily orchestrators return these errors instead of panicking and
// the caller decides how to present them.
//
// # Basic Usage
//
//	err := errors.NotFoundf("monster %d not found", id)
//	err := errors.DailyCapExceeded(remaining)
//
// Checking the rule that failed:
//
//	if errors.HasReason(err, errors.ReasonPoolExhausted) {
//	    // tell the player the pool is empty
//	}
//
// Matching with the standard library also works; a target without a reason
// matches any error with the same code:
//
//	errors.Is(err, errors.NotInBattle())
//
// Wrapping keeps both code and reason:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// # Validation Errors
//
// Config structs validate their dependencies with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Pool == nil {
//	    vb.RequiredField("Pool")
//	}
//	return vb.Build()
package errors
