package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason narrows a Code down to the domain rule that was violated.
// Callers branch on the reason to decide what to tell the player.
type Reason string

// Domain reasons
const (
	ReasonNone                Reason = ""
	ReasonAlreadyInBattle     Reason = "ALREADY_IN_BATTLE"
	ReasonNotInBattle         Reason = "NOT_IN_BATTLE"
	ReasonCharacterDead       Reason = "CHARACTER_DEAD"
	ReasonCharacterAlive      Reason = "CHARACTER_ALIVE"
	ReasonMonsterTooStrong    Reason = "MONSTER_TOO_STRONG"
	ReasonClassAlreadyChosen  Reason = "CLASS_ALREADY_CHOSEN"
	ReasonPoolDisabled        Reason = "POOL_DISABLED"
	ReasonDailyCapExceeded    Reason = "DAILY_CAP_EXCEEDED"
	ReasonPoolExhausted       Reason = "POOL_EXHAUSTED"
	ReasonAlreadyClaimedToday Reason = "ALREADY_CLAIMED_TODAY"
	ReasonInsufficientFunds   Reason = "INSUFFICIENT_FUNDS"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}
