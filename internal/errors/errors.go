package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, reason, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Reason  Reason                 `json:"reason,omitempty"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on code, and on reason when the target carries one
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if !errors.As(target, &targetErr) {
		return false
	}
	if e.Code != targetErr.Code {
		return false
	}
	return targetErr.Reason == ReasonNone || e.Reason == targetErr.Reason
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewWithReason creates an error for a violated domain rule
func NewWithReason(code Code, reason Reason, message string) *Error {
	return &Error{
		Code:    code,
		Reason:  reason,
		Message: message,
	}
}

// Wrap wraps an existing error, preserving its code and reason if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Reason:  existingErr.Reason,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// PermissionDenied creates a permission denied error
func PermissionDenied(message string) *Error {
	return New(CodePermissionDenied, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Domain constructors. Each one pairs the gRPC-style code a transport would
// surface with the reason the game logic branches on.

// AlreadyInBattle is returned when a battle is started while one is running
func AlreadyInBattle() *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonAlreadyInBattle, "character is already in battle")
}

// NotInBattle is returned for battle actions outside a battle
func NotInBattle() *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonNotInBattle, "character is not in battle")
}

// CharacterDead is returned when a dead character tries to fight
func CharacterDead() *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonCharacterDead, "character is dead")
}

// CharacterAlive is returned when reviving a living character
func CharacterAlive() *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonCharacterAlive, "character is still alive")
}

// MonsterTooStrong is returned when the level gap is too wide
func MonsterTooStrong(characterLevel, required int) *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonMonsterTooStrong,
		fmt.Sprintf("monster is too strong: level %d, need at least %d", characterLevel, required)).
		WithMeta("character_level", characterLevel).
		WithMeta("required_level", required)
}

// ClassAlreadyChosen is returned when a class is selected twice
func ClassAlreadyChosen() *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonClassAlreadyChosen, "class has already been chosen")
}

// PoolDisabled is returned when the reward pool is switched off
func PoolDisabled() *Error {
	return NewWithReason(CodeUnavailable, ReasonPoolDisabled, "reward pool is disabled")
}

// DailyCapExceeded is returned when an amount would overrun today's cap
func DailyCapExceeded(remainingToday int64) *Error {
	return NewWithReason(CodeResourceExhausted, ReasonDailyCapExceeded,
		fmt.Sprintf("daily cap reached: %d coins left today", remainingToday)).
		WithMeta("remaining_today", remainingToday)
}

// PoolExhausted is returned when the pool cannot cover an amount
func PoolExhausted(totalRemaining int64) *Error {
	return NewWithReason(CodeResourceExhausted, ReasonPoolExhausted,
		fmt.Sprintf("reward pool exhausted: %d coins left", totalRemaining)).
		WithMeta("total_remaining", totalRemaining)
}

// AlreadyClaimedToday is returned for a second daily claim on the same day
func AlreadyClaimedToday() *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonAlreadyClaimedToday, "daily bonus already claimed today")
}

// InsufficientFunds is returned when the balance cannot cover a cost
func InsufficientFunds(cost, balance int64) *Error {
	return NewWithReason(CodeFailedPrecondition, ReasonInsufficientFunds,
		fmt.Sprintf("insufficient funds: need %d, have %d", cost, balance)).
		WithMeta("cost", cost).
		WithMeta("balance", balance)
}
