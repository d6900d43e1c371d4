package models

import (
	"errors"
	"fmt"
)

// Error codes are stable and part of the API contract.
const (
	// Validation
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeUnknownTool       = "UNKNOWN_TOOL"
	CodeToolNotAllowed    = "TOOL_NOT_ALLOWED"
	CodeInvalidTransition = "INVALID_TRANSITION"

	// Authorization / quota
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	CodeRateLimited         = "RATE_LIMITED"

	// Planning / decision
	CodePlanningFailed = "PLANNING_FAILED"
	CodeDecisionFailed = "DECISION_FAILED"
	CodePlanInvalid    = "PLAN_INVALID"

	// Execution
	CodeToolTimeout      = "TOOL_TIMEOUT"
	CodeToolFailed       = "TOOL_FAILED"
	CodeHandlerException = "HANDLER_EXCEPTION"

	// Provider
	CodeAllModelsFailed     = "ALL_MODELS_FAILED"
	CodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	CodeProviderRateLimited = "PROVIDER_RATE_LIMITED"

	// Lifecycle
	CodeLeaseExpired         = "LEASE_EXPIRED"
	CodeLeaseExpiredExceeded = "LEASE_EXPIRED_EXCEEDED"
	CodeConcurrentUpdate     = "CONCURRENT_UPDATE"
	CodeRunTimeout           = "RUN_TIMEOUT"
)

// AgentError is the structured error carried on runs, steps, and API
// responses. Recoverable errors are retried with backoff; non-recoverable
// errors propagate to the supervisor.
type AgentError struct {
	Code         string         `json:"code"`
	Message      string         `json:"message"`
	Recoverable  bool           `json:"recoverable"`
	RetryAfterMS int64          `json:"retry_after_ms,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *AgentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAgentError creates a non-recoverable error with the given code.
func NewAgentError(code, message string) *AgentError {
	return &AgentError{Code: code, Message: message}
}

// NewRecoverableError creates a recoverable error with the given code.
func NewRecoverableError(code, message string) *AgentError {
	return &AgentError{Code: code, Message: message, Recoverable: true}
}

// Errorf creates a non-recoverable error with a formatted message.
func Errorf(code, format string, args ...any) *AgentError {
	return &AgentError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsAgentError normalizes any error to an *AgentError. Errors that are not
// already structured become non-recoverable TOOL_FAILED.
func AsAgentError(err error) *AgentError {
	if err == nil {
		return nil
	}
	var ae *AgentError
	if errors.As(err, &ae) {
		return ae
	}
	return &AgentError{Code: CodeToolFailed, Message: err.Error()}
}

// ToMap converts the error to the generic map shape stored in JSON columns.
func (e *AgentError) ToMap() map[string]interface{} {
	if e == nil {
		return nil
	}
	m := map[string]interface{}{
		"code":        e.Code,
		"message":     e.Message,
		"recoverable": e.Recoverable,
	}
	if e.RetryAfterMS > 0 {
		m["retry_after_ms"] = e.RetryAfterMS
	}
	if len(e.Details) > 0 {
		m["details"] = e.Details
	}
	return m
}
