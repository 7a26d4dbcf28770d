// Package types holds the exchange-agnostic domain model shared by every
// connector: scalars, market/order/account records, subscription
// descriptors, and the closed error taxonomy kernel operations return.
package types

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error variants every kernel operation may
// return. Adapters narrow ApiError further by inspecting Code, but never
// introduce new Kind values.
type Kind int

const (
	KindAuth Kind = iota
	KindNetwork
	KindAPI
	KindInvalidParameters
	KindOrder
	KindSerialization
	KindDeserialization
	KindWebSocket
	KindRateLimit
	KindConfiguration
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "AuthError"
	case KindNetwork:
		return "NetworkError"
	case KindAPI:
		return "ApiError"
	case KindInvalidParameters:
		return "InvalidParameters"
	case KindOrder:
		return "OrderError"
	case KindSerialization:
		return "SerializationError"
	case KindDeserialization:
		return "DeserializationError"
	case KindWebSocket:
		return "WebSocketError"
	case KindRateLimit:
		return "RateLimitError"
	case KindConfiguration:
		return "ConfigurationError"
	default:
		return "Other"
	}
}

// KernelError is the single error type every kernel operation returns.
// Code is only populated for KindAPI, carrying the venue's raw status/body
// so adapters can reclassify without the kernel interpreting exchange
// semantics (see spec Open Question on ApiError.code representation).
type KernelError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *KernelError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (code=%s)", e.Kind, e.Message, e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *KernelError) Unwrap() error { return e.Err }

func newErr(kind Kind, msg string) *KernelError {
	return &KernelError{Kind: kind, Message: msg}
}

func NewAuthError(msg string) *KernelError                  { return newErr(KindAuth, msg) }
func NewInvalidParameters(msg string) *KernelError          { return newErr(KindInvalidParameters, msg) }
func NewOrderError(msg string) *KernelError                 { return newErr(KindOrder, msg) }
func NewSerializationError(msg string) *KernelError         { return newErr(KindSerialization, msg) }
func NewDeserializationError(msg string) *KernelError       { return newErr(KindDeserialization, msg) }
func NewWebSocketError(msg string) *KernelError             { return newErr(KindWebSocket, msg) }
func NewRateLimitError(msg string) *KernelError             { return newErr(KindRateLimit, msg) }
func NewConfigurationError(msg string) *KernelError         { return newErr(KindConfiguration, msg) }
func NewOtherError(msg string) *KernelError                 { return newErr(KindOther, msg) }

func NewNetworkError(msg string, cause error) *KernelError {
	return &KernelError{Kind: KindNetwork, Message: msg, Err: cause}
}

func NewAPIError(code, body string) *KernelError {
	return &KernelError{Kind: KindAPI, Code: code, Message: body}
}

// IsRecoverable classifies an error per the retry/fatal policy: transport
// and advisory failures are recoverable and may be retried by the caller;
// authentication, malformed-input, and configuration failures are fatal.
func IsRecoverable(err error) bool {
	var ke *KernelError
	if !errors.As(err, &ke) {
		return false
	}
	switch ke.Kind {
	case KindNetwork, KindRateLimit, KindWebSocket:
		return true
	default:
		return false
	}
}

// KindOf reports the Kind of err, or KindOther if err is not a *KernelError.
func KindOf(err error) Kind {
	var ke *KernelError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	return KindOther
}
