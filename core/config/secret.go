package config

import "runtime"

// SecretString wraps credential material so it never renders in logs or
// diagnostic output and best-effort clears its backing storage once the
// value is no longer reachable. Go has no destructors, so a finalizer is
// the closest approximation to the zeroize-on-drop container spec.md asks
// for; callers that need a hard guarantee should call Zeroize explicitly
// once the secret is no longer needed.
type SecretString struct {
	bytes []byte
}

func NewSecretString(value string) *SecretString {
	s := &SecretString{bytes: []byte(value)}
	runtime.SetFinalizer(s, func(s *SecretString) { s.Zeroize() })
	return s
}

// Expose returns the underlying secret. Callers must not log or persist
// the result.
func (s *SecretString) Expose() string {
	if s == nil {
		return ""
	}
	return string(s.bytes)
}

func (s *SecretString) IsEmpty() bool {
	return s == nil || len(s.bytes) == 0
}

// Zeroize overwrites the backing bytes in place.
func (s *SecretString) Zeroize() {
	if s == nil {
		return
	}
	for i := range s.bytes {
		s.bytes[i] = 0
	}
}

// String implements fmt.Stringer so accidental fmt.Println/%v calls never
// leak the secret.
func (s *SecretString) String() string {
	return "[REDACTED]"
}

// GoString protects against %#v as well.
func (s *SecretString) GoString() string {
	return "config.SecretString{[REDACTED]}"
}
