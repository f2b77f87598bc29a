package uprail

import "fmt"

// ConfigurationError reports missing or invalid credentials at client
// construction time. It is fatal; the client is never created.
type ConfigurationError struct {
	EnvPath string // path to the .env file that was expected to hold credentials
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"unable to find UP credentials: provide them explicitly or set %s and %s in %s",
		envKeyAccessID, envKeySecretKey, e.EnvPath,
	)
}

// AuthenticationError reports a non-success status from the OAuth token
// exchange. The client never retries automatically: the token service
// rejects rapid re-exchange attempts, so retry policy belongs to the
// caller.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("token request failed: status code %d", e.StatusCode)
}

// ProtocolError reports a success response from the remote service whose
// body does not have the expected form.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed response from UP API: %s", e.Msg)
}

// TransportError reports a non-2xx response from a resource call. The
// response body is carried verbatim for diagnosis. No retry or backoff is
// performed; that policy is left to the caller.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("received unexpected response from UP API %s; status code: %d; response: %s",
		e.URL, e.StatusCode, e.Body)
}
