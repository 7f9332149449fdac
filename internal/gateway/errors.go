package gateway

import "fmt"

// NetworkError means the request never completed: dial failure, timeout,
// connection reset. The backend may or may not have seen the request.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is any non-2xx status, regardless of body content.
type HTTPError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

// MalformedResponseError is a 2xx response whose body does not decode into
// the expected shape.
type MalformedResponseError struct {
	Op  string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response body: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ApplicationError is a 2xx response whose body explicitly signals failure,
// e.g. a payment result with status "failed".
type ApplicationError struct {
	Op      string
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: rejected by backend", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
