// Package auth provides the authentication service client, form validation,
// and session token helpers.
//
// # Overview
//
// The package wraps the dummyjson-style auth HTTP service used for login and
// registration, normalizes its responses into the User type, and validates
// form input before any network traffic.
//
// # Endpoints
//
//   - POST /auth/login: Authenticate with username/password, returns the
//     user fields plus a session token (accessToken on newer API versions,
//     token on older ones; both are normalized to User.Token)
//   - POST /users/add: Registration stand-in; returns user fields but no
//     session token
//   - GET /auth/me: Revalidate a bearer token
//
// # Error Policy
//
// Auth failures are user-visible by design, the opposite of the tmdb
// package's silent degradation. HTTP error responses surface the message
// from the error body when present, otherwise a generic per-operation
// message. Transport failures surface a generic network message, with the
// wrapped cause logged.
//
// # Validation
//
// Credentials.Validate and Registration.Validate run before any request and
// report the first malformed field as a ValidationError. Thresholds: username
// at least 3 characters after trimming, password at least 6, registration
// additionally requires names, a plausible email, and a matching
// confirmation.
//
// # Stub Tokens
//
// The registration endpoint does not issue a session token, so Register
// synthesizes one with NewStubToken: a "streambox-stub-" prefix, the current
// unix timestamp, and a UUID. IsStubToken identifies these everywhere
// downstream; the profile view labels such sessions as demo sessions and
// VerifyToken refuses to send them as bearer credentials. The stub is a
// deliberately flagged mock, not a security mechanism.
//
// # Token Expiry
//
// TokenExpiry parses the expiry claim out of JWT session tokens without
// signature verification, for display on the profile screen only. Non-JWT
// tokens (stubs included) yield the zero time.
package auth
