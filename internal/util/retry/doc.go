// Package retry provides exponential backoff for transient cloud API
// failures. Errors wrapped with Fatal are returned immediately without
// further attempts.
package retry
