// Package diagnostic collects structured errors, warnings and notes produced
// while compiling a MIDS mapping into an engine.
//
// Every diagnostic carries a stable code, the mapping subject and source
// line it relates to, optional "did you mean" suggestions and, for errors,
// the underlying cause so callers can test it with errors.Is.
package diagnostic
