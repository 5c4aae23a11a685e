// Package collect gathers external and I/O-adjacent signals for an
// audit: load performance (optionally via the Lighthouse CLI), mobile
// friendliness, search index presence, transport security, social
// integration, and readability formula metrics.
//
// Collectors run concurrently and tolerate partial failure: a collector
// that errors leaves its signal at the zero value and the audit
// continues.
package collect
