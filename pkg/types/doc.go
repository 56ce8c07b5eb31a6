// Package types defines the Store interface, the dashboard entity types, the
// fixed storage keys, and the standard errors for FlowTask.
//
// Entities carry the JSON field names of the stored documents; ids and
// timestamps are Unix milliseconds.
package types
