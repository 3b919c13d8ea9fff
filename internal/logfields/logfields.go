// Package logfields defines the logging field names used across packages.
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// File is the path of the source file being processed
	File = "file"

	// Decl is the name of a struct declaration
	Decl = "decl"

	// Field is the name of a struct field
	Field = "field"

	// Status is what happened, or would happen, to a field
	Status = "status"

	// Event is a filesystem notification
	Event = "event"

	// Count is a number of items
	Count = "count"
)
