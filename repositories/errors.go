package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no document. An id that does
// not parse as an ObjectID is reported the same way.
var ErrNotFound = errors.New("not found")

// sanitizeFields drops the identity field from a merge-patch so an update can
// never rewrite a document's _id, regardless of what the caller supplied.
func sanitizeFields(fields map[string]interface{}) map[string]interface{} {
	delete(fields, "_id")
	return fields
}
