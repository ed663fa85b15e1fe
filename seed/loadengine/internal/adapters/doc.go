// Package adapters wraps the supported database libraries behind one small
// transactional interface so the loader core stays library-agnostic.
package adapters
