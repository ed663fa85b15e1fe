// Package seed provides the shared types for the scale-seed generator:
// the validated run configuration, the generated entity structs, and the
// Dataset container that the population engine produces and the export and
// load layers consume.
//
// Everything the generator emits belongs to exactly one tenant
// (organization), and every identifier is derived deterministically from
// (namespace, tenant slug, entity kind, discriminator). Re-running the
// generator with the same configuration therefore reproduces an identical
// dataset, which is the cornerstone invariant of the whole tool.
//
// The packages build on each other in one direction:
//
//	seed/identity -> seed/vocab -> seed/thesaurus -> seed/populate -> seed/export, seed/loadengine
package seed
