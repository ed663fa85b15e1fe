// Package identity is the leaf dependency of the generator: content-addressed
// identifier derivation and the seeded random stream everything else draws
// from.
package identity

import (
	"github.com/google/uuid"
)

// Namespace is the fixed UUIDv5 namespace for every derived identifier.
// Changing it changes every identifier the generator has ever produced, so
// it never changes.
var Namespace = uuid.MustParse("7b4a3b9d-9a55-4f03-9d9e-7d9edb1c5f6b")

// DeriveID returns the UUIDv5 of name under Namespace. It is a pure
// function: the same name yields the same identifier across processes and
// machines, which is what makes tenant reloads idempotent.
func DeriveID(name string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(name))
}

// Deriver derives identifiers scoped to one tenant slug.
type Deriver struct {
	slug string
}

// NewDeriver creates a Deriver for the given tenant slug.
func NewDeriver(slug string) Deriver {
	return Deriver{slug: slug}
}

// TenantID returns the tenant's own identifier.
func (d Deriver) TenantID() uuid.UUID {
	return DeriveID("org:" + d.slug)
}

// ID derives the identifier for one entity of the given kind. The
// discriminator must be unique within (slug, kind).
func (d Deriver) ID(kind, discriminator string) uuid.UUID {
	return DeriveID(d.slug + ":" + kind + ":" + discriminator)
}
