package seed

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var ErrInvalidTenantSlug = errors.New("tenant slug must be lowercase letters/digits/dash, 2..63 chars")
var ErrQuantityOutOfRange = errors.New("quantity out of range")
var ErrInvalidTextProvider = errors.New("unknown text provider selection")
var ErrMissingReferenceTime = errors.New("reference time must be set")

// Text provider selection values for Config.TextProvider.
const (
	TextProviderRules = "rules"
	TextProviderModel = "model"
)

// The slug ends up inside SQL statements (DELETE ... WHERE code = '...'),
// so its format is restricted before anything else happens.
var tenantSlugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

// Config is the fully validated input of one generation run. The core never
// reads the environment or files itself; the caller (cmd/seedscale) parses
// whatever surface it owns and hands over a value that passed Validate.
type Config struct {
	// TenantSlug is the uniqueness boundary: re-loading the same slug
	// replaces the whole tenant.
	TenantSlug string
	TenantName string

	// Seed drives the single random stream; identical (Seed, TenantSlug,
	// quantities, ReferenceTime) reproduce byte-identical output.
	Seed int64

	// TextProvider selects the vocabulary provider variant.
	TextProvider string

	// Password is the shared demo password for the few login-enabled users.
	Password string

	// ReferenceTime anchors every generated timestamp. It is part of the
	// reproducibility contract, so it is explicit instead of time.Now.
	ReferenceTime time.Time

	Students           int
	Teachers           int
	CatalogRecords     int
	MaxCopiesPerRecord int
	OpenLoans          int
	ClosedLoans        int
	ReadyHolds         int
	QueuedHolds        int
	InventorySessions  int
	ScansPerSession    int
	AuditEvents        int
}

// Validate checks everything that can be checked without generating data.
// Cross-entity conditions (e.g. more open loans requested than copies exist)
// are checked by the population engine once the copy count is known.
func (c Config) Validate() error {
	if !tenantSlugPattern.MatchString(c.TenantSlug) {
		return fmt.Errorf("%w, got: %q", ErrInvalidTenantSlug, c.TenantSlug)
	}

	if c.TextProvider != TextProviderRules && c.TextProvider != TextProviderModel {
		return fmt.Errorf("%w: must be %q or %q, got: %q",
			ErrInvalidTextProvider, TextProviderRules, TextProviderModel, c.TextProvider)
	}

	if c.ReferenceTime.IsZero() {
		return ErrMissingReferenceTime
	}

	if c.MaxCopiesPerRecord < 1 || c.MaxCopiesPerRecord > 10 {
		return fmt.Errorf("%w: max copies per record must be 1..10, got: %d",
			ErrQuantityOutOfRange, c.MaxCopiesPerRecord)
	}

	nonNegative := []struct {
		name  string
		value int
	}{
		{"students", c.Students},
		{"teachers", c.Teachers},
		{"catalog records", c.CatalogRecords},
		{"open loans", c.OpenLoans},
		{"closed loans", c.ClosedLoans},
		{"ready holds", c.ReadyHolds},
		{"queued holds", c.QueuedHolds},
		{"inventory sessions", c.InventorySessions},
		{"scans per session", c.ScansPerSession},
		{"audit events", c.AuditEvents},
	}

	for _, q := range nonNegative {
		if q.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got: %d", ErrQuantityOutOfRange, q.name, q.value)
		}
	}

	return nil
}
