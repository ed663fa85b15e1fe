package seed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justin21523/school-library-lms/seed"
)

func validConfig() seed.Config {
	return seed.Config{
		TenantSlug:         "demo-lms-scale",
		TenantName:         "示範國小（大型資料集）",
		Seed:               42,
		TextProvider:       seed.TextProviderRules,
		Password:           "demo1234",
		ReferenceTime:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Students:           100,
		Teachers:           10,
		CatalogRecords:     50,
		MaxCopiesPerRecord: 3,
		OpenLoans:          20,
		ClosedLoans:        40,
		ReadyHolds:         5,
		QueuedHolds:        10,
		InventorySessions:  1,
		ScansPerSession:    10,
		AuditEvents:        25,
	}
}

func Test_Config_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *seed.Config)
		expectedErr error
	}{
		{
			name:        "valid_config_passes",
			mutate:      func(_ *seed.Config) {},
			expectedErr: nil,
		},
		{
			name:        "uppercase_slug_rejected",
			mutate:      func(c *seed.Config) { c.TenantSlug = "Demo-LMS" },
			expectedErr: seed.ErrInvalidTenantSlug,
		},
		{
			name:        "empty_slug_rejected",
			mutate:      func(c *seed.Config) { c.TenantSlug = "" },
			expectedErr: seed.ErrInvalidTenantSlug,
		},
		{
			name:        "slug_with_quote_rejected",
			mutate:      func(c *seed.Config) { c.TenantSlug = "demo'; drop--" },
			expectedErr: seed.ErrInvalidTenantSlug,
		},
		{
			name:        "unknown_text_provider_rejected",
			mutate:      func(c *seed.Config) { c.TextProvider = "llm" },
			expectedErr: seed.ErrInvalidTextProvider,
		},
		{
			name:        "zero_reference_time_rejected",
			mutate:      func(c *seed.Config) { c.ReferenceTime = time.Time{} },
			expectedErr: seed.ErrMissingReferenceTime,
		},
		{
			name:        "zero_max_copies_rejected",
			mutate:      func(c *seed.Config) { c.MaxCopiesPerRecord = 0 },
			expectedErr: seed.ErrQuantityOutOfRange,
		},
		{
			name:        "max_copies_above_ten_rejected",
			mutate:      func(c *seed.Config) { c.MaxCopiesPerRecord = 11 },
			expectedErr: seed.ErrQuantityOutOfRange,
		},
		{
			name:        "negative_students_rejected",
			mutate:      func(c *seed.Config) { c.Students = -1 },
			expectedErr: seed.ErrQuantityOutOfRange,
		},
		{
			name:        "negative_audit_events_rejected",
			mutate:      func(c *seed.Config) { c.AuditEvents = -5 },
			expectedErr: seed.ErrQuantityOutOfRange,
		},
		{
			name:        "zero_quantities_allowed",
			mutate:      func(c *seed.Config) { c.Students = 0; c.OpenLoans = 0; c.AuditEvents = 0 },
			expectedErr: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()

			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func Test_Credentials_KnownVectors(t *testing.T) {
	salt := seed.DeterministicSalt(42)
	assert.Equal(t, "pw/U7+wRoXqY1mwhlVRfnQ==", salt)

	hash, err := seed.HashPassword("demo1234", salt)
	require.NoError(t, err)
	assert.Equal(t,
		"9FPjvpI4dvvmB/QAtzaOtqNGVImTAc83xFywjtlonIOKH5uwoS3JgnaxppHsnSsfjBzNOqLZ35IOB6ZvTy0MXA==",
		hash)
}

func Test_Credentials_SaltVariesWithSeed(t *testing.T) {
	assert.NotEqual(t, seed.DeterministicSalt(42), seed.DeterministicSalt(43))
}
