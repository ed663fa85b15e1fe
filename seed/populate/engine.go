package populate

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/identity"
	"github.com/Justin21523/school-library-lms/seed/thesaurus"
	"github.com/Justin21523/school-library-lms/seed/vocab"
)

var ErrNoActiveBorrowers = errors.New("no active borrowers available; check the students/teachers quantities")

const (
	logMsgVocabularyValidated = "built-in vocabularies validated"
	logMsgUsersGenerated      = "users generated"
	logMsgCatalogGenerated    = "catalog records generated"
	logMsgCopiesGenerated     = "copies generated"
	logMsgCirculationDone     = "loans and holds generated"
	logMsgQueuedHoldsSkipped  = "queued holds skipped, no eligible records"
	logMsgClosedLoansSkipped  = "closed loans skipped, no eligible copies"
	logMsgDatasetComplete     = "dataset complete"
	logAttrCount              = "count"
	logAttrTenant             = "tenant"
)

// Logger interface for progress and diagnostics reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Engine generates one tenant's dataset. Create it with NewEngine and use it
// for a single Build call; the random stream it owns is positioned by every
// draw, so reusing an Engine would continue mid-stream.
type Engine struct {
	cfg    seed.Config
	stream *identity.Stream
	derive identity.Deriver
	text   vocab.TextProvider
	logger Logger
	now    time.Time

	locMain      uuid.UUID
	locBranch    uuid.UUID
	locClassroom uuid.UUID
	locStorage   uuid.UUID
	adminID      uuid.UUID
	librarianID  uuid.UUID

	nameTerms map[string]struct{}
	borrowers []seed.User
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

// WithLogger sets the logger for the Engine.
func WithLogger(logger Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithTextProvider overrides the text provider that would otherwise be
// built from the configuration. Mainly useful for tests.
func WithTextProvider(provider vocab.TextProvider) Option {
	return func(e *Engine) error {
		e.text = provider
		return nil
	}
}

// NewEngine validates the configuration and assembles an Engine. A
// configuration selecting the unwired model text provider fails here.
func NewEngine(cfg seed.Config, options ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		stream:    identity.NewStream(cfg.Seed),
		derive:    identity.NewDeriver(cfg.TenantSlug),
		now:       cfg.ReferenceTime.UTC(),
		nameTerms: make(map[string]struct{}),
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	if e.text == nil {
		provider, err := vocab.NewProvider(cfg.TextProvider, e.stream)
		if err != nil {
			return nil, err
		}
		e.text = provider
	}

	return e, nil
}

// Build runs every generation stage and returns the complete dataset.
// It fails without partial output on any violated precondition.
func (e *Engine) Build() (*seed.Dataset, error) {
	if err := thesaurus.ValidateAll(vocab.Builtin()); err != nil {
		return nil, err
	}
	e.logDebug(logMsgVocabularyValidated)

	ds := &seed.Dataset{}

	e.buildTenant(ds)
	e.buildLocations(ds)
	e.buildUsers(ds)
	e.logDebug(logMsgUsersGenerated, logAttrCount, len(ds.Users))

	if err := e.buildCredentials(ds); err != nil {
		return nil, err
	}

	e.buildCatalog(ds)
	e.logDebug(logMsgCatalogGenerated, logAttrCount, len(ds.CatalogRecords))

	e.buildAuthority(ds)
	e.buildCopies(ds)
	e.logDebug(logMsgCopiesGenerated, logAttrCount, len(ds.Copies))

	if err := e.assignStatuses(ds); err != nil {
		return nil, err
	}

	e.buildPolicies(ds)

	if err := e.buildLoans(ds); err != nil {
		return nil, err
	}
	e.buildHolds(ds)
	e.logDebug(logMsgCirculationDone, "loans", len(ds.Loans), "holds", len(ds.Holds))

	e.buildInventory(ds)
	e.buildAudit(ds)

	e.logInfo(logMsgDatasetComplete, logAttrTenant, e.cfg.TenantSlug,
		"users", len(ds.Users), "records", len(ds.CatalogRecords), "copies", len(ds.Copies))

	return ds, nil
}

func (e *Engine) buildTenant(ds *seed.Dataset) {
	ds.Tenant = seed.Tenant{
		ID:   e.derive.TenantID(),
		Name: e.cfg.TenantName,
		Code: e.cfg.TenantSlug,
	}
}

// termID derives the identifier of one authority term. The discriminator
// embeds kind, vocabulary and label so the same label in two kinds stays
// two distinct terms.
func (e *Engine) termID(kind, vocabularyCode, label string) uuid.UUID {
	return e.derive.ID("authority", kind+":"+vocabularyCode+":"+label)
}

// daysBack returns the reference time shifted n days into the past.
func (e *Engine) daysBack(n int) time.Time {
	return e.now.Add(-time.Duration(n) * 24 * time.Hour)
}

func (e *Engine) logDebug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}

func (e *Engine) logInfo(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Info(msg, args...)
	}
}

func (e *Engine) logWarn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}

func ptr[T any](v T) *T {
	return &v
}
