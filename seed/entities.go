package seed

import (
	"time"

	"github.com/google/uuid"
)

// Shared status values for locations and users.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User roles.
const (
	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"
	RoleTeacher   = "teacher"
	RoleStudent   = "student"
)

// Copy statuses. They are mutually exclusive and drive which loan/hold rows
// may reference a copy: a checked_out copy has exactly one open loan, an
// on_hold copy is assigned to exactly one ready hold.
const (
	CopyAvailable  = "available"
	CopyCheckedOut = "checked_out"
	CopyOnHold     = "on_hold"
	CopyLost       = "lost"
	CopyRepair     = "repair"
	CopyWithdrawn  = "withdrawn"
)

// Loan statuses.
const (
	LoanOpen   = "open"
	LoanClosed = "closed"
)

// Hold statuses. Queued and ready both count as active for the
// one-active-hold-per-user-per-record rule.
const (
	HoldQueued = "queued"
	HoldReady  = "ready"
)

// Authority term kinds.
const (
	TermKindSubject    = "subject"
	TermKindName       = "name"
	TermKindGeographic = "geographic"
	TermKindGenre      = "genre"
)

// Authority relation types. Broader edges point from the narrower term to
// the broader term; their subgraph must stay acyclic per kind+vocabulary.
const (
	RelationBroader = "broader"
	RelationRelated = "related"
)

// Tenant owns every other generated entity, identified by its slug (Code).
type Tenant struct {
	ID   uuid.UUID
	Name string
	Code string
}

// Location is a physical or virtual shelving unit.
type Location struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Code      string
	Name      string
	Area      *string
	ShelfCode *string
	Status    string
}

// User is a person record. Only the few users with a Credential row can log
// in; the rest exist to give lists, filters and search something to chew on.
type User struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	ExternalID string
	Name       string
	Role       string
	OrgUnit    *string
	Status     string
}

// Credential carries the scrypt-v1 password material for one login user.
type Credential struct {
	UserID       uuid.UUID
	PasswordSalt string
	PasswordHash string
	Algorithm    string
}

// AuthorityTerm is one controlled-vocabulary entry. PreferredLabel is unique
// within (Kind, VocabularyCode); VariantLabels are aliases that resolve to
// this term and must not collide with any preferred label.
type AuthorityTerm struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	Kind           string
	VocabularyCode string
	PreferredLabel string
	VariantLabels  []string
	Note           *string
	Source         string
	Status         string
}

// AuthorityRelation is a typed directed edge between two terms of the same
// kind and vocabulary.
type AuthorityRelation struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	TermID        uuid.UUID
	RelatedTermID uuid.UUID
	RelationType  string
}

// CatalogRecord is one bibliographic record. The label lists keep their
// generation order; TermLink rows mirror them with explicit positions.
type CatalogRecord struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	Title          string
	Creators       []string
	Contributors   []string
	Publisher      string
	PublishedYear  int
	Language       string
	Subjects       []string
	Geographics    []string
	Genres         []string
	ISBN           string
	Classification string
	Extra          map[string]any
}

// TermLink ties one ordered label of a catalog record to its authority term.
type TermLink struct {
	TenantID uuid.UUID
	RecordID uuid.UUID
	TermID   uuid.UUID
	Kind     string
	Position int
}

// Copy is one physical item of a catalog record at one location.
type Copy struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	RecordID        uuid.UUID
	Barcode         string
	CallNumber      string
	LocationID      uuid.UUID
	Status          string
	AcquiredAt      time.Time
	LastInventoryAt *time.Time
	Notes           *string
}

// Policy is the circulation rule set for one audience role. Exactly one
// policy per role is active.
type Policy struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	Code             string
	Name             string
	AudienceRole     string
	LoanDays         int
	MaxLoans         int
	MaxRenewals      int
	MaxHolds         int
	HoldPickupDays   int
	OverdueBlockDays int
	IsActive         bool
}

// Loan references one copy and one borrower. At most one open loan exists
// per copy at any time.
type Loan struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	CopyID       uuid.UUID
	UserID       uuid.UUID
	CheckedOutAt time.Time
	DueAt        time.Time
	ReturnedAt   *time.Time
	RenewedCount int
	Status       string
}

// Hold references one catalog record and one user. A ready hold is assigned
// to one on_hold copy.
type Hold struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	RecordID         uuid.UUID
	UserID           uuid.UUID
	PickupLocationID uuid.UUID
	PlacedAt         time.Time
	Status           string
	AssignedCopyID   *uuid.UUID
	ReadyAt          *time.Time
	ReadyUntil       *time.Time
	CancelledAt      *time.Time
	FulfilledAt      *time.Time
}

// InventorySession scopes a stock-taking run to one location and time window.
type InventorySession struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	LocationID  uuid.UUID
	ActorUserID uuid.UUID
	Note        string
	StartedAt   time.Time
	ClosedAt    *time.Time
}

// InventoryScan records one copy seen during a session. A copy is scanned at
// most once per session.
type InventoryScan struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	SessionID   uuid.UUID
	LocationID  uuid.UUID
	CopyID      uuid.UUID
	ActorUserID uuid.UUID
	ScannedAt   time.Time
}

// AuditEvent is one append-only activity log entry. EntityID is free text so
// it can point at any entity kind; the generator always fills it with a real
// generated identifier matching EntityType.
type AuditEvent struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	ActorUserID uuid.UUID
	Action      string
	EntityType  string
	EntityID    string
	Metadata    map[string]any
	CreatedAt   time.Time
}
