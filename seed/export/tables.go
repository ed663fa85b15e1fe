// Package export turns a generated dataset into its loadable form: tabular
// rows shared with the database load engine, CSV files, and the psql load
// script. It is a pure function of the dataset; nothing here draws from the
// random stream.
package export

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/Justin21523/school-library-lms/seed"
)

// Key order in serialized JSON columns is fixed so exports stay
// byte-identical across runs.
var json = jsoniter.Config{SortMapKeys: true}.Froze()

// Table is one entity kind flattened to rows. Cell values keep their Go
// types; the CSV writer and the load engine adapters each map them to their
// wire form. Nil cells are SQL NULL.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Tables flattens the dataset in dependency order. Loading the tables in
// slice order never violates a foreign key.
func Tables(ds *seed.Dataset) ([]Table, error) {
	organizations := Table{
		Name:    "organizations",
		Columns: []string{"id", "name", "code"},
		Rows:    [][]any{{ds.Tenant.ID, ds.Tenant.Name, ds.Tenant.Code}},
	}

	locations := Table{
		Name:    "locations",
		Columns: []string{"id", "organization_id", "code", "name", "area", "shelf_code", "status"},
	}
	for _, l := range ds.Locations {
		locations.Rows = append(locations.Rows, []any{
			l.ID, l.TenantID, l.Code, l.Name, optString(l.Area), optString(l.ShelfCode), l.Status,
		})
	}

	users := Table{
		Name:    "users",
		Columns: []string{"id", "organization_id", "external_id", "name", "role", "org_unit", "status"},
	}
	for _, u := range ds.Users {
		users.Rows = append(users.Rows, []any{
			u.ID, u.TenantID, u.ExternalID, u.Name, u.Role, optString(u.OrgUnit), u.Status,
		})
	}

	credentials := Table{
		Name:    "user_credentials",
		Columns: []string{"user_id", "password_salt", "password_hash", "algorithm"},
	}
	for _, c := range ds.Credentials {
		credentials.Rows = append(credentials.Rows, []any{
			c.UserID, c.PasswordSalt, c.PasswordHash, c.Algorithm,
		})
	}

	terms := Table{
		Name: "authority_terms",
		Columns: []string{"id", "organization_id", "kind", "vocabulary_code",
			"preferred_label", "variant_labels", "note", "source", "status"},
	}
	for _, t := range ds.AuthorityTerms {
		terms.Rows = append(terms.Rows, []any{
			t.ID, t.TenantID, t.Kind, t.VocabularyCode,
			t.PreferredLabel, list(t.VariantLabels), optString(t.Note), t.Source, t.Status,
		})
	}

	relations := Table{
		Name:    "authority_relations",
		Columns: []string{"id", "organization_id", "term_id", "related_term_id", "relation_type"},
	}
	for _, r := range ds.AuthorityRelations {
		relations.Rows = append(relations.Rows, []any{
			r.ID, r.TenantID, r.TermID, r.RelatedTermID, r.RelationType,
		})
	}

	records := Table{
		Name: "bibliographic_records",
		Columns: []string{"id", "organization_id", "title", "creators", "contributors",
			"publisher", "published_year", "language", "subjects", "geographics",
			"genres", "isbn", "classification", "extra"},
	}
	for _, b := range ds.CatalogRecords {
		extra, err := jsonCell(b.Extra)
		if err != nil {
			return nil, err
		}
		records.Rows = append(records.Rows, []any{
			b.ID, b.TenantID, b.Title, list(b.Creators), list(b.Contributors),
			b.Publisher, b.PublishedYear, b.Language, list(b.Subjects), list(b.Geographics),
			list(b.Genres), b.ISBN, b.Classification, extra,
		})
	}

	termLinks := Table{
		Name:    "bibliographic_term_links",
		Columns: []string{"organization_id", "bibliographic_id", "term_id", "kind", "position"},
	}
	for _, l := range ds.TermLinks {
		termLinks.Rows = append(termLinks.Rows, []any{
			l.TenantID, l.RecordID, l.TermID, l.Kind, l.Position,
		})
	}

	copies := Table{
		Name: "item_copies",
		Columns: []string{"id", "organization_id", "bibliographic_id", "barcode", "call_number",
			"location_id", "status", "acquired_at", "last_inventory_at", "notes"},
	}
	for _, c := range ds.Copies {
		copies.Rows = append(copies.Rows, []any{
			c.ID, c.TenantID, c.RecordID, c.Barcode, c.CallNumber,
			c.LocationID, c.Status, c.AcquiredAt, optTime(c.LastInventoryAt), optString(c.Notes),
		})
	}

	policies := Table{
		Name: "circulation_policies",
		Columns: []string{"id", "organization_id", "code", "name", "audience_role",
			"loan_days", "max_loans", "max_renewals", "max_holds", "hold_pickup_days",
			"overdue_block_days", "is_active"},
	}
	for _, p := range ds.Policies {
		policies.Rows = append(policies.Rows, []any{
			p.ID, p.TenantID, p.Code, p.Name, p.AudienceRole,
			p.LoanDays, p.MaxLoans, p.MaxRenewals, p.MaxHolds, p.HoldPickupDays,
			p.OverdueBlockDays, p.IsActive,
		})
	}

	loans := Table{
		Name: "loans",
		Columns: []string{"id", "organization_id", "item_id", "user_id", "checked_out_at",
			"due_at", "returned_at", "renewed_count", "status"},
	}
	for _, l := range ds.Loans {
		loans.Rows = append(loans.Rows, []any{
			l.ID, l.TenantID, l.CopyID, l.UserID, l.CheckedOutAt,
			l.DueAt, optTime(l.ReturnedAt), l.RenewedCount, l.Status,
		})
	}

	holds := Table{
		Name: "holds",
		Columns: []string{"id", "organization_id", "bibliographic_id", "user_id",
			"pickup_location_id", "placed_at", "status", "assigned_item_id",
			"ready_at", "ready_until", "cancelled_at", "fulfilled_at"},
	}
	for _, h := range ds.Holds {
		holds.Rows = append(holds.Rows, []any{
			h.ID, h.TenantID, h.RecordID, h.UserID,
			h.PickupLocationID, h.PlacedAt, h.Status, optID(h.AssignedCopyID),
			optTime(h.ReadyAt), optTime(h.ReadyUntil), optTime(h.CancelledAt), optTime(h.FulfilledAt),
		})
	}

	sessions := Table{
		Name:    "inventory_sessions",
		Columns: []string{"id", "organization_id", "location_id", "actor_user_id", "note", "started_at", "closed_at"},
	}
	for _, s := range ds.InventorySessions {
		sessions.Rows = append(sessions.Rows, []any{
			s.ID, s.TenantID, s.LocationID, s.ActorUserID, s.Note, s.StartedAt, optTime(s.ClosedAt),
		})
	}

	scans := Table{
		Name:    "inventory_scans",
		Columns: []string{"id", "organization_id", "session_id", "location_id", "item_id", "actor_user_id", "scanned_at"},
	}
	for _, s := range ds.InventoryScans {
		scans.Rows = append(scans.Rows, []any{
			s.ID, s.TenantID, s.SessionID, s.LocationID, s.CopyID, s.ActorUserID, s.ScannedAt,
		})
	}

	audits := Table{
		Name: "audit_events",
		Columns: []string{"id", "organization_id", "actor_user_id", "action", "entity_type",
			"entity_id", "metadata", "created_at"},
	}
	for _, a := range ds.AuditEvents {
		metadata, err := jsonCell(a.Metadata)
		if err != nil {
			return nil, err
		}
		audits.Rows = append(audits.Rows, []any{
			a.ID, a.TenantID, a.ActorUserID, a.Action, a.EntityType,
			a.EntityID, metadata, a.CreatedAt,
		})
	}

	return []Table{
		organizations, locations, users, credentials,
		terms, relations, records, termLinks, copies,
		policies, loans, holds, sessions, scans, audits,
	}, nil
}

// jsonCell serializes a structured column value, keeping nil maps as NULL.
func jsonCell(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}

	encoded, err := json.MarshalToString(m)
	if err != nil {
		return nil, err
	}

	return encoded, nil
}

// list keeps list columns non-NULL: an absent list is an empty array, both
// in the CSV files and through the database drivers.
func list(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// optString widens *string to any without producing a typed nil.
func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func optID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}
