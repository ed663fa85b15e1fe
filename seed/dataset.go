package seed

// Dataset is the complete in-memory output of one generation run. It is
// built in a single pass and never mutated afterwards; export and load only
// read it. Slice order is generation order and is part of the
// reproducibility contract.
type Dataset struct {
	Tenant             Tenant
	Locations          []Location
	Users              []User
	Credentials        []Credential
	AuthorityTerms     []AuthorityTerm
	AuthorityRelations []AuthorityRelation
	CatalogRecords     []CatalogRecord
	TermLinks          []TermLink
	Copies             []Copy
	Policies           []Policy
	Loans              []Loan
	Holds              []Hold
	InventorySessions  []InventorySession
	InventoryScans     []InventoryScan
	AuditEvents        []AuditEvent
}
