package populate

// Deterministic fixture entities reserved for scripted end-to-end flows.
// Identifiers, titles, terms, and location are all pinned, so
// that UI walkthroughs (checkout, hold, check-in, "unavailable" filtering)
// and login flows never depend on random allocation.

// External IDs of the login-enabled users. Only these four receive
// credential rows, and random borrower selection skips them to keep their
// loan and hold counts predictable.
const (
	AdminExternalID        = "A0001"
	LibrarianExternalID    = "L0001"
	LoginTeacherExternalID = "T0001"
	LoginStudentExternalID = "S1130123"
)

// The first two catalog records. Each has exactly one copy pinned to the
// main location: the first record's copy always ends up available, the
// second's always checked out.
const (
	AvailableRecordTitle  = "館藏示範：隨時可借的一本書（固定）"
	CheckedOutRecordTitle = "館藏示範：已被借走的一本書（固定）"

	fixtureCreator          = "示範作者"
	availableRecordSubject  = "閱讀推廣"
	checkedOutRecordSubject = "圖書館管理"

	// fixtureRecordCount copies sit at the head of the copy slice, one per
	// fixture record, excluded from the random status partition.
	fixtureRecordCount = 2
)
