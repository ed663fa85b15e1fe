// Package populate is the allocator: it turns a validated configuration and
// a text provider into a complete seed.Dataset, enforcing the cross-entity
// rules the target database will enforce again on load (one open loan per
// copy, one active hold per user and record, consistent copy statuses).
//
// Generation is single-threaded and proceeds in fixed stages, each consuming
// the outputs of the previous ones:
//
//	 1. tenant and the fixed location archetypes
//	 2. login-enabled fixture users, then bulk teachers and students
//	 3. login credentials
//	 4. catalog records (two deterministic fixture records first) with
//	    ordered term labels and positional authority-term links
//	 5. authority terms (the full built-in vocabularies plus harvested name
//	    terms) and thesaurus relations
//	 6. copies, one to several per record
//	 7. copy status partition (see assignStatuses for the draw-order notes)
//	 8. open loans for checked-out copies, then closed historical loans
//	 9. ready holds for on-hold copies, then queued holds
//	10. inventory sessions and scans
//	11. audit events pointing at real generated identifiers
//
// The stage order doubles as the consumption order of the single random
// stream; both are part of the reproducibility contract and must not be
// reordered. Any violated precondition aborts the run before anything is
// handed to export, so partial datasets cannot exist.
package populate
