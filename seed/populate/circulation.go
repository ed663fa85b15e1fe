package populate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/identity"
)

func (e *Engine) buildPolicies(ds *seed.Dataset) {
	ds.Policies = append(ds.Policies,
		seed.Policy{
			ID:               e.derive.ID("policy", "student"),
			TenantID:         ds.Tenant.ID,
			Code:             "STUDENT_DEFAULT",
			Name:             "學生預設政策（大型資料集）",
			AudienceRole:     seed.RoleStudent,
			LoanDays:         14,
			MaxLoans:         5,
			MaxRenewals:      1,
			MaxHolds:         3,
			HoldPickupDays:   7,
			OverdueBlockDays: 7,
			IsActive:         true,
		},
		seed.Policy{
			ID:               e.derive.ID("policy", "teacher"),
			TenantID:         ds.Tenant.ID,
			Code:             "TEACHER_DEFAULT",
			Name:             "教師預設政策（大型資料集）",
			AudienceRole:     seed.RoleTeacher,
			LoanDays:         28,
			MaxLoans:         10,
			MaxRenewals:      2,
			MaxHolds:         5,
			HoldPickupDays:   10,
			OverdueBlockDays: 14,
			IsActive:         true,
		},
	)
}

// loginExternalIDs are excluded from random borrower selection so the
// scripted login users keep empty, predictable circulation histories.
var loginExternalIDs = map[string]struct{}{
	AdminExternalID:        {},
	LibrarianExternalID:    {},
	LoginTeacherExternalID: {},
	LoginStudentExternalID: {},
}

func (e *Engine) collectBorrowers(ds *seed.Dataset) error {
	for _, user := range ds.Users {
		if user.Role != seed.RoleStudent && user.Role != seed.RoleTeacher {
			continue
		}
		if user.Status != seed.StatusActive {
			continue
		}
		if _, login := loginExternalIDs[user.ExternalID]; login {
			continue
		}
		e.borrowers = append(e.borrowers, user)
	}

	if len(e.borrowers) == 0 {
		return ErrNoActiveBorrowers
	}

	return nil
}

func (e *Engine) loanDays(role string) int {
	if role == seed.RoleTeacher {
		return 28
	}
	return 14
}

// buildLoans emits exactly one open loan per checked_out copy, then the
// configured volume of closed historical loans. Roughly 15% of the open
// loans are back-dated overdue so an overdue report is non-empty from the
// first run.
func (e *Engine) buildLoans(ds *seed.Dataset) error {
	if err := e.collectBorrowers(ds); err != nil {
		return err
	}

	for _, item := range ds.Copies {
		if item.Status != seed.CopyCheckedOut {
			continue
		}

		borrower := identity.Pick(e.stream, e.borrowers)
		checkedOutAt := e.daysBack(e.stream.Between(0, 60))
		dueAt := checkedOutAt.Add(time.Duration(e.loanDays(borrower.Role)) * 24 * time.Hour)
		if e.stream.Chance(0.15) {
			dueAt = e.daysBack(e.stream.Between(1, 20))
		}

		ds.Loans = append(ds.Loans, seed.Loan{
			ID:           e.derive.ID("loan", "open:"+item.ID.String()),
			TenantID:     ds.Tenant.ID,
			CopyID:       item.ID,
			UserID:       borrower.ID,
			CheckedOutAt: checkedOutAt,
			DueAt:        dueAt,
			RenewedCount: e.stream.Between(0, 1),
			Status:       seed.LoanOpen,
		})
	}

	// Closed historical loans draw from the randomly generated copies only.
	// The two pinned demo copies keep an empty loan history apart from the
	// forced open checkout, so scripted walkthroughs see a clean record.
	candidates := ds.Copies[fixtureRecordCount:]
	if len(candidates) == 0 {
		e.logWarn(logMsgClosedLoansSkipped, logAttrCount, e.cfg.ClosedLoans)
		return nil
	}

	for i := 1; i <= e.cfg.ClosedLoans; i++ {
		borrower := identity.Pick(e.stream, e.borrowers)
		item := identity.Pick(e.stream, candidates)

		days := e.loanDays(borrower.Role)
		checkedOutAt := e.daysBack(e.stream.Between(0, 365))
		dueAt := checkedOutAt.Add(time.Duration(days) * 24 * time.Hour)
		returnedAt := checkedOutAt.Add(time.Duration(e.stream.Between(1, days)) * 24 * time.Hour)

		ds.Loans = append(ds.Loans, seed.Loan{
			ID:           e.derive.ID("loan", fmt.Sprintf("closed:%07d", i)),
			TenantID:     ds.Tenant.ID,
			CopyID:       item.ID,
			UserID:       borrower.ID,
			CheckedOutAt: checkedOutAt,
			DueAt:        dueAt,
			ReturnedAt:   ptr(returnedAt),
			RenewedCount: e.stream.Between(0, 2),
			Status:       seed.LoanClosed,
		})
	}

	return nil
}

// buildHolds emits one ready hold per on_hold copy and then the configured
// volume of queued holds. A (borrower, record) pair carries at most one
// queued or ready hold; draws landing on an already-held pair are skipped,
// so the configured quantities are upper bounds.
func (e *Engine) buildHolds(ds *seed.Dataset) {
	type holdKey struct {
		userID   uuid.UUID
		recordID uuid.UUID
	}
	activeHolds := make(map[holdKey]struct{})

	for _, item := range ds.Copies {
		if item.Status != seed.CopyOnHold {
			continue
		}

		borrower := identity.Pick(e.stream, e.borrowers)
		key := holdKey{borrower.ID, item.RecordID}
		if _, taken := activeHolds[key]; taken {
			continue
		}
		activeHolds[key] = struct{}{}

		readyAt := e.daysBack(e.stream.Between(0, 10))
		var readyUntil time.Time
		// A share of ready holds has already expired, feeding the
		// expire-ready maintenance path.
		if e.stream.Chance(0.25) {
			readyUntil = e.daysBack(e.stream.Between(1, 7))
		} else {
			readyUntil = e.now.Add(time.Duration(e.stream.Between(1, 7)) * 24 * time.Hour)
		}
		placedAt := readyAt.Add(-time.Duration(e.stream.Between(0, 3)) * 24 * time.Hour)

		ds.Holds = append(ds.Holds, seed.Hold{
			ID:               e.derive.ID("hold", "ready:"+item.ID.String()),
			TenantID:         ds.Tenant.ID,
			RecordID:         item.RecordID,
			UserID:           borrower.ID,
			PickupLocationID: item.LocationID,
			PlacedAt:         placedAt,
			Status:           seed.HoldReady,
			AssignedCopyID:   ptr(item.ID),
			ReadyAt:          ptr(readyAt),
			ReadyUntil:       ptr(readyUntil),
		})
	}

	// Queued holds target the randomly generated records only, keeping the
	// two pinned demo records free of queue noise.
	candidates := ds.CatalogRecords[fixtureRecordCount:]
	if len(candidates) == 0 {
		e.logWarn(logMsgQueuedHoldsSkipped, logAttrCount, e.cfg.QueuedHolds)
		return
	}

	pickupPool := []uuid.UUID{e.locMain, e.locBranch, e.locClassroom}

	for i := 1; i <= e.cfg.QueuedHolds; i++ {
		record := identity.Pick(e.stream, candidates)
		borrower := identity.Pick(e.stream, e.borrowers)
		key := holdKey{borrower.ID, record.ID}
		if _, taken := activeHolds[key]; taken {
			continue
		}
		activeHolds[key] = struct{}{}

		ds.Holds = append(ds.Holds, seed.Hold{
			ID:               e.derive.ID("hold", fmt.Sprintf("queued:%07d", i)),
			TenantID:         ds.Tenant.ID,
			RecordID:         record.ID,
			UserID:           borrower.ID,
			PickupLocationID: identity.Pick(e.stream, pickupPool),
			PlacedAt:         e.daysBack(e.stream.Between(0, 30)),
			Status:           seed.HoldQueued,
		})
	}
}
