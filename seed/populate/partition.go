package populate

import (
	"errors"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/identity"
)

var (
	ErrOpenLoansExceedCopies    = errors.New("open loans quantity exceeds the number of generated copies")
	ErrStatusQuotaExceedsCopies = errors.New("open loan and ready hold quantities exceed the assignable copies")
)

// assignStatuses partitions the copy pool into statuses. Every copy starts
// out available; this stage flips a disjoint share of them to lost, repair,
// withdrawn, checked_out and on_hold. The two fixture copies are pinned
// first: copy one stays available, copy two is always checked_out and
// counts against the open-loan quantity.
//
// The remaining copies are shuffled once and consumed as prefix ranges, so
// the partition costs exactly one shuffle worth of random draws regardless
// of the quantities.
func (e *Engine) assignStatuses(ds *seed.Dataset) error {
	if e.cfg.OpenLoans > len(ds.Copies) {
		return ErrOpenLoansExceedCopies
	}

	openSlots := e.cfg.OpenLoans
	if openSlots > 0 {
		openSlots--
	}
	readySlots := e.cfg.ReadyHolds

	eligible := make([]int, 0, len(ds.Copies)-fixtureRecordCount)
	for i := fixtureRecordCount; i < len(ds.Copies); i++ {
		eligible = append(eligible, i)
	}

	if openSlots+readySlots > len(eligible) {
		return ErrStatusQuotaExceedsCopies
	}

	identity.Shuffle(e.stream, eligible)

	// Anomaly statuses take a small fixed share, clamped so the circulation
	// quotas always fit in what remains.
	budget := len(eligible) - openSlots - readySlots
	total := len(ds.Copies)

	lost := min(budget, max(5, total/200))
	budget -= lost
	repair := min(budget, max(5, total/200))
	budget -= repair
	withdrawn := min(budget, max(5, total/500))

	cursor := 0
	take := func(n int, status string) {
		for _, idx := range eligible[cursor : cursor+n] {
			ds.Copies[idx].Status = status
		}
		cursor += n
	}

	take(lost, seed.CopyLost)
	take(repair, seed.CopyRepair)
	take(withdrawn, seed.CopyWithdrawn)
	take(openSlots, seed.CopyCheckedOut)
	take(readySlots, seed.CopyOnHold)

	ds.Copies[0].Status = seed.CopyAvailable
	ds.Copies[1].Status = seed.CopyCheckedOut

	return nil
}
