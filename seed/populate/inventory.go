package populate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/identity"
)

// buildInventory emits at least one stock-taking session. The first session
// is always a closed run at the main location, because that is the shape
// reporting screens query first. Scans cover only a subset of the
// location's available copies, which leaves the rest as missing, plus a
// handful of copies that do not belong there at all, which show up as
// unexpected.
func (e *Engine) buildInventory(ds *seed.Dataset) {
	sessions := max(1, e.cfg.InventorySessions)
	baseStarted := e.daysBack(30)
	secondaryLocations := []uuid.UUID{e.locMain, e.locBranch, e.locClassroom}

	for s := 1; s <= sessions; s++ {
		locationID := e.locMain
		if s > 1 {
			locationID = identity.Pick(e.stream, secondaryLocations)
		}
		startedAt := baseStarted.Add(time.Duration(s) * 24 * time.Hour)

		session := seed.InventorySession{
			ID:          e.derive.ID("inv_session", fmt.Sprintf("%03d", s)),
			TenantID:    ds.Tenant.ID,
			LocationID:  locationID,
			ActorUserID: e.librarianID,
			Note:        fmt.Sprintf("大型資料集盤點（session %d）", s),
			StartedAt:   startedAt,
		}
		if s == 1 {
			session.ClosedAt = ptr(startedAt.Add(2 * time.Hour))
		}
		ds.InventorySessions = append(ds.InventorySessions, session)

		var availableHere, unexpected []seed.Copy
		heldHere := 0
		for _, item := range ds.Copies {
			if item.LocationID == locationID {
				heldHere++
			}
			switch {
			case item.LocationID == locationID && item.Status == seed.CopyAvailable:
				availableHere = append(availableHere, item)
			default:
				unexpected = append(unexpected, item)
			}
		}
		// A location without a single copy gets an empty session: scanning
		// shelves that hold nothing produces no rows, expected or not.
		if heldHere == 0 {
			continue
		}

		targets := identity.Sample(e.stream, availableHere, e.cfg.ScansPerSession)
		targets = append(targets, identity.Sample(e.stream, unexpected, max(10, e.cfg.ScansPerSession/10))...)

		scanned := make(map[uuid.UUID]struct{}, len(targets))
		for idx, item := range targets {
			if _, dup := scanned[item.ID]; dup {
				continue
			}
			scanned[item.ID] = struct{}{}

			ds.InventoryScans = append(ds.InventoryScans, seed.InventoryScan{
				ID:          e.derive.ID("inv_scan", session.ID.String()+":"+item.ID.String()),
				TenantID:    ds.Tenant.ID,
				SessionID:   session.ID,
				LocationID:  locationID,
				CopyID:      item.ID,
				ActorUserID: e.librarianID,
				ScannedAt:   startedAt.Add(time.Duration(idx+1) * time.Minute),
			})
		}
	}
}
