package populate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/identity"
)

// The fixed location archetypes. CLOSED is inactive so the OPAC's
// active-only filtering has something to hide.
var locationArchetypes = []struct {
	code   string
	name   string
	area   string
	shelf  string
	status string
}{
	{"MAIN", "總館（大型資料集）", "行政大樓", "A-01", seed.StatusActive},
	{"BRANCH", "分館（大型資料集）", "教學大樓", "B-02", seed.StatusActive},
	{"CLASSROOM", "班級書箱（示範）", "各班教室", "C-xx", seed.StatusActive},
	{"STORAGE", "庫房（示範）", "後勤區", "S-00", seed.StatusActive},
	{"CLOSED", "已停用館別（示範）", "舊館", "X-00", seed.StatusInactive},
}

var teacherUnits = []string{"教務處", "學務處", "總務處", "輔導室", "導師", "科任"}

func (e *Engine) buildLocations(ds *seed.Dataset) {
	for _, a := range locationArchetypes {
		loc := seed.Location{
			ID:        e.derive.ID("loc", a.code),
			TenantID:  ds.Tenant.ID,
			Code:      a.code,
			Name:      a.name,
			Area:      ptr(a.area),
			ShelfCode: ptr(a.shelf),
			Status:    a.status,
		}
		ds.Locations = append(ds.Locations, loc)

		switch a.code {
		case "MAIN":
			e.locMain = loc.ID
		case "BRANCH":
			e.locBranch = loc.ID
		case "CLASSROOM":
			e.locClassroom = loc.ID
		case "STORAGE":
			e.locStorage = loc.ID
		}
	}
}

func (e *Engine) buildUsers(ds *seed.Dataset) {
	// Login-enabled fixture users first, fully pinned.
	e.adminID = e.addUser(ds, AdminExternalID, "系統管理員（大型資料集）", seed.RoleAdmin, nil, seed.StatusActive)
	e.librarianID = e.addUser(ds, LibrarianExternalID, "圖書館員（大型資料集）", seed.RoleLibrarian, ptr("圖書館"), seed.StatusActive)
	e.addUser(ds, LoginTeacherExternalID, "陳老師（可登入）", seed.RoleTeacher, ptr("教務處"), seed.StatusActive)
	e.addUser(ds, LoginStudentExternalID, "王小明（可登入）", seed.RoleStudent, ptr("501"), seed.StatusActive)

	// Bulk teachers, list/search volume only.
	for i := 2; i <= e.cfg.Teachers; i++ {
		name := e.text.PersonName() + "老師"
		unit := identity.Pick(e.stream, teacherUnits)
		e.addUser(ds, fmt.Sprintf("T%04d", i), name, seed.RoleTeacher, ptr(unit), seed.StatusActive)
	}

	// Bulk students, distributed over class codes 501..510 and 601..610 so
	// the org-unit filter has shape. A thin modulo slice is inactive to
	// exercise status filtering.
	classCodes := make([]string, 0, 20)
	for _, grade := range []int{5, 6} {
		for class := 1; class <= 10; class++ {
			classCodes = append(classCodes, fmt.Sprintf("%d%02d", grade, class))
		}
	}

	for i := 1; i <= e.cfg.Students; i++ {
		externalID := fmt.Sprintf("S113%04d", i)
		name := e.text.PersonName()
		unit := identity.Pick(e.stream, classCodes)

		// The login student occupies this external ID already.
		if externalID == LoginStudentExternalID {
			continue
		}

		status := seed.StatusActive
		if i%97 == 0 {
			status = seed.StatusInactive
		}
		e.addUser(ds, externalID, name, seed.RoleStudent, ptr(unit), status)
	}
}

func (e *Engine) addUser(ds *seed.Dataset, externalID, name, role string, orgUnit *string, status string) uuid.UUID {
	user := seed.User{
		ID:         e.derive.ID("user", externalID),
		TenantID:   ds.Tenant.ID,
		ExternalID: externalID,
		Name:       name,
		Role:       role,
		OrgUnit:    orgUnit,
		Status:     status,
	}
	ds.Users = append(ds.Users, user)

	return user.ID
}

func (e *Engine) buildCredentials(ds *seed.Dataset) error {
	salt := seed.DeterministicSalt(e.cfg.Seed)
	hash, err := seed.HashPassword(e.cfg.Password, salt)
	if err != nil {
		return err
	}

	// One shared salt/hash for the four login users: reproducible, and one
	// scrypt run instead of four.
	for _, user := range ds.Users[:4] {
		ds.Credentials = append(ds.Credentials, seed.Credential{
			UserID:       user.ID,
			PasswordSalt: salt,
			PasswordHash: hash,
			Algorithm:    seed.CredentialAlgorithm,
		})
	}

	return nil
}
