package populate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/vocab"
)

func (e *Engine) buildCatalog(ds *seed.Dataset) {
	e.addFixtureRecord(ds, 1, AvailableRecordTitle, availableRecordSubject, "028.5", "9786000000001")
	e.addFixtureRecord(ds, 2, CheckedOutRecordTitle, checkedOutRecordSubject, "020.7", "9786000000002")

	// Per record, the draws happen in this order: creators, contributors,
	// subjects, geographics, genres, title, publisher, year, language,
	// classification, ISBN, extension fields.
	for i := fixtureRecordCount + 1; i <= e.cfg.CatalogRecords; i++ {
		creators := []string{e.text.PersonName()}
		if e.stream.Chance(0.35) {
			creators = append(creators, e.text.PersonName())
		}

		var contributors []string
		if e.stream.Chance(0.20) {
			contributors = []string{e.text.PersonName()}
		}

		subjects := e.text.SubjectTerms(e.stream.Between(1, 3))

		var geographics []string
		if n := e.stream.Between(0, 2); n > 0 {
			geographics = e.text.GeographicTerms(n)
		}

		genres := e.text.GenreTerms(e.stream.Between(1, 2))

		title := e.text.Title()
		publisher := e.text.Publisher()
		year := e.stream.Between(1995, 2025)
		language := e.text.LanguageCode()
		classification := e.text.Classification()

		// Demo ISBN: 13 digits that look right, no real check digit.
		isbn := "978" + strconv.Itoa(e.stream.Between(1000000000, 9999999999))

		var extra map[string]any
		if e.stream.Chance(0.30) {
			extra = map[string]any{
				"edition": e.stream.Between(1, 6),
				"pages":   e.stream.Between(60, 420),
			}
		}

		record := seed.CatalogRecord{
			ID:             e.derive.ID("bib", fmt.Sprintf("%06d", i)),
			TenantID:       ds.Tenant.ID,
			Title:          title,
			Creators:       dedupe(creators),
			Contributors:   dedupe(contributors),
			Publisher:      publisher,
			PublishedYear:  year,
			Language:       language,
			Subjects:       subjects,
			Geographics:    geographics,
			Genres:         genres,
			ISBN:           isbn,
			Classification: classification,
			Extra:          extra,
		}
		ds.CatalogRecords = append(ds.CatalogRecords, record)

		e.linkTerms(ds, record)
		e.harvestNames(record)
	}
}

func (e *Engine) addFixtureRecord(ds *seed.Dataset, index int, title, subject, classification, isbn string) {
	record := seed.CatalogRecord{
		ID:             e.derive.ID("bib", fmt.Sprintf("%06d", index)),
		TenantID:       ds.Tenant.ID,
		Title:          title,
		Creators:       []string{fixtureCreator},
		Publisher:      "臺灣教育出版社",
		PublishedYear:  2021,
		Language:       "zh-TW",
		Subjects:       []string{subject},
		ISBN:           isbn,
		Classification: classification,
	}
	ds.CatalogRecords = append(ds.CatalogRecords, record)

	e.linkTerms(ds, record)
	e.harvestNames(record)
}

// linkTerms registers one positional authority-link row per ordered label.
// The labels come out of the built-in pools, so the term identifiers resolve
// into the vocabulary emitted by buildAuthority.
func (e *Engine) linkTerms(ds *seed.Dataset, record seed.CatalogRecord) {
	lists := []struct {
		kind   string
		labels []string
	}{
		{seed.TermKindSubject, record.Subjects},
		{seed.TermKindGeographic, record.Geographics},
		{seed.TermKindGenre, record.Genres},
	}

	for _, list := range lists {
		for position, label := range list.labels {
			ds.TermLinks = append(ds.TermLinks, seed.TermLink{
				TenantID: ds.Tenant.ID,
				RecordID: record.ID,
				TermID:   e.termID(list.kind, vocab.BuiltinVocabularyCode, label),
				Kind:     list.kind,
				Position: position + 1,
			})
		}
	}
}

func (e *Engine) harvestNames(record seed.CatalogRecord) {
	for _, name := range record.Creators {
		e.nameTerms[name] = struct{}{}
	}
	for _, name := range record.Contributors {
		e.nameTerms[name] = struct{}{}
	}
}

// buildAuthority emits the authority surface: every term of the built-in
// vocabularies unconditionally, not just the labels the records happened to
// sample, so rarely-drawn terms still show up in vocabulary management.
// It also emits the name terms harvested from generated creators and
// contributors, plus the thesaurus relations.
func (e *Engine) buildAuthority(ds *seed.Dataset) {
	for _, v := range vocab.Builtin() {
		for _, term := range v.Terms {
			ds.AuthorityTerms = append(ds.AuthorityTerms, seed.AuthorityTerm{
				ID:             e.termID(v.Kind, v.Code, term.Preferred),
				TenantID:       ds.Tenant.ID,
				Kind:           v.Kind,
				VocabularyCode: v.Code,
				PreferredLabel: term.Preferred,
				VariantLabels:  term.Variants,
				Source:         "seed-scale",
				Status:         seed.StatusActive,
			})
		}

		for _, edge := range v.Edges {
			discriminator := v.Kind + ":" + v.Code + ":" + edge.From + ":" + edge.Type + ":" + edge.To
			ds.AuthorityRelations = append(ds.AuthorityRelations, seed.AuthorityRelation{
				ID:            e.derive.ID("authrel", discriminator),
				TenantID:      ds.Tenant.ID,
				TermID:        e.termID(v.Kind, v.Code, edge.From),
				RelatedTermID: e.termID(v.Kind, v.Code, edge.To),
				RelationType:  edge.Type,
			})
		}
	}

	names := make([]string, 0, len(e.nameTerms))
	for name := range e.nameTerms {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ds.AuthorityTerms = append(ds.AuthorityTerms, seed.AuthorityTerm{
			ID:             e.termID(seed.TermKindName, vocab.LocalVocabularyCode, name),
			TenantID:       ds.Tenant.ID,
			Kind:           seed.TermKindName,
			VocabularyCode: vocab.LocalVocabularyCode,
			PreferredLabel: name,
			Source:         "seed-scale",
			Status:         seed.StatusActive,
		})
	}
}

func (e *Engine) buildCopies(ds *seed.Dataset) {
	barcode := 1

	for ri, record := range ds.CatalogRecords {
		count := 1
		pinned := ri < fixtureRecordCount
		if !pinned {
			count = e.stream.Between(1, e.cfg.MaxCopiesPerRecord)
		}

		for c := 1; c <= count; c++ {
			item := seed.Copy{
				ID:         e.derive.ID("item", fmt.Sprintf("%08d", barcode)),
				TenantID:   ds.Tenant.ID,
				RecordID:   record.ID,
				Barcode:    fmt.Sprintf("SCL-%08d", barcode),
				CallNumber: fmt.Sprintf("%s %04d-%d", record.Classification, ri+1, c),
				LocationID: e.locMain,
				Status:     seed.CopyAvailable,
				AcquiredAt: e.daysBack(365),
			}

			if !pinned {
				item.LocationID = e.pickLocation()
				item.AcquiredAt = e.daysBack(e.stream.Between(0, 3650))
				// A small share has been inventoried before, so the UI can
				// show last-seen timestamps.
				if e.stream.Chance(0.10) {
					item.LastInventoryAt = ptr(e.daysBack(e.stream.Between(1, 365)))
				}
			}

			ds.Copies = append(ds.Copies, item)
			barcode++
		}
	}
}

// pickLocation distributes copies over the real locations, weighted toward
// the main library: MAIN .60, BRANCH .25, CLASSROOM .10, STORAGE .05.
func (e *Engine) pickLocation() uuid.UUID {
	x := e.stream.Float()
	switch {
	case x < 0.60:
		return e.locMain
	case x < 0.85:
		return e.locBranch
	case x < 0.95:
		return e.locClassroom
	default:
		return e.locStorage
	}
}

func dedupe(labels []string) []string {
	if len(labels) < 2 {
		return labels
	}

	seen := make(map[string]struct{}, len(labels))
	out := labels[:0]
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	return out
}
