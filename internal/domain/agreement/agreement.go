// Package agreement contains the agreement aggregate. An agreement is a
// versioned contract between a provider and a local entity for a given
// year and code; new versions are appended as revisions, never edited in
// place.
package agreement

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tally/internal/shared/errors"
	"tally/internal/shared/validation"
)

const (
	// MinYear and MaxYear bound the contract year.
	MinYear = 2024
	MaxYear = 2125

	// MaxRevision bounds the revision counter per year+code lineage.
	MaxRevision = 100
)

// Agreement is the aggregate root for a contract version. A lineage is the
// set of rows sharing year+code; each revision carries its own identity.
type Agreement struct {
	agreementID    uuid.UUID
	year           int
	code           string
	revision       int
	isRevised      bool
	revisionDate   time.Time
	providerPlanID uuid.UUID
	localPlanID    uuid.UUID
	name           string
	description    string
	contactEmail   string
	comment        *string
	documentURL    *string
}

// NewAgreement creates the first revision of a lineage with a fresh identity.
// Nothing is validated here; the caller must invoke Validate before persisting.
func NewAgreement(
	year int,
	code string,
	revisionDate time.Time,
	providerPlanID, localPlanID uuid.UUID,
	name, description, contactEmail string,
	comment, documentURL *string,
) *Agreement {
	return &Agreement{
		agreementID:    uuid.New(),
		year:           year,
		code:           strings.TrimSpace(code),
		revision:       1,
		isRevised:      false,
		revisionDate:   revisionDate,
		providerPlanID: providerPlanID,
		localPlanID:    localPlanID,
		name:           strings.TrimSpace(name),
		description:    strings.TrimSpace(description),
		contactEmail:   strings.ToLower(strings.TrimSpace(contactEmail)),
		comment:        trimPtr(comment),
		documentURL:    trimPtr(documentURL),
	}
}

// ReconstructAgreement rebuilds an agreement from persistence.
func ReconstructAgreement(
	agreementID uuid.UUID,
	year int,
	code string,
	revision int,
	isRevised bool,
	revisionDate time.Time,
	providerPlanID, localPlanID uuid.UUID,
	name, description, contactEmail string,
	comment, documentURL *string,
) *Agreement {
	return &Agreement{
		agreementID:    agreementID,
		year:           year,
		code:           code,
		revision:       revision,
		isRevised:      isRevised,
		revisionDate:   revisionDate,
		providerPlanID: providerPlanID,
		localPlanID:    localPlanID,
		name:           name,
		description:    description,
		contactEmail:   contactEmail,
		comment:        comment,
		documentURL:    documentURL,
	}
}

func (a *Agreement) ID() uuid.UUID { return a.agreementID }

func (a *Agreement) Year() int { return a.year }

func (a *Agreement) Code() string { return a.code }

func (a *Agreement) Revision() int { return a.revision }

func (a *Agreement) IsRevised() bool { return a.isRevised }

func (a *Agreement) RevisionDate() time.Time { return a.revisionDate }

func (a *Agreement) ProviderPlanID() uuid.UUID { return a.providerPlanID }

func (a *Agreement) LocalPlanID() uuid.UUID { return a.localPlanID }

func (a *Agreement) Name() string { return a.name }

func (a *Agreement) Description() string { return a.description }

func (a *Agreement) ContactEmail() string { return a.contactEmail }

func (a *Agreement) Comment() *string { return a.comment }

func (a *Agreement) DocumentURL() *string { return a.documentURL }

// Mutators always succeed in memory; correctness is deferred to Validate.
// Cross-aggregate rules (code changes on shared lineages, the revised flag
// gate) are enforced by the use cases against the repositories.

func (a *Agreement) ChangeYear(year int) { a.year = year }

func (a *Agreement) ChangeCode(code string) { a.code = strings.TrimSpace(code) }

func (a *Agreement) ChangeRevisionDate(d time.Time) { a.revisionDate = d }

func (a *Agreement) ChangeProviderPlanID(id uuid.UUID) { a.providerPlanID = id }

func (a *Agreement) ChangeLocalPlanID(id uuid.UUID) { a.localPlanID = id }

func (a *Agreement) ChangeName(name string) { a.name = strings.TrimSpace(name) }

func (a *Agreement) ChangeDescription(d string) { a.description = strings.TrimSpace(d) }

func (a *Agreement) ChangeContactEmail(email string) {
	a.contactEmail = strings.ToLower(strings.TrimSpace(email))
}

func (a *Agreement) ChangeComment(comment *string) { a.comment = trimPtr(comment) }

func (a *Agreement) ChangeDocumentURL(url *string) { a.documentURL = trimPtr(url) }

func (a *Agreement) SetRevised(revised bool) { a.isRevised = revised }

// NewRevision produces the successor agreement: a fresh identity, an
// incremented revision counter, isRevised reset, and every descriptive field
// copied verbatim. The receiver is left untouched so history stays
// append-only.
func (a *Agreement) NewRevision(revisionDate time.Time, providerPlanID, localPlanID uuid.UUID) *Agreement {
	return &Agreement{
		agreementID:    uuid.New(),
		year:           a.year,
		code:           a.code,
		revision:       a.revision + 1,
		isRevised:      false,
		revisionDate:   revisionDate,
		providerPlanID: providerPlanID,
		localPlanID:    localPlanID,
		name:           a.name,
		description:    a.description,
		contactEmail:   a.contactEmail,
		comment:        copyPtr(a.comment),
		documentURL:    copyPtr(a.documentURL),
	}
}

// Validate runs all field checks in one pass and aggregates every problem
// into a single validation error.
func (a *Agreement) Validate() error {
	var problems []string

	if a.year < MinYear || a.year > MaxYear {
		problems = append(problems, fmt.Sprintf("Agreement year must be between %d and %d", MinYear, MaxYear))
	}
	if a.code == "" {
		problems = append(problems, "Agreement code is required")
	}
	if len(a.code) > 20 {
		problems = append(problems, "Agreement code must be at most 20 characters long")
	}
	if a.revision < 1 || a.revision > MaxRevision {
		problems = append(problems, fmt.Sprintf("Agreement revision must be between 1 and %d", MaxRevision))
	}
	if a.revisionDate.IsZero() {
		problems = append(problems, "Agreement revision date is required")
	}
	if a.providerPlanID == uuid.Nil {
		problems = append(problems, "Agreement provider plan is required")
	}
	if a.localPlanID == uuid.Nil {
		problems = append(problems, "Agreement local plan is required")
	}
	if a.name == "" {
		problems = append(problems, "Agreement name is required")
	}
	if len(a.name) > 100 {
		problems = append(problems, "Agreement name must be at most 100 characters long")
	}
	if len(a.description) > 500 {
		problems = append(problems, "Agreement description must be at most 500 characters long")
	}
	if !validation.IsEmail(a.contactEmail) {
		problems = append(problems, "Agreement contact email must be a valid email address")
	}
	if a.comment != nil && len(*a.comment) > 500 {
		problems = append(problems, "Agreement comment must be at most 500 characters long")
	}
	if a.documentURL != nil {
		if len(*a.documentURL) > 300 {
			problems = append(problems, "Agreement document URL must be at most 300 characters long")
		}
		if !validation.IsURL(*a.documentURL) {
			problems = append(problems, "Agreement document URL must be a valid URL")
		}
	}

	if len(problems) > 0 {
		return errors.NewValidationError(strings.Join(problems, ". "))
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
