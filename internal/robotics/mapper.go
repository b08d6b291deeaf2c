package robotics

import (
	"strings"
	"time"

	"sscsrobotics/internal/ccd"
)

const (
	yes         = "Yes"
	esaCaseCode = "051DD"
	pipCaseCode = "002DD"
)

// Pattern fillers the RPA consumer substitutes for absent representative
// names. These are screen-scraper conventions, not data-quality signals.
const (
	repTitleFiller     = "s/m"
	repFirstNameFiller = "."
	repLastNameFiller  = "."
)

// Mapper converts a case record into the robotics payload. Pure: no I/O, no
// side effects; the clock is injectable so mapping is reproducible in tests.
type Mapper struct {
	now func() time.Time
}

// NewMapper builds a mapper using the wall clock.
func NewMapper() *Mapper {
	return &Mapper{now: time.Now}
}

// NewMapperWithClock builds a mapper with a fixed clock source.
func NewMapperWithClock(now func() time.Time) *Mapper {
	return &Mapper{now: now}
}

// Map produces the payload for one case. A malformed case record (required
// sub-structure missing) returns an ErrMapping-tagged error; Map never
// partially succeeds.
func (m *Mapper) Map(w Wrapper) (Payload, error) {
	if w.CaseData == nil {
		return nil, Wrap(ErrMapping, "map", "case data missing", nil)
	}
	appeal := w.CaseData.Appeal
	if appeal == nil {
		return nil, Wrap(ErrMapping, "map", "appeal missing", nil)
	}
	appellant := appeal.Appellant
	if appellant == nil {
		return nil, Wrap(ErrMapping, "map", "appellant missing", nil)
	}
	if appellant.Name == nil {
		return nil, Wrap(ErrMapping, "map", "appellant name missing", nil)
	}
	if appellant.Identity == nil {
		return nil, Wrap(ErrMapping, "map", "appellant identity missing", nil)
	}
	if appeal.BenefitType == nil {
		return nil, Wrap(ErrMapping, "map", "benefit type missing", nil)
	}
	if appeal.HearingOptions == nil {
		return nil, Wrap(ErrMapping, "map", "hearing options missing", nil)
	}

	obj := Payload{}
	if err := m.buildAppealDetails(obj, appeal, w.VenueName); err != nil {
		return nil, err
	}

	obj["caseId"] = w.CCDCaseID
	obj["evidencePresent"] = w.EvidencePresent

	if appellant.Appointee != nil {
		sameAddress := strings.EqualFold(appellant.IsAddressSameAsAppointee, yes)
		appointee, err := appointeeDetails(appellant.Appointee, sameAddress)
		if err != nil {
			return nil, err
		}
		obj["appointee"] = appointee
	}

	appellantBlock, err := appellantDetails(appellant)
	if err != nil {
		return nil, err
	}
	obj["appellant"] = appellantBlock

	if rep := appeal.Rep; rep != nil {
		if rep.HasRepresentative == "" {
			return nil, Wrap(ErrMapping, "map", "representative present but has-representative indicator missing", nil)
		}
		// Exact, case-sensitive compare: "yes" does not enable the block.
		if rep.HasRepresentative == yes {
			repBlock, err := representativeDetails(rep)
			if err != nil {
				return nil, err
			}
			obj["representative"] = repBlock
		}
	}

	arrangements, err := hearingArrangements(appeal.HearingOptions)
	if err != nil {
		return nil, err
	}
	if len(arrangements) > 0 {
		obj["hearingArrangements"] = arrangements
	}

	return obj, nil
}

func (m *Mapper) buildAppealDetails(obj Payload, appeal *ccd.Appeal, venueName string) error {
	obj["caseCode"] = caseCode(appeal.BenefitType.Code)
	obj["appellantNino"] = appeal.Appellant.Identity.Nino
	// appellantPostCode carries the resolved venue name, not a postcode. The
	// RPA consumer's field name predates venue routing and cannot change.
	obj["appellantPostCode"] = venueName
	obj["appealDate"] = m.now().Format(time.DateOnly)

	mrn := appeal.MrnDetails
	if mrn != nil {
		if mrn.MrnDate != "" {
			obj["mrnDate"] = mrn.MrnDate
		}
		if mrn.MrnLateReason != "" {
			obj["mrnReasonForBeingLate"] = mrn.MrnLateReason
		}
	}
	// The issuing office is read unconditionally downstream of the optional
	// MRN block, so a missing container is a malformed record here.
	if mrn == nil {
		return Wrap(ErrMapping, "map", "mrn details missing", nil)
	}
	if mrn.DwpIssuingOffice != "" {
		obj["pipNumber"] = mrn.DwpIssuingOffice
	}

	obj["hearingType"] = paperOral(appeal.HearingOptions.WantsToAttendHearing())
	if appeal.HearingOptions.WantsToAttendHearing() {
		obj["hearingRequestParty"] = appeal.Appellant.Name.FullName()
	}

	return nil
}

// caseCode is a two-way switch, not a lookup table: every benefit code other
// than ESA maps to the PIP case code.
func caseCode(benefitCode string) string {
	if strings.EqualFold("esa", benefitCode) {
		return esaCaseCode
	}
	return pipCaseCode
}

func appellantDetails(appellant *ccd.Appellant) (map[string]any, error) {
	block := map[string]any{
		"title":     appellant.Name.Title,
		"firstName": appellant.Name.FirstName,
		"lastName":  appellant.Name.LastName,
	}
	return contactDetails(block, "appellant", appellant.Address, appellant.Contact)
}

func appointeeDetails(appointee *ccd.Appointee, sameAddress bool) (map[string]any, error) {
	if appointee.Name == nil {
		return nil, Wrap(ErrMapping, "map", "appointee name missing", nil)
	}
	block := map[string]any{
		"title":                  appointee.Name.Title,
		"firstName":              appointee.Name.FirstName,
		"lastName":               appointee.Name.LastName,
		"sameAddressAsAppellant": yesNo(sameAddress),
	}
	return contactDetails(block, "appointee", appointee.Address, appointee.Contact)
}

func representativeDetails(rep *ccd.Representative) (map[string]any, error) {
	title, firstName, lastName := repTitleFiller, repFirstNameFiller, repLastNameFiller
	if rep.Name != nil {
		if rep.Name.Title != "" {
			title = rep.Name.Title
		}
		if rep.Name.FirstName != "" {
			firstName = rep.Name.FirstName
		}
		if rep.Name.LastName != "" {
			lastName = rep.Name.LastName
		}
	}

	block := map[string]any{
		"title":     title,
		"firstName": firstName,
		"lastName":  lastName,
	}
	if rep.Organisation != "" {
		block["organisation"] = rep.Organisation
	}
	return contactDetails(block, "representative", rep.Address, rep.Contact)
}

// contactDetails fills the shared contact block. Town, county, postcode,
// phone, and email are always present, empty or not; only addressLine2 is
// conditional.
func contactDetails(block map[string]any, party string, address *ccd.Address, contact *ccd.Contact) (map[string]any, error) {
	if address == nil {
		return nil, Wrap(ErrMapping, "map", party+" address missing", nil)
	}
	if contact == nil {
		return nil, Wrap(ErrMapping, "map", party+" contact missing", nil)
	}

	block["addressLine1"] = address.Line1
	if address.Line2 != "" {
		block["addressLine2"] = address.Line2
	}
	block["townOrCity"] = address.Town
	block["county"] = address.County
	block["postCode"] = address.Postcode
	block["phoneNumber"] = contact.Mobile
	block["email"] = contact.Email
	return block, nil
}

func hearingArrangements(options *ccd.HearingOptions) (map[string]any, error) {
	arrangements := map[string]any{}

	if options.Arrangements != nil {
		if options.LanguageInterpreter == yes && options.Languages != "" {
			arrangements["languageInterpreter"] = options.Languages
		}
		if options.WantsSignLanguageInterpreter() && options.SignLanguageType != "" {
			arrangements["signLanguageInterpreter"] = options.SignLanguageType
		}
		arrangements["hearingLoop"] = yesNo(options.WantsHearingLoop())
		arrangements["accessibleHearingRoom"] = yesNo(options.WantsAccessibleHearingRoom())
	} else if options.Other != "" || options.ExcludeDates != nil {
		arrangements["hearingLoop"] = yesNo(false)
		arrangements["accessibleHearingRoom"] = yesNo(false)
	}

	if options.Other != "" {
		arrangements["other"] = options.Other
	}

	if len(options.ExcludeDates) > 0 {
		dates := make([]string, 0, len(options.ExcludeDates))
		for _, excluded := range options.ExcludeDates {
			if excluded.Value == nil {
				return nil, Wrap(ErrMapping, "map", "exclude date value missing", nil)
			}
			// Start and end are assumed equal; only the start is ever read.
			date, err := isoDate(excluded.Value.Start)
			if err != nil {
				return nil, Wrap(ErrMapping, "map", "exclude date unparseable", err)
			}
			dates = append(dates, date)
		}
		arrangements["datesCantAttend"] = dates
	}

	return arrangements, nil
}

func isoDate(value string) (string, error) {
	parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return parsed.Format(time.DateOnly), nil
}

func yesNo(value bool) string {
	if value {
		return yes
	}
	return "No"
}

func paperOral(value bool) string {
	if value {
		return "Oral"
	}
	return "Paper"
}
