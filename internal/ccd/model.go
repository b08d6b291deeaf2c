package ccd

import (
	"slices"
	"strings"
)

// SscsCaseData is the appeal case record as held in CCD. The dispatcher only
// reads it, apart from CcdCaseID and the document list which the case updater
// rewrites after a successful payload upload.
type SscsCaseData struct {
	CcdCaseID                string                    `json:"ccdCaseId,omitempty"`
	CaseReference            string                    `json:"caseReference,omitempty"`
	Appeal                   *Appeal                   `json:"appeal,omitempty"`
	RegionalProcessingCenter *RegionalProcessingCenter `json:"regionalProcessingCenter,omitempty"`
	EvidencePresent          string                    `json:"evidencePresent,omitempty"`
	SscsDocuments            []SscsDocument            `json:"sscsDocument,omitempty"`
}

// Appeal groups the appeal-specific sections of the case record.
type Appeal struct {
	BenefitType    *BenefitType    `json:"benefitType,omitempty"`
	Appellant      *Appellant      `json:"appellant,omitempty"`
	Rep            *Representative `json:"rep,omitempty"`
	HearingOptions *HearingOptions `json:"hearingOptions,omitempty"`
	MrnDetails     *MrnDetails     `json:"mrnDetails,omitempty"`
}

// BenefitType identifies the benefit under appeal, e.g. "PIP" or "ESA".
type BenefitType struct {
	Code string `json:"code,omitempty"`
}

// Appellant is the person bringing the appeal.
type Appellant struct {
	Name                     *Name      `json:"name,omitempty"`
	Identity                 *Identity  `json:"identity,omitempty"`
	Address                  *Address   `json:"address,omitempty"`
	Contact                  *Contact   `json:"contact,omitempty"`
	Appointee                *Appointee `json:"appointee,omitempty"`
	IsAddressSameAsAppointee string     `json:"isAddressSameAsAppointee,omitempty"`
}

// Appointee acts on behalf of the appellant.
type Appointee struct {
	Name    *Name    `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
	Contact *Contact `json:"contact,omitempty"`
}

// Representative is an optional third party assisting the appellant.
type Representative struct {
	HasRepresentative string   `json:"hasRepresentative,omitempty"`
	Name              *Name    `json:"name,omitempty"`
	Address           *Address `json:"address,omitempty"`
	Contact           *Contact `json:"contact,omitempty"`
	Organisation      string   `json:"organisation,omitempty"`
}

// Name holds a party's display name parts.
type Name struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// FullName returns the space-joined non-empty name parts, title included.
func (n *Name) FullName() string {
	if n == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{n.Title, n.FirstName, n.LastName} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Identity carries the appellant's identifying numbers.
type Identity struct {
	Nino string `json:"nino,omitempty"`
	Dob  string `json:"dob,omitempty"`
}

// Address is a UK postal address.
type Address struct {
	Line1    string `json:"line1,omitempty"`
	Line2    string `json:"line2,omitempty"`
	Town     string `json:"town,omitempty"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// Contact holds phone and email details for a party.
type Contact struct {
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Mobile string `json:"mobile,omitempty"`
}

// MrnDetails describes the mandatory reconsideration notice preceding the appeal.
type MrnDetails struct {
	DwpIssuingOffice string `json:"dwpIssuingOffice,omitempty"`
	MrnDate          string `json:"mrnDate,omitempty"`
	MrnLateReason    string `json:"mrnLateReason,omitempty"`
}

// HearingOptions captures the appellant's hearing preferences.
type HearingOptions struct {
	WantsToAttend       string        `json:"wantsToAttend,omitempty"`
	Arrangements        []string      `json:"arrangements,omitempty"`
	LanguageInterpreter string        `json:"languageInterpreter,omitempty"`
	Languages           string        `json:"languages,omitempty"`
	SignLanguageType    string        `json:"signLanguageType,omitempty"`
	Other               string        `json:"other,omitempty"`
	ExcludeDates        []ExcludeDate `json:"excludeDates,omitempty"`
}

// Arrangement keys as stored in CCD.
const (
	ArrangementSignLanguage   = "signLanguageInterpreter"
	ArrangementHearingLoop    = "hearingLoop"
	ArrangementDisabledAccess = "disabledAccess"
)

// WantsToAttendHearing reports whether the appellant asked for an oral hearing.
func (h *HearingOptions) WantsToAttendHearing() bool {
	return h != nil && strings.EqualFold(h.WantsToAttend, "yes")
}

// WantsSignLanguageInterpreter reports the sign language arrangement selection.
func (h *HearingOptions) WantsSignLanguageInterpreter() bool {
	return h.hasArrangement(ArrangementSignLanguage)
}

// WantsHearingLoop reports the hearing loop arrangement selection.
func (h *HearingOptions) WantsHearingLoop() bool {
	return h.hasArrangement(ArrangementHearingLoop)
}

// WantsAccessibleHearingRoom reports the accessible room arrangement selection.
func (h *HearingOptions) WantsAccessibleHearingRoom() bool {
	return h.hasArrangement(ArrangementDisabledAccess)
}

func (h *HearingOptions) hasArrangement(name string) bool {
	return h != nil && slices.Contains(h.Arrangements, name)
}

// ExcludeDate is a collection wrapper around a date range, mirroring the CCD
// collection element shape.
type ExcludeDate struct {
	Value *DateRange `json:"value,omitempty"`
}

// DateRange holds ISO calendar dates. The robotics feed assumes start and end
// are always equal and only ever reads the start.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// RegionalProcessingCenter is the office handling the case.
type RegionalProcessingCenter struct {
	Name string `json:"name,omitempty"`
}

// SscsDocument is a document reference attached to the case record.
type SscsDocument struct {
	Value SscsDocumentDetails `json:"value"`
}

// SscsDocumentDetails describes a single attached document.
type SscsDocumentDetails struct {
	DocumentFileName string       `json:"documentFileName,omitempty"`
	DocumentType     string       `json:"documentType,omitempty"`
	DocumentLink     DocumentLink `json:"documentLink"`
}

// DocumentLink points at the stored document.
type DocumentLink struct {
	DocumentURL string `json:"documentUrl,omitempty"`
}

// SscsCaseDetails pairs the CCD numeric case identifier with its data.
type SscsCaseDetails struct {
	ID   *int64        `json:"id,omitempty"`
	Data *SscsCaseData `json:"data,omitempty"`
}
