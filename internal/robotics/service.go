package robotics

import (
	"context"
	"log/slog"
	"strings"

	"sscsrobotics/internal/airlookup"
	"sscsrobotics/internal/ccd"
	"sscsrobotics/internal/email"
	"sscsrobotics/internal/logging"
)

// Scottish cases are handled by the Glasgow regional processing center and
// route to a different mailbox template.
const scottishCentre = "GLASGOW"

// Service orchestrates one dispatch: venue lookup, mapping, validation,
// attachment assembly, and email delivery. One case per call, synchronous.
type Service struct {
	mapper    *Mapper
	validator Validator
	lookup    airlookup.Service
	sender    email.Sender
	logger    *slog.Logger
}

// NewService wires the dispatch orchestrator.
func NewService(mapper *Mapper, validator Validator, lookup airlookup.Service, sender email.Sender, logger *slog.Logger) *Service {
	return &Service{
		mapper:    mapper,
		validator: validator,
		lookup:    lookup,
		sender:    sender,
		logger:    logging.NewComponentLogger(logger, "dispatch"),
	}
}

// Result describes one completed dispatch.
type Result struct {
	Payload     Payload
	UniqueID    string
	VenueName   string
	Scottish    bool
	Attachments int
}

// Dispatch sends one case to robotics and returns what it produced.
// Mapping and validation failures abort before anything leaves the process;
// an email transport failure aborts after. Case record write-back is a
// separate, caller-invoked step (see UploadService).
func (s *Service) Dispatch(ctx context.Context, caseData *ccd.SscsCaseData, caseID int64, postcode string, pdf []byte, evidence []Evidence) (*Result, error) {
	venueName, err := s.ResolveVenue(caseData, postcode)
	if err != nil {
		return nil, err
	}
	benefitCode := caseData.Appeal.BenefitType.Code

	payload, err := s.CreatePayload(caseData, caseID, venueName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("robotics payload created",
		logging.Int64(logging.FieldCaseID, caseID),
		logging.String(logging.FieldBenefit, benefitCode))

	scottish := isScottish(caseData.RegionalProcessingCenter)

	payloadJSON, err := payload.JSON()
	if err != nil {
		return nil, Wrap(ErrMapping, "dispatch", "serialize payload", err)
	}
	uniqueID := email.UniqueID(caseData.Appeal.Appellant)
	attachments := buildAttachments(payloadJSON, pdf, uniqueID, evidence)

	if err := s.sender.Send(ctx, uniqueID, attachments, scottish); err != nil {
		return nil, Wrap(ErrTransport, "dispatch", "send robotics email", err)
	}
	s.logger.Info("robotics email sent",
		logging.Int64(logging.FieldCaseID, caseID),
		logging.String(logging.FieldBenefit, benefitCode),
		logging.Bool("scottish", scottish),
		logging.Int("attachments", len(attachments)))

	return &Result{
		Payload:     payload,
		UniqueID:    uniqueID,
		VenueName:   venueName,
		Scottish:    scottish,
		Attachments: len(attachments),
	}, nil
}

// ResolveVenue picks the hearing venue for a case: the postcode's venue row,
// ESA or PIP column by benefit type.
func (s *Service) ResolveVenue(caseData *ccd.SscsCaseData, postcode string) (string, error) {
	if caseData == nil || caseData.Appeal == nil || caseData.Appeal.BenefitType == nil {
		return "", Wrap(ErrMapping, "dispatch", "benefit type missing", nil)
	}
	venues, err := s.lookup.Lookup(postcode)
	if err != nil {
		return "", Wrap(ErrMapping, "dispatch", "resolve hearing venue", err)
	}
	if strings.EqualFold(caseData.Appeal.BenefitType.Code, "esa") {
		return venues.ESAVenue, nil
	}
	return venues.PIPVenue, nil
}

// CreatePayload maps and validates a case without dispatching it.
func (s *Service) CreatePayload(caseData *ccd.SscsCaseData, caseID int64, venueName string) (Payload, error) {
	payload, err := s.mapper.Map(Wrapper{
		CaseData:        caseData,
		CCDCaseID:       caseID,
		VenueName:       venueName,
		EvidencePresent: caseData.EvidencePresent,
	})
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func isScottish(rpc *ccd.RegionalProcessingCenter) bool {
	return rpc != nil && strings.EqualFold(rpc.Name, scottishCentre)
}
