package robotics_test

import (
	"context"
	"errors"
	"testing"

	"sscsrobotics/internal/airlookup"
	"sscsrobotics/internal/ccd"
	"sscsrobotics/internal/email"
	"sscsrobotics/internal/logging"
	"sscsrobotics/internal/robotics"
)

type fakeLookup struct {
	venues airlookup.BenefitVenues
	err    error
}

func (f fakeLookup) Lookup(string) (airlookup.BenefitVenues, error) {
	return f.venues, f.err
}

type recordingSender struct {
	sends       int
	uniqueID    string
	attachments []email.Attachment
	scottish    bool
	err         error
}

func (r *recordingSender) Send(_ context.Context, uniqueID string, attachments []email.Attachment, scottish bool) error {
	r.sends++
	r.uniqueID = uniqueID
	r.attachments = attachments
	r.scottish = scottish
	return r.err
}

type fakeValidator struct {
	err error
}

func (f fakeValidator) Validate(robotics.Payload) error {
	return f.err
}

func newTestService(t *testing.T, lookup airlookup.Service, validator robotics.Validator, sender email.Sender) *robotics.Service {
	t.Helper()
	if validator == nil {
		real, err := robotics.NewValidator()
		if err != nil {
			t.Fatalf("NewValidator: %v", err)
		}
		validator = real
	}
	mapper := robotics.NewMapperWithClock(fixedClock)
	return robotics.NewService(mapper, validator, lookup, sender, logging.NewNop())
}

func TestDispatchSendsMappedPayload(t *testing.T) {
	lookup := fakeLookup{venues: airlookup.BenefitVenues{PIPVenue: "Leeds", ESAVenue: "Wakefield"}}
	sender := &recordingSender{}
	service := newTestService(t, lookup, nil, sender)

	evidence := []robotics.Evidence{{Filename: "statement.doc", Content: []byte("evidence")}}
	result, err := service.Dispatch(context.Background(), validCase(), 1234567890, "LS1 1AA", []byte("%PDF"), evidence)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if sender.sends != 1 {
		t.Fatalf("sends = %d, want 1", sender.sends)
	}
	if result.Payload["appellantPostCode"] != "Leeds" {
		t.Errorf("appellantPostCode = %v, want Leeds", result.Payload["appellantPostCode"])
	}
	if result.VenueName != "Leeds" {
		t.Errorf("VenueName = %q, want Leeds", result.VenueName)
	}
	if result.UniqueID != "Bloggs_533" || sender.uniqueID != "Bloggs_533" {
		t.Errorf("uniqueID = %q/%q, want Bloggs_533", result.UniqueID, sender.uniqueID)
	}
	if result.Scottish || sender.scottish {
		t.Error("scottish flag set for an English processing centre")
	}
	if result.Attachments != 3 {
		t.Errorf("Attachments = %d, want 3", result.Attachments)
	}

	wantFilenames := []string{"Bloggs_533.txt", "Bloggs_533.pdf", "statement.doc"}
	if len(sender.attachments) != len(wantFilenames) {
		t.Fatalf("attachments = %d, want %d", len(sender.attachments), len(wantFilenames))
	}
	for i, name := range wantFilenames {
		if sender.attachments[i].Filename != name {
			t.Errorf("attachment[%d] = %q, want %q", i, sender.attachments[i].Filename, name)
		}
	}
}

func TestDispatchSelectsVenueByBenefit(t *testing.T) {
	lookup := fakeLookup{venues: airlookup.BenefitVenues{PIPVenue: "Leeds", ESAVenue: "Wakefield"}}

	tests := []struct {
		benefit string
		want    string
	}{
		{"PIP", "Leeds"},
		{"ESA", "Wakefield"},
		{"esa", "Wakefield"},
	}
	for _, tc := range tests {
		sender := &recordingSender{}
		service := newTestService(t, lookup, nil, sender)
		caseData := validCase()
		caseData.Appeal.BenefitType.Code = tc.benefit

		result, err := service.Dispatch(context.Background(), caseData, 1, "LS1 1AA", nil, nil)
		if err != nil {
			t.Fatalf("benefit %q: Dispatch: %v", tc.benefit, err)
		}
		if result.VenueName != tc.want {
			t.Errorf("benefit %q: venue = %v, want %v", tc.benefit, result.VenueName, tc.want)
		}
	}
}

func TestDispatchScottishRouting(t *testing.T) {
	lookup := fakeLookup{venues: airlookup.BenefitVenues{PIPVenue: "Glasgow"}}
	sender := &recordingSender{}
	service := newTestService(t, lookup, nil, sender)

	caseData := validCase()
	caseData.RegionalProcessingCenter = &ccd.RegionalProcessingCenter{Name: "Glasgow"}

	if _, err := service.Dispatch(context.Background(), caseData, 1, "G1 1AA", nil, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !sender.scottish {
		t.Error("scottish flag not set for the Glasgow processing centre")
	}
}

func TestDispatchValidationFailureSendsNothing(t *testing.T) {
	lookup := fakeLookup{venues: airlookup.BenefitVenues{PIPVenue: "Leeds"}}
	sender := &recordingSender{}
	service := newTestService(t, lookup, fakeValidator{err: robotics.Wrap(robotics.ErrValidation, "validate", "bad payload", nil)}, sender)

	_, err := service.Dispatch(context.Background(), validCase(), 1, "LS1 1AA", nil, nil)
	if !errors.Is(err, robotics.ErrValidation) {
		t.Fatalf("Dispatch err = %v, want ErrValidation", err)
	}
	if sender.sends != 0 {
		t.Errorf("sends = %d, want 0", sender.sends)
	}
}

func TestDispatchLookupFailure(t *testing.T) {
	lookup := fakeLookup{err: errors.New("empty postcode")}
	sender := &recordingSender{}
	service := newTestService(t, lookup, nil, sender)

	_, err := service.Dispatch(context.Background(), validCase(), 1, "", nil, nil)
	if !errors.Is(err, robotics.ErrMapping) {
		t.Fatalf("Dispatch err = %v, want ErrMapping", err)
	}
	if sender.sends != 0 {
		t.Errorf("sends = %d, want 0", sender.sends)
	}
}

func TestDispatchTransportFailure(t *testing.T) {
	lookup := fakeLookup{venues: airlookup.BenefitVenues{PIPVenue: "Leeds"}}
	sender := &recordingSender{err: errors.New("smtp refused")}
	service := newTestService(t, lookup, nil, sender)

	_, err := service.Dispatch(context.Background(), validCase(), 1, "LS1 1AA", nil, nil)
	if !errors.Is(err, robotics.ErrTransport) {
		t.Fatalf("Dispatch err = %v, want ErrTransport", err)
	}
	if sender.sends != 1 {
		t.Errorf("sends = %d, want 1", sender.sends)
	}
}

func TestDispatchMissingBenefitType(t *testing.T) {
	sender := &recordingSender{}
	service := newTestService(t, fakeLookup{}, nil, sender)

	_, err := service.Dispatch(context.Background(), &ccd.SscsCaseData{Appeal: &ccd.Appeal{}}, 1, "LS1 1AA", nil, nil)
	if !errors.Is(err, robotics.ErrMapping) {
		t.Fatalf("Dispatch err = %v, want ErrMapping", err)
	}
	if sender.sends != 0 {
		t.Errorf("sends = %d, want 0", sender.sends)
	}
}
