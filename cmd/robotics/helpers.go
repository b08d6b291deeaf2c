package main

import (
	"sscsrobotics/internal/ccd"
	"sscsrobotics/internal/robotics"
)

// buildPayload resolves the venue and produces the validated payload for a
// case without dispatching it.
func buildPayload(service *robotics.Service, caseData *ccd.SscsCaseData, ccdID int64, postcode string) (robotics.Payload, error) {
	venue, err := service.ResolveVenue(caseData, postcode)
	if err != nil {
		return nil, err
	}
	return service.CreatePayload(caseData, ccdID, venue)
}
