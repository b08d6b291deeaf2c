package email

import (
	"strings"

	"sscsrobotics/internal/ccd"
)

// UniqueID returns the per-appellant identifier used to name attachments,
// e.g. "Bloggs_533". It combines the surname with the trailing digits of the
// NINO so repeated dispatches for the same appellant correlate.
func UniqueID(appellant *ccd.Appellant) string {
	surname := "Appellant"
	if appellant != nil && appellant.Name != nil {
		if s := strings.ReplaceAll(strings.TrimSpace(appellant.Name.LastName), " ", ""); s != "" {
			surname = s
		}
	}

	var nino string
	if appellant != nil && appellant.Identity != nil {
		nino = appellant.Identity.Nino
	}
	digits := make([]rune, 0, len(nino))
	for _, r := range nino {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	suffix := string(digits)
	if len(suffix) > 3 {
		suffix = suffix[len(suffix)-3:]
	}
	if suffix == "" {
		return surname
	}
	return surname + "_" + suffix
}
