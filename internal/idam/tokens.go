// Package idam carries the auth token bundle presented to HMCTS services.
package idam

import "sscsrobotics/internal/config"

// Tokens bundles the user and service credentials required by CCD and the
// document store.
type Tokens struct {
	Oauth2Token  string
	ServiceToken string
	UserID       string
}

// FromConfig builds the token bundle from configuration.
func FromConfig(cfg *config.Config) Tokens {
	if cfg == nil {
		return Tokens{}
	}
	return Tokens{
		Oauth2Token:  cfg.Idam.Oauth2Token,
		ServiceToken: cfg.Idam.ServiceToken,
		UserID:       cfg.Idam.UserID,
	}
}

// Empty reports whether no credentials are present.
func (t Tokens) Empty() bool {
	return t.Oauth2Token == "" && t.ServiceToken == ""
}
