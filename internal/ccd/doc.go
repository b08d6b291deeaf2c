// Package ccd models the SSCS appeal case record and talks to the case
// record store.
//
// The types mirror the CCD case data shape field for field so case JSON can
// be decoded without translation. The Updater client submits case events over
// HTTP with the IDAM token bundle; it is only exercised when write-back is
// configured.
package ccd
