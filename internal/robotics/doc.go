// Package robotics converts appeal case records into the payload the
// downstream RPA system consumes and orchestrates its dispatch.
//
// The mapper is a pure function over the case record and a resolved venue
// name; every key in the payload is guarded by its inclusion rule because
// the consumer treats absent and empty keys differently. The Service
// sequences venue lookup, mapping, schema validation, attachment assembly,
// and email delivery in a fixed order; UploadService handles the optional,
// best-effort write-back into CCD afterwards.
package robotics
