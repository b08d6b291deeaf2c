// Package dispatchlog keeps a SQLite audit trail of dispatch attempts.
//
// Each dispatch, successful or not, is recorded with a correlation id so
// caseworkers can answer "was case X sent to robotics, and when". The log is
// an audit artifact only: nothing replays from it and it is never consulted
// during dispatch.
package dispatchlog
