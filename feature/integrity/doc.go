// Package integrity audits the catalog and its backends.
//
// The catalog check surfaces conditions reconciliation tolerates silently:
// duplicate ISBNs (first-loaded wins), jacketed records whose trim
// dimensions cannot drive a route decision, and jacketed records with no
// artwork URL. The storage and database checks verify the configured
// backends; unconfigured backends are reported as skipped rather than
// failed.
package integrity
