// Package dexcom provides the live glucose source backed by the Dexcom Share
// web service.
//
// # Protocol
//
// A reading takes up to three POST requests against the regional base URL:
//
//   - General/AuthenticatePublisherAccount exchanges the account name and
//     password for an account id (once per process)
//   - General/LoginPublisherAccountById exchanges the account id for a
//     session id
//   - Publisher/ReadPublisherLatestGlucoseValues returns at most one value
//     from the last ten minutes
//
// Ids are UUIDs. The service answers a failed login with the all-zero UUID
// instead of an error, so both ids are validated before use.
//
// # Regions
//
//   - us: share2.dexcom.com
//   - ous: shareous1.dexcom.com (default)
//   - jp: share.dexcom.jp
//
// # Units
//
// Values arrive in mg/dL and are converted to mmol/L rounded to one decimal,
// which is the unit the gauge classifies and displays.
//
// # Error Handling
//
// Missing or rejected credentials are wrapped in source.ErrCredentials. An
// expired session is renewed once per Fetch. Every other failure is returned
// as-is; the polling loop records it as a missing reading. The client never
// retries on its own.
package dexcom
