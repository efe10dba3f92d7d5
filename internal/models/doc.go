// Package models defines the core domain models for Clubhouse.
//
// # Models
//
//   - User: a registered account, with a site-wide SiteRole
//   - Group: a club that users join
//   - Membership: the (group, user, role) relation that drives authorization
//   - Activity: a scheduled event owned by a group
//   - AttendanceRecord: one user's RSVP intent and check-in result for an activity
//   - LedgerEntry: an immutable signed amount recorded against a group
//
// # Design Principles
//
// 1. **Two authorization axes**: SiteRole governs site administration only and
// GroupRole governs everything inside a group. They are distinct types so one
// can never be passed where the other is expected.
// 2. **IDs, not pointers**: relationships are UUID strings, as stored.
// 3. **Computed, not stored**: balances and attendance counts are derived on read.
// 4. **Append-only money**: ledger entries have no update path.
package models
