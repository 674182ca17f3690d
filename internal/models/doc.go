// Package models defines the core domain models for moneyman.
//
// # Models
//
//   - Transaction: a single money movement (income, expense, lend, borrow)
//   - Person: a stable identity behind the free-text names entered on
//     lend/borrow transactions
//
// The application state is exactly two collections: the transaction log and
// the person registry. Everything else (totals, per-person balances, period
// breakdowns) is derived from them on demand.
//
// # Design Principles
//
// 1. **Denormalized display name**: Transaction carries both PersonID (the
// stable reference) and Person (the display name at write time). The name is
// rewritten explicitly when the referenced Person is renamed or merged; it is
// never live-resolved at read time.
//
// 2. **Avoid circular references**: relationships use ID strings, not
// pointers.
//
// 3. **Types carry the sign**: Amount is always a non-negative magnitude;
// whether it adds or subtracts is a property of the transaction Type.
package models
