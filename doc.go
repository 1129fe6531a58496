// Package tally provides the ledger and settlement engine used to share
// expenses among a fixed group of participants.
//
// The core functionalities include:
//   - Participants: the named parties of a group, identified by their name.
//   - Expenses: a single spend event, its amount in the smallest currency
//     unit, the participant who paid it and the participants excluded from
//     sharing its cost.
//   - Ledger: the stateful engine. It owns one signed balance per pair of
//     participants and updates them incrementally as expenses are added.
//   - Settlement: the deterministic, human-readable rendering of the pairwise
//     balances ("bob must give 500 to alice"), and a simplified list of
//     transfers that clears every net position.
//   - Journal: a JSONL script format, replayed into a fresh Ledger, used by
//     the `tly` command-line tool.
//
// The engine is in-memory and single-writer: callers must serialize calls
// that add expenses to a Ledger.
package tally
