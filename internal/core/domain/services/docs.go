// Package services provides domain services for the MOTA order lifecycle.
//
// The package includes:
//   - TransitionPolicy: the role-based authorization table deciding who may
//     advance, reject, pause, confirm or assign an order
//
// The rules are data (one row per role) evaluated by a single generic
// evaluator, so the rule set can be tested exhaustively over roles x statuses.
package services
