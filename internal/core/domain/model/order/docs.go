// Package order models a MOTA order ("pedido") as the gateway sees it: a
// read/transition view of a record owned by the backend.
//
// The package includes:
//   - Order: the aggregate restored from a backend snapshot
//   - Status: the closed enumeration of pipeline stages and its forward edges
//   - Participants: optional per-station assignees (dado, disenador, fresadora)
//   - BuildTimeline: the tracking checklist derived from the current status
//
// Key business rules:
//   - Status codes are limited to the ten backend codes
//   - The forward chain is Confirmar -> Dado -> Diseño -> Fresadora ->
//     Control de calidad -> Empaque -> Finalizado
//   - Pausa and Rechazado are side states reached only from active stages
//   - Confirmado is only reachable from Finalizado
//   - Advancing a status with no successor is a no-op
//
// Who may trigger a transition is decided by the transition policy in the
// services package; this package only enforces the state machine.
package order
