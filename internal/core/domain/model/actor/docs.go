// Package actor describes who is acting on an order: a user id plus exactly
// one role. Roles map to pipeline stations (dado, disenador, fresadora,
// calidad, empaque), to the requesting doctor, or to the administrator.
package actor
