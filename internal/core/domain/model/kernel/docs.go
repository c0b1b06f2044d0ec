// Package kernel provides the primitives shared by the MOTA domain model.
//
// The package includes:
//   - ID: the positive numeric identifier the backend uses for orders and users
//
// Kernel values are immutable and safe for concurrent use.
package kernel
