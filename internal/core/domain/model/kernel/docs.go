// Package kernel provides the value objects shared by the pipeline aggregates.
//
// The package includes:
//   - UUID: identifiers for replant tasks and audit events
//   - Strength: two-decimal aromatic-oil strength with the inc/scale adjustment model
//     and the replant offspring rule
//   - Role and Caller: the identity forwarded by the gateway trust headers
//   - NewSerial: the PP/PKG/ORD serial number format
package kernel
