// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - LeaderboardGateway: Authenticated hub API access
//   - CredentialStore: Cookie jar persistence
//   - ConfigStore: Application configuration
//   - Renderer: Terminal presentation of snapshots
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
