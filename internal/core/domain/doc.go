// Package domain defines the core business entities for the TripleTen CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entry: One ranked leaderboard row
//   - Snapshot: One complete leaderboard fetch result
//   - Period: The ranking time-window enumeration
//   - Credentials: The browser-exported cookie jar
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
