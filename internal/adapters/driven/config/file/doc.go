// Package file provides the TOML-backed implementation of the ConfigStore
// driven port. Settings persist to config.toml under the user config
// directory and survive across CLI invocations.
package file
