// Package cli wires together the Cobra command tree for the ntfy binary.
//
// It defines the root (send) command and the config and version subcommands,
// binds flags, resolves the effective configuration, reads the message body,
// invokes the publish client, and returns deterministic exit codes: 0 on
// delivery, 1 for usage errors, 2 for delivery failures.
package cli
