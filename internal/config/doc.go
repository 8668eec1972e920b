// Package config loads and merges ntfy client configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (NTFY_URL, NTFY_TOPIC, NTFY_METHOD)
//  3. Config file ($XDG_CONFIG_HOME/ntfy/config, flat KEY=VALUE assignments)
//  4. Built-in defaults (https://ntfy.sh, general, POST)
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetKey] to update a single key.
package config
