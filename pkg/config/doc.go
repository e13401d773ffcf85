// Package config defines the jsond server configuration and its loading
// chain.
//
// Configuration is assembled from four sources, lowest to highest
// precedence:
//
//  1. Built-in defaults (Default)
//  2. A YAML config file (LoadFile)
//  3. JSOND_* environment variables (ApplyEnv)
//  4. CLI flags (applied by the cli package)
//
// The only persisted inputs are the snapshot source settings: an optional
// remote URL, and an ordered list of local file candidates used when the URL
// is absent or unreachable.
package config
