// Package domain contains the core contact-book model for abook.
//
// The domain is terminal- and persistence-agnostic: it does not depend on YAML parsing,
// the TUI, or the filesystem. Adapters map into/from these types.
package domain
