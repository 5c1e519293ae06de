// Package config reads and writes the document that lists a user's full name and sites.
//
// Nothing in the document is secret on its own. Generated sites only record how to derive
// their password, and stored sites carry a secret encrypted by the vault package.
//
// # Document shape
//
// The document is TOML by default, and YAML when the file name ends in .yaml or .yml:
//
//	full_name = "John Doe"
//
//	[[sites]]
//	name = "github.com"
//
//	[[sites]]
//	name = "bank.example"
//	type = "stored"
//	encrypted = "AQwAAAAAAAAAJOq..."
//
// A site's type defaults to "generated", its class to the default for its variant, and its
// counter to 1. A counter of 1 is omitted when the document is saved.
package config
