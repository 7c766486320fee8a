// Package migrations contains all schema migration files. Each file
// registers itself via init(), so importing this package from the CLI
// is enough to make every migration known.
package migrations
