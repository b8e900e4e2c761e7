// Package config handles loading and parsing the StreamBox configuration
// file.
//
// # Overview
//
// StreamBox reads a small TOML file for the remote endpoints (catalog, image
// base, auth service), the catalog API key, and the local state and log file
// paths. Every field is optional; the client works out of the box against
// the public demo services.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (the -config flag), use it
//  2. Otherwise, use ~/.config/streambox/config.toml
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Default Values
//
//   - Config file: ~/.config/streambox/config.toml
//   - Catalog API: https://api.themoviedb.org/3
//   - Image base:  https://image.tmdb.org/t/p/w500
//   - Auth API:    https://dummyjson.com
//   - State file:  ~/.local/share/streambox/state.json
//   - Log file:    ~/.local/share/streambox/streambox.log
//
// # TOML Format
//
// Example config.toml:
//
//	catalog_url = "https://api.themoviedb.org/3"
//	image_url = "https://image.tmdb.org/t/p/w500"
//	auth_url = "https://dummyjson.com"
//	api_key = "your-tmdb-api-key"
//	state_path = "~/.local/share/streambox/state.json"
//	log_path = "~/.local/share/streambox/streambox.log"
//
// Tilde expansion is performed automatically on the path fields.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable existing
// files, and TOML parse errors. A missing config file is NOT an error.
package config
