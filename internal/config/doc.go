// Package config provides configuration loading, merging, and validation
// facilities for the adventure client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. .env file
//  4. Environment variables
//  5. Command-line flags
//
// The JSON file keeps the key names of the historical onapsis-client.config
// (autologin, username, password) so existing files keep working.
package config
