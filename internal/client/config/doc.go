// Package config loads runtime configuration for the snoozer CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the stories service
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "api_endpoint_addr": "https://hack-or-snooze-v3.herokuapp.com",
//	  "request_timeout": "10s",
//	  "session_db_path": "session.db"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
