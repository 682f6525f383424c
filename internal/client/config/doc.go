// Package config loads runtime configuration for the GophSpend CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with GOPHSPEND_ (a .env file is honoured).
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the finance API
//	-s string   token storage backend: auto, keyring, file, memory
//	-p string   SQLite file for the file backend
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations accept strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "https://api.example.com",
//	  "storage_backend": "file",
//	  "storage_path": "/var/lib/gophspend/session.db",
//	  "request_timeout": "15s",
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
//
// # Environment
//
//	GOPHSPEND_SERVER_URL, GOPHSPEND_STORAGE_BACKEND, GOPHSPEND_STORAGE_PATH,
//	GOPHSPEND_KEYRING_SERVICE, GOPHSPEND_REQUEST_TIMEOUT (e.g. "10s"),
//	GOPHSPEND_LOG_LEVEL, GOPHSPEND_LOG_FORMAT
package config
