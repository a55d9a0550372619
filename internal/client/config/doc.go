// Package config loads runtime configuration for the filekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the file-manager backend
//	-d string   directory downloads are saved into
//	-t int      request timeout in seconds (0 keeps transport defaults)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap, zap-console
//	-m string   address to serve Prometheus metrics on (empty disables)
//
// # File schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	server_url: http://127.0.0.1:5000
//	download_dir: downloads
//	request_timeout: 10s
//	log_level: info
//	log_format: text
//	metrics_addr: ":9102"
package config
