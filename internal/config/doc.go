// Package config loads spath CLI settings.
//
// Precedence, lowest first: built-in defaults, the YAML file given with
// -config, SPATH_* environment variables, command-line flags (applied by
// cmd/spath). Recognised variables:
//
//	SPATH_LOG_LEVEL   debug|info|warn|error
//	SPATH_LOG_FORMAT  text|json
//	SPATH_QUEUE       lazy|indexed
//	SPATH_REVISITS    true|false
//	SPATH_RENDER      dot|text|none
package config
