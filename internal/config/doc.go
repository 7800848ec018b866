// Package config handles configuration loading for storywizard.
//
// Configuration comes from a YAML file with ${VAR} environment expansion;
// every field has a sensible default so running without a file works.
package config
