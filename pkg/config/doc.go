// Package config defines the service configuration model and its loading
// pipeline: YAML file, defaults, PLANCHECK_* environment overrides, and
// validation.
//
// The loading sequence is always file -> defaults -> environment ->
// validation, so an invalid configuration is rejected before the service
// starts regardless of where the bad value came from.
package config
