// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// Zero values are replaced by the defaults the NYC subway data was sized for.
package config
