// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading settings from a
// file. Concrete implementations, such as for HCL, are provided in separate
// packages.
package config
