// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses a settings file, evaluates its attributes against a
// small evaluation context, and translates the result into config.Settings.
package hcl
