package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/battrack/internal/config"
	"github.com/vk/battrack/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the attributes allowed at the top level of a settings
// file. Anything else is rejected by gohcl as an unsupported argument.
type fileRoot struct {
	RosterPath  *string `hcl:"roster_path,optional"`
	LogLevel    *string `hcl:"log_level,optional"`
	LogFormat   *string `hcl:"log_format,optional"`
	ClearScreen *bool   `hcl:"clear_screen,optional"`
}

// Load parses the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx, err := newEvalContext(path)
	if err != nil {
		return nil, err
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	settings := translate(&root)
	logger.Debug("HCL settings loaded.", "path", path, "settings", describe(settings))
	return settings, nil
}

// newEvalContext exposes config_dir, the absolute directory of the settings
// file, so a roster can be referenced relative to it:
//
//	roster_path = "${config_dir}/players.dat"
func newEvalContext(path string) (*hcl.EvalContext, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving settings path %s: %w", path, err)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(filepath.Dir(abs)),
		},
	}, nil
}

func translate(root *fileRoot) *config.Settings {
	return &config.Settings{
		RosterPath:  root.RosterPath,
		LogLevel:    root.LogLevel,
		LogFormat:   root.LogFormat,
		ClearScreen: root.ClearScreen,
	}
}

// describe lists the keys that were set, for debug logging.
func describe(s *config.Settings) []string {
	var keys []string
	if s.RosterPath != nil {
		keys = append(keys, config.KeyRosterPath)
	}
	if s.LogLevel != nil {
		keys = append(keys, config.KeyLogLevel)
	}
	if s.LogFormat != nil {
		keys = append(keys, config.KeyLogFormat)
	}
	if s.ClearScreen != nil {
		keys = append(keys, config.KeyClearScreen)
	}
	return keys
}
