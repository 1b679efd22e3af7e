// Package commands provides high-level command implementations for codec.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the generator.
//
// Each command is implemented in its own subdirectory:
//   - generate/   - Generate command
//   - list/       - ListTemplates command
//   - initconfig/ - InitConfig command
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/arthur-debert/codec/pkg/commands/generate"
	"github.com/arthur-debert/codec/pkg/commands/initconfig"
	"github.com/arthur-debert/codec/pkg/commands/list"
)

// Generate renders a template into an output path.
type GenerateOptions = generate.GenerateOptions
type GenerateResult = generate.GenerateResult

func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return generate.Generate(ctx, opts)
}

// ListTemplates lists the templates under the templates root.
type ListTemplatesOptions = list.ListTemplatesOptions
type ListTemplatesResult = list.ListTemplatesResult
type TemplateInfo = list.TemplateInfo

func ListTemplates(opts ListTemplatesOptions) (*ListTemplatesResult, error) {
	return list.ListTemplates(opts)
}

// InitConfig writes a starter configuration file.
type InitConfigOptions = initconfig.InitConfigOptions
type InitConfigResult = initconfig.InitConfigResult

func InitConfig(opts InitConfigOptions) (*InitConfigResult, error) {
	return initconfig.InitConfig(opts)
}
