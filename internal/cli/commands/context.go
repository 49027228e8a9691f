// Package commands implements the memtour subcommands.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/groundwork-labs/memtour/internal/cli/config"
	"github.com/groundwork-labs/memtour/internal/cli/output"
	"github.com/spf13/cobra"
)

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store the renderer in context.
type rendererKey struct{}

// CommandContext bundles the per-invocation dependencies a command needs.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// WithConfig stores the config in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithRenderer stores the renderer in the context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, config.LoggerKey(), l)
}

// GetConfig retrieves the config from the context, falling back to defaults.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Output: config.DefaultOutput,
		Color:  config.DefaultColor,
		Width:  config.DefaultWidth,
	}
}

// GetRenderer retrieves the renderer from the context, falling back to a
// default stdout renderer.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// NewCommandContext builds the CommandContext for a cobra command. When no
// renderer was stored in the context the command's own writers are used, so
// commands behave the same under tests and direct invocation.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	r, ok := ctx.Value(rendererKey{}).(*output.Renderer)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
	}

	return &CommandContext{
		Cfg:      GetConfig(ctx),
		Renderer: r,
		Logger:   config.GetLogger(ctx),
	}
}
