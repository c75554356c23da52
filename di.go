package settings

import (
	"log/slog"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "settings"

// NewModule creates an Fx module that provides an *Accessor.
// The container must provide a Source. If any options are passed, the module supplies *Config
// built from them; otherwise *Config may be provided externally (e.g., via config.Provider)
// or omitted, in which case defaults apply. A *slog.Logger from the container is used when present.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...ConfigOption) fx.Option {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(&cfg))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			provideAccessor,
			fx.ParamTags("", `optional:"true"`, `optional:"true"`),
		),
	))

	return fx.Module(ModuleName, moduleOpts...)
}

func provideAccessor(source Source, cfg *Config, logger *slog.Logger) (*Accessor, error) {
	var resolved Config
	if cfg != nil {
		resolved = *cfg
	}

	accessor, err := NewFromConfig(source, resolved, logger)
	if err != nil {
		return nil, err
	}

	accessor.logger.Debug("settings accessor ready",
		slog.String("version", Version),
		slog.String("locale", accessor.locale.String()),
		slog.String("time_zone", accessor.locale.Location.String()),
	)

	return accessor, nil
}
