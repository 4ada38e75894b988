package main

import (
	"context"
	"fmt"

	"github.com/itsatony/go-formatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templateFile string
	argsFile     string
	outputPath   string
	watch        bool
}

func newRenderCmd(st *cliState) *cobra.Command {
	cfg := &renderConfig{}

	cmd := &cobra.Command{
		Use:     CmdNameRender + " [template] [args...]",
		Short:   HelpRenderShort,
		Long:    HelpRenderLong,
		Example: HelpRenderExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), st, cfg, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.templateFile, FlagTemplateFile, FlagTemplateFileShort, "", `template file ("-" for stdin)`)
	f.StringVarP(&cfg.argsFile, FlagArgsFile, FlagArgsFileShort, "", "YAML or JSON arguments file")
	f.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, "output file")
	f.BoolVarP(&cfg.watch, FlagWatch, FlagWatchShort, false, "re-render whenever the template file changes")
	return cmd
}

func runRender(ctx context.Context, st *cliState, cfg *renderConfig, args []string) error {
	if cfg.watch && (cfg.templateFile == "" || cfg.templateFile == InputSourceStdin) {
		return newCLIError(ExitCodeUsageError, ErrMsgWatchNeedsFile, nil)
	}

	source, rest, err := templateSource(cfg.templateFile, args, st.stdin)
	if err != nil {
		return err
	}

	values, err := loadArgsFile(cfg.argsFile, st.stdin)
	if err != nil {
		return err
	}
	values = append(values, parseArgs(rest)...)

	engine, err := st.newEngine()
	if err != nil {
		return err
	}

	render := func(source string) error {
		out, err := renderOnce(engine, source, values)
		if err != nil {
			return err
		}
		return writeOutput(cfg.outputPath, []byte(out), st.stdout)
	}

	if err := render(source); err != nil {
		return err
	}
	if !cfg.watch {
		return nil
	}

	return watchTemplate(ctx, cfg.templateFile, st.logger, func(source string) {
		if err := render(source); err != nil {
			st.logger.Warn(LogMsgWatchRerender, zap.Error(err))
			fmt.Fprintln(st.stderr, err.Error())
		}
	})
}

// renderOnce compiles and renders source. Compile failures are always
// template syntax errors.
func renderOnce(engine *formatty.Engine, source string, values []any) (string, error) {
	r, err := engine.Compile(source)
	if err != nil {
		return "", newCLIError(ExitCodeSyntaxError, ErrMsgCompileFailed, err)
	}

	out, err := r.RenderArgs(values)
	if err != nil {
		return "", newCLIError(ExitCodeError, ErrMsgRenderFailed, err)
	}
	return out, nil
}
