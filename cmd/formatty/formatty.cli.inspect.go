package main

import (
	"io"

	"github.com/itsatony/go-formatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// specOutput is the YAML view of a parsed format spec
type specOutput struct {
	Fill      string `yaml:"fill"`
	Align     string `yaml:"align,omitempty"`
	Sign      string `yaml:"sign"`
	Alternate bool   `yaml:"alternate"`
	ZeroPad   bool   `yaml:"zero_pad"`
	Width     int    `yaml:"width"`
	Precision *int   `yaml:"precision,omitempty"`
	Type      string `yaml:"type,omitempty"`
	Canonical string `yaml:"canonical"`
}

func newTokenizeCmd(st *cliState) *cobra.Command {
	var templateFile string

	cmd := &cobra.Command{
		Use:   CmdNameTokenize + " [template]",
		Short: HelpTokenizeShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _, err := templateSource(templateFile, args, st.stdin)
			if err != nil {
				return err
			}

			tokens, err := formatty.Tokenize(source)
			if err != nil {
				return newCLIError(ExitCodeSyntaxError, ErrMsgCompileFailed, err)
			}
			return writeYAML(st.stdout, tokens)
		},
	}

	cmd.Flags().StringVarP(&templateFile, FlagTemplateFile, FlagTemplateFileShort, "", `template file ("-" for stdin)`)
	return cmd
}

func newSpecCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   CmdNameSpec + " <spec>",
		Short: HelpSpecShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(st.stdout, newSpecOutput(formatty.ParseSpec(args[0])))
		},
	}
}

func newSpecOutput(s formatty.Spec) specOutput {
	out := specOutput{
		Fill:      string(s.FillRune()),
		Sign:      string(rune(s.SignPolicy())),
		Alternate: s.Alternate,
		ZeroPad:   s.ZeroPad,
		Width:     s.Width,
		Canonical: s.String(),
	}
	if s.Align != 0 {
		out.Align = string(rune(s.Align))
	}
	if s.HasPrecision {
		p := s.Precision
		out.Precision = &p
	}
	if s.Type != 0 {
		out.Type = string(s.Type)
	}
	return out
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return newCLIError(ExitCodeError, ErrMsgEncodeOutputFailed, err)
	}
	if err := enc.Close(); err != nil {
		return newCLIError(ExitCodeError, ErrMsgEncodeOutputFailed, err)
	}
	return nil
}
