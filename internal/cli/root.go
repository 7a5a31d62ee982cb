package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/uuidgen"
	"github.com/viant/uuidgen/random"
)

type options struct {
	count      int
	source     string
	upper      bool
	configPath string
	output     string
	traceFile  string
	jsonOutput bool
}

// NewRootCommand returns the uuidgen command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "uuidgen",
		Short: "Generate random (version 4) UUIDs",
		Long: `uuidgen prints random version 4 UUIDs. Random bytes come from the host
secure generator (getrandom on Linux) when available, otherwise from the Go
runtime generator.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	flags := rootCmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", 0, "number of UUIDs to generate (default from config, 1)")
	flags.StringVarP(&opts.source, "source", "s", "", "random source: auto, host or runtime")
	flags.BoolVarP(&opts.upper, "upper", "u", false, "print upper-case UUIDs")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.output, "output", "o", "", "write UUIDs to this URL instead of stdout")
	flags.StringVar(&opts.traceFile, "trace", "", "write trace spans to this file")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	rootCmd.AddCommand(newSourcesCommand(opts))
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, opts *options) (*uuidgen.Config, error) {
	cfg := uuidgen.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = uuidgen.LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = opts.count
	}
	if flags.Changed("source") {
		cfg.Source = opts.source
	}
	if flags.Changed("upper") {
		cfg.UpperCase = opts.upper
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("trace") {
		if opts.traceFile == "" {
			return nil, fmt.Errorf("--trace requires a file name")
		}
		cfg.Tracing.Enabled = true
		cfg.Tracing.OutputFile = opts.traceFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type result struct {
	UUIDs  []string `json:"uuids,omitempty"`
	Source string   `json:"source"`
	Output string   `json:"output,omitempty"`
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	var serviceOptions []uuidgen.Option
	if cfg.Tracing.Enabled && cfg.Tracing.OutputFile == "" {
		// spans must not interleave with identifiers on stdout
		cfg.Tracing.Enabled = false
		serviceOptions = append(serviceOptions, uuidgen.WithTracingWriter(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion, cmd.ErrOrStderr()))
	}
	srv, err := uuidgen.NewServiceFromConfig(cfg, serviceOptions...)
	if err != nil {
		return err
	}
	source, err := srv.Selector().Source()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if cfg.Output != "" {
		if err = srv.Export(ctx, cfg.Output, cfg.Count); err != nil {
			return err
		}
		if opts.jsonOutput {
			return outputJSON(out, &result{Source: source.Name(), Output: cfg.Output})
		}
		return nil
	}
	ids, err := srv.Generate(ctx, cfg.Count)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return outputJSON(out, &result{UUIDs: ids, Source: source.Name()})
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

type sourceInfo struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

func newSourcesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List random sources and their availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := random.NewSelector()
			selected, err := selector.Source()
			if err != nil {
				return err
			}
			var infos []*sourceInfo
			for _, source := range []random.Source{random.Host(), random.Runtime()} {
				infos = append(infos, &sourceInfo{
					Name:      source.Name(),
					Available: source.Available(),
					Selected:  source.Name() == selected.Name(),
				})
			}
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, infos)
			}
			for _, info := range infos {
				marker := " "
				if info.Selected {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-8s available=%v\n", marker, info.Name, info.Available)
			}
			return nil
		},
	}
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
