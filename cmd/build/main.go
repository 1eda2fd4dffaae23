package build

import (
	"io"

	"github.com/mediaroulette/resmanifest/builder"
	"github.com/mediaroulette/resmanifest/logger"
	"github.com/mediaroulette/resmanifest/manifest"
	"github.com/mediaroulette/resmanifest/plan"
	"github.com/mediaroulette/resmanifest/report"
	"github.com/mediaroulette/resmanifest/walk"
	"github.com/spf13/cobra"
)

var configFile = ""
var format = ""
var quiet = false
var noColor = false
var verbose = false
var jsonLog = false

// Options controls console output of Run.
type Options struct {
	Quiet   bool
	NoColor bool
}

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "build [resources_dir] [output_file]",
	Short: "Scan a resources directory and write its manifest",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(verbose, jsonLog)
		defer logger.Close()

		p := plan.Default()
		if err := plan.ParseFile(configFile, &p); err != nil {
			logger.AddSummaryError("Build plan not loaded", "error", err)
			return err
		}
		if p.Path() != "" {
			logger.Debug("Loaded build plan", "path", p.Path())
		}
		root, output := "", ""
		if len(args) > 0 {
			root = args[0]
		}
		if len(args) > 1 {
			output = args[1]
		}
		p.Override(root, output, format)

		_, err := Run(p, cmd.OutOrStdout(), Options{Quiet: quiet, NoColor: noColor})
		if err != nil {
			logger.AddSummaryError("Manifest not written", "error", err)
		}
		return err
	},
}

// Run builds the manifest described by p and writes it. Progress goes to
// out unless opts.Quiet is set. Nothing is written when any step fails.
func Run(p plan.Plan, out io.Writer, opts Options) (*manifest.Document, error) {
	f, err := manifest.ParseFormat(p.Format)
	if err != nil {
		return nil, err
	}
	if err := walk.CheckRoot(p.Root); err != nil {
		return nil, err
	}
	outPath := p.OutputPath()

	console := report.NewConsole(out)
	console.NoColor = opts.NoColor
	var reporter builder.Reporter = console
	if opts.Quiet {
		reporter = report.Nop{}
	} else {
		console.Banner()
	}

	logger.Debug("Building manifest", "root", p.Root, "output", outPath, "format", f)
	b := builder.New(p.Root, reporter)
	b.Skip = []string{outPath}
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := doc.Write(outPath, f); err != nil {
		return nil, err
	}
	logger.Info("Manifest written", "path", outPath, "files", doc.Summary.TotalFiles, "bytes", doc.Summary.TotalSize)
	if !opts.Quiet {
		console.Written(outPath, doc.Summary)
	}
	return doc, nil
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", configFile, "Build plan file (YAML or JSON)")
	flags.StringVarP(&format, "format", "f", format, "Output format: json or yaml")
	flags.BoolVarP(&quiet, "quiet", "q", quiet, "Do not print progress")
	flags.BoolVar(&noColor, "no-color", noColor, "Do not color progress output")
	flags.BoolVarP(&verbose, "verbose", "v", verbose, "Verbose logging")
	flags.BoolVar(&jsonLog, "json-log", jsonLog, "Log in JSON format")
}
