// Package main provides the entityloader binary entry point.
// Entityloader moves the concepts of an RDF document into an entity registry
// and rewrites the document to reference the registry's identifiers.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/c360studio/entityloader/codec"
	"github.com/c360studio/entityloader/remap"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "entityloader"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(1)
		}
	}()

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := rootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return remap.ExitCode(err)
	}
	return 0
}

type options struct {
	input         string
	serialization string
	url           string
	apiKey        string
	configPath    string
	logLevel      string
	natsURL       string
	metricsFile   string
}

func rootCmd(logOut io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName + " -i FILE [-s SERIALIZATION] -u URL -k API_KEY",
		Short: "Load RDF concepts into an entity registry",
		Long: `Entityloader reads an RDF document, creates one registry entity for every
subject typed as a Concept, rewrites the document so every reference to a
concept uses the IRI issued by the registry, and writes each rewritten
concept back to its entity.

Serializations: ` + fmt.Sprint(codec.Labels()) + `. When -s is omitted the
serialization is taken from the file extension.

Exit codes: 0 success, 2 input error, 3 syntax error, 4 creation failed,
5 update failed, 1 anything else.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return run(cmd.Context(), opts, logOut)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input RDF file")
	cmd.Flags().StringVarP(&opts.serialization, "serialization", "s", "", "Input serialization (turtle, ntriples, rdfxml, jsonld)")
	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "Registry base URL")
	cmd.Flags().StringVarP(&opts.apiKey, "api-key", "k", "", "Registry API key")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.natsURL, "nats-url", "", "Publish progress events to this NATS server")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file when done")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
