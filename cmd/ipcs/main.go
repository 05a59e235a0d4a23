package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pranshuparmar/ipcs/internal/config"
	"github.com/pranshuparmar/ipcs/internal/logging"
	"github.com/pranshuparmar/ipcs/internal/output"
	"github.com/pranshuparmar/ipcs/internal/report"
	"github.com/pranshuparmar/ipcs/internal/sysvipc"
)

// now is replaced in tests.
var now = time.Now

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes ipcs with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var sel config.Selection

	cmd := &cobra.Command{
		Use:   "ipcs [-qms] [-abcopt]",
		Short: "Report System V IPC facility status",
		Long: `ipcs prints the message queues, shared memory segments and semaphore
sets known to the kernel. With no facility flag all three are reported.

Environment:
  IPCS_LEGACY      report one placeholder record per facility
  IPCS_PROC_ROOT   directory holding the msg, shm and sem tables (default /proc/sysvipc)
  IPCS_SOURCE      label printed in the banner
  IPCS_COLOR       auto, always or never (default never)
  IPCS_LOG_LEVEL   debug, info, warn or error (default warn)
  IPCS_CONFIG      YAML file with the same settings`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			req := report.Request{
				Facilities: sel.Facilities(),
				Options:    sel.Options(),
				Source:     cfg.Source,
				Now:        now(),
				Style:      output.NewStyle(stdout, cfg.Color),
			}
			report.Run(stdout, sysvipc.New(cfg, logger), req, logger)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	sel.AddReportFlags(cmd)
	return cmd
}
