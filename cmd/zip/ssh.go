package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zip-arcade/internal/platform/sshd"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Start the SSH server",
	Long: `Start an SSH server for browsing and sharing levels.

Interactive sessions open the level browser. Sessions with a command run it
and exit:
  ssh -p 2222 localhost generate hard 6 6
  ssh -p 2222 localhost decode <token>

Host key handling:
  - If --host-key (or ssh.host_key in the config) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.zip-arcade/host_key`,
	Args: cobra.NoArgs,
	Run:  runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH listen address (default from config)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	sshCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runSSH(_ *cobra.Command, _ []string) {
	engine, cfg, logger := setup()

	sshCfg := cfg.Server.SSH
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := sshd.NewServer(engine, sshCfg, logger)
	if err != nil {
		fatalf("Error creating server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connect with", "cmd", "ssh -p <port> localhost")
	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("SSH server stopped", "err", err)
		stop()
		os.Exit(1)
	}
}
