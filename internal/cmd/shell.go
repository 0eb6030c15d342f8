package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dendrascience/vfsh/archive"
	"github.com/dendrascience/vfsh/internal/config"
	"github.com/dendrascience/vfsh/internal/logging"
	"github.com/dendrascience/vfsh/internal/tui"
	"github.com/dendrascience/vfsh/shell"
	"github.com/dendrascience/vfsh/vfs"
)

func addShellFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("archive", "a", "", "Zip archive to load instead of the built-in filesystem")
	flags.StringP("script", "s", "", "Host path of a script to run at startup")
	flags.StringP("env-file", "e", "", "Dotenv file merged into the session environment")
	flags.String("prompt", "", "Prompt template, e.g. '$USER:$PWD$ '")
	flags.String("home", "", "Value of $HOME inside the session")
	flags.String("user", "", "Value of $USER inside the session")
	flags.String("interactive", "", "Terminal UI mode: auto, always or never")
}

func runShell(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}

	mode := tui.ResolveMode(cfg.Interactive)
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, mode == tui.ModeInteractive)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	entries := vfs.DefaultEntries()
	if cfg.Archive != "" {
		entries, err = archive.Load(cfg.Archive)
		if err != nil {
			logger.Error("startup archive failed", "archive", cfg.Archive, "err", err)
			return err
		}
	}

	var extra map[string]string
	if cfg.EnvFile != "" {
		extra, err = config.ReadEnvFile(cfg.EnvFile)
		if err != nil {
			return err
		}
	}

	env := shell.NewSessionEnv(cfg.Home, cfg.User, time.Now(), extra)
	fs := vfs.New(entries, vfs.WithLogger(logging.Component(logger, "vfs")))
	sh := shell.New(fs, env,
		shell.WithLogger(logging.Component(logger, "shell")),
		shell.WithPrompt(cfg.Prompt),
		shell.WithSource(cfg.Archive),
	)
	logger.Info("session started", "mode", mode, "source", sh.Source(), "entries", fs.Len(), "session", env.Get("SESSION"))

	startup := sh.Banner(cfg.Script)
	var exit bool
	if cfg.Script != "" {
		res := sh.RunScriptFile(cfg.Script)
		startup = append(startup, res.Lines...)
		exit = res.Exit
	}

	out := cmd.OutOrStdout()
	if mode == tui.ModeInteractive && !exit {
		return tui.Run(cmd.Context(), tui.NewModel(sh, startup))
	}
	if err := shell.WriteLines(out, startup); err != nil {
		return err
	}
	if exit {
		return nil
	}
	return serveLines(cmd, sh, cmd.InOrStdin(), out)
}

func serveLines(cmd *cobra.Command, sh *shell.Shell, in io.Reader, out io.Writer) error {
	err := sh.Serve(cmd.Context(), in, out)
	if err != nil && cmd.Context().Err() != nil {
		return nil
	}
	return err
}
