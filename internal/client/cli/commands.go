package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/auth"
	"github.com/iudanet/tasksync/internal/client/iocli"
	"github.com/iudanet/tasksync/internal/client/storage/boltdb"
	"github.com/iudanet/tasksync/internal/client/storage/sqlite"
	"github.com/iudanet/tasksync/internal/client/sync"
	"github.com/iudanet/tasksync/internal/config"
	"github.com/iudanet/tasksync/internal/logging"
	"github.com/iudanet/tasksync/internal/models"
)

// BuildInfo is set via ldflags during build.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// app собирает зависимости команд после разбора флагов
type app struct {
	viper   *viper.Viper
	io      iocli.IO
	cli     *Cli
	closers []io.Closer
	cfg     config.Config
	cfgFile string
}

func newApp(stdio iocli.IO) *app {
	return &app{viper: config.NewViper(), io: stdio}
}

// NewRootCommand builds the tasksync command tree. The returned function
// releases whatever the executed command opened.
func NewRootCommand(build BuildInfo) (*cobra.Command, func() error) {
	a := newApp(iocli.NewStdio())
	return a.rootCommand(build), a.teardown
}

func (a *app) rootCommand(build BuildInfo) *cobra.Command {
	defaults := config.NewViper()

	root := &cobra.Command{
		Use:           "tasksync",
		Short:         "Synchronizes local tasks, lists and comments with the server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Path to configuration file")
	flags.String("server", defaults.GetString(config.KeyRemoteURL), "Server URL")
	flags.String("db", defaults.GetString(config.KeySQLitePath), "Path to local task database")
	flags.String("meta-db", defaults.GetString(config.KeyBoltPath), "Path to sync metadata database")
	flags.String("log-level", defaults.GetString(config.KeyLogLevel), "Log level (debug, info, warn, error)")
	flags.String("passphrase-file", "", "Path to file containing the session passphrase")

	a.bindFlag(root, config.KeyRemoteURL, "server")
	a.bindFlag(root, config.KeySQLitePath, "db")
	a.bindFlag(root, config.KeyBoltPath, "meta-db")
	a.bindFlag(root, config.KeyLogLevel, "log-level")
	a.bindFlag(root, config.KeyPassphraseFile, "passphrase-file")

	root.AddCommand(
		a.versionCommand(build),
		a.sessionCommand(),
		a.fetchCommand(),
		a.pushCommand(),
		a.runCommand(),
	)
	return root
}

func (a *app) bindFlag(cmd *cobra.Command, key, flag string) {
	if err := a.viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// setup читает конфигурацию и открывает хранилища
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.viper.SetConfigFile(a.cfgFile)
		if err := a.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, logCloser)

	ctx := cmd.Context()
	meta, err := boltdb.New(ctx, cfg.Storage.BoltPath)
	if err != nil {
		return fmt.Errorf("failed to open metadata database: %w", err)
	}
	a.closers = append(a.closers, meta)

	store, err := sqlite.New(ctx, cfg.Storage.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open task database: %w", err)
	}
	a.closers = append(a.closers, store)

	passphrase, err := ReadPassphrase(a.io, cfg.Session)
	if err != nil {
		return err
	}
	session := auth.NewSession(meta, passphrase)

	client := api.NewClient(cfg.Remote.URL, cfg.Remote.Timeout)
	syncService := sync.NewService(client, store, meta, session, logger, sync.Options{
		ReservedTitles:      cfg.Sync.ReservedTitles,
		PushDelay:           cfg.Sync.PushDelay,
		RetryInterval:       cfg.Sync.RetryInterval,
		MaxConcurrentPushes: cfg.Sync.MaxConcurrentPushes,
	})
	a.closers = append(a.closers, stopper{syncService})

	a.cli = New(a.io, session, syncService, store, logger)
	return nil
}

// teardown закрывает ресурсы в обратном порядке
func (a *app) teardown() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// withApp оборачивает команду, которой нужны хранилища и сессия
func (a *app) withApp(cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = a.setup
	return cmd
}

type stopper struct {
	svc *sync.Service
}

func (s stopper) Close() error {
	s.svc.Stop()
	return nil
}

func (a *app) versionCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.io.Println("tasksync")
			a.io.Printf("Version:    %s\n", build.Version)
			a.io.Printf("Build Date: %s\n", build.BuildDate)
			a.io.Printf("Git Commit: %s\n", build.GitCommit)
		},
	}
}

func (a *app) sessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the stored sync session",
	}

	var userID, expiresAt int64
	set := a.withApp(&cobra.Command{
		Use:   "set",
		Short: "Store a server token (read from the terminal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runSessionSet(cmd.Context(), userID, expiresAt)
		},
	})
	set.Flags().Int64Var(&userID, "user-id", 0, "Remote id of the user the token belongs to")
	set.Flags().Int64Var(&expiresAt, "expires-at", 0, "Token expiry as unix seconds (0: never, JWT exp is used when present)")

	status := a.withApp(&cobra.Command{
		Use:   "status",
		Short: "Show the session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runSessionStatus(cmd.Context())
		},
	})

	clearCmd := a.withApp(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runSessionClear(cmd.Context())
		},
	})

	cmd.AddCommand(set, status, clearCmd)
	return cmd
}

func (a *app) fetchCommand() *cobra.Command {
	var manual bool
	var tagID, taskID int64

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Pull remote changes into the local database",
	}
	cmd.PersistentFlags().BoolVar(&manual, "full", false, "Fetch everything and delete local records missing remotely")

	tags := a.withApp(&cobra.Command{
		Use:   "tags",
		Short: "Fetch tags (shared lists)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runFetchTags(cmd.Context(), manual)
		},
	})

	tasks := a.withApp(&cobra.Command{
		Use:   "tasks",
		Short: "Fetch tasks of a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runFetchTasks(cmd.Context(), tagID, manual)
		},
	})
	tasks.Flags().Int64Var(&tagID, "tag", 0, "Local id of the tag")

	updates := a.withApp(&cobra.Command{
		Use:   "updates",
		Short: "Fetch activity of a tag or comments of a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runFetchUpdates(cmd.Context(), tagID, taskID, manual)
		},
	})
	updates.Flags().Int64Var(&tagID, "tag", 0, "Local id of the tag")
	updates.Flags().Int64Var(&taskID, "task", 0, "Local id of the task")

	all := a.withApp(&cobra.Command{
		Use:   "all",
		Short: "Full fetch of tags, tasks and activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runFetchAll(cmd.Context())
		},
	})

	cmd.AddCommand(tags, tasks, updates, all)
	return cmd
}

func (a *app) pushCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push a local record to the server",
	}

	for _, kind := range []models.Kind{models.KindTask, models.KindTagData, models.KindUpdate} {
		cmd.AddCommand(a.withApp(&cobra.Command{
			Use:   string(kind) + " <id>",
			Short: fmt.Sprintf("Push the %s with the given local id", kind),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid id %q", args[0])
				}
				return a.cli.runPush(cmd.Context(), kind, id)
			},
		}))
	}
	return cmd
}

func (a *app) runCommand() *cobra.Command {
	return a.withApp(&cobra.Command{
		Use:   "run",
		Short: "Push local changes and fetch remote ones until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDaemon(cmd.Context(), a.cfg.Sync.FetchInterval)
		},
	})
}

// Execute runs the command tree and reports errors to stderr.
func Execute(ctx context.Context, build BuildInfo) int {
	root, teardown := NewRootCommand(build)
	err := root.ExecuteContext(ctx)
	if cerr := teardown(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
