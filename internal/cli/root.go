package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timesheet/backend/config"
	"timesheet/backend/internal/model"
	"timesheet/backend/internal/repository"
	"timesheet/backend/internal/service"
	"timesheet/backend/pkg/jwt"
	applogger "timesheet/backend/pkg/logger"
)

// cliActor 命令行直接操作存储，以管理员身份访问任意员工
var cliActor = service.Actor{UserID: "tsctl", Role: model.RoleAdmin}

// App 命令执行期间共享的依赖
type App struct {
	Timesheet service.TimesheetService
	Export    service.ExportService
	Logger    *zap.Logger

	repo *repository.Repository
}

// Close 释放存储连接
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

type rootOptions struct {
	configPath string
	userID     string
	from       string
	to         string
	verbose    bool
	noColor    bool

	app *App
}

// NewRootCmd 创建 tsctl 顶层命令
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tsctl",
		Short:         "工时数据命令行工具（直接读写存储，无需启动服务）",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			opts.app = app
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.app == nil {
				return nil
			}
			_ = opts.app.Logger.Sync()
			return opts.app.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "配置文件路径（默认 config/config.yaml）")
	pf.StringVarP(&opts.userID, "user", "u", "", "员工 ID")
	pf.StringVar(&opts.from, "from", "", `开始日期，YYYY-MM-DD 或自然语言（如 "last monday"）`)
	pf.StringVar(&opts.to, "to", "", "结束日期，格式同 --from")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "输出调试日志")
	pf.BoolVar(&opts.noColor, "no-color", false, "禁用终端着色")

	root.AddCommand(
		newSummaryCmd(opts),
		newReportCmd(opts),
		newExportCmd(opts),
	)
	return root
}

func newApp(ctx context.Context, opts *rootOptions) (*App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	logCfg := config.LogConfig{Level: "warn", Format: "console"}
	if opts.verbose {
		logCfg.Level = "debug"
	}
	logger, err := applogger.NewLogger(&logCfg)
	if err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	repo, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	svc, err := service.NewService(cfg, repo, jwt.NewManager(&cfg.Auth), nil, logger)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	return &App{
		Timesheet: svc.Timesheet,
		Export:    svc.Export,
		Logger:    logger,
		repo:      repo,
	}, nil
}

// requireUser 所有子命令都针对单个员工
func (o *rootOptions) requireUser() (string, error) {
	if o.userID == "" {
		return "", fmt.Errorf("必须通过 --user 指定员工 ID")
	}
	return o.userID, nil
}

func printf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}
