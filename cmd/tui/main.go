package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"CareerMode/internal/client"
	"CareerMode/internal/config"
	"CareerMode/internal/interfaces"
	"CareerMode/internal/pubsub"
	"CareerMode/internal/repository"
	"CareerMode/internal/service"
	"CareerMode/internal/storage"
	"CareerMode/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configDir  string
	serverURL  string
	useRemote  bool
	logFile    string
	skipSplash bool
)

var rootCmd = &cobra.Command{
	Use:   "career",
	Short: "Career Mode - manage a football club from the terminal",
	Long: `Starts the career mode terminal client.

By default careers are stored in the local database configured under
database in config.yaml. With --server (or --remote) the client talks
to a running career server instead.`,
	RunE: runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&configDir, "config", "./config", "directory containing config.yaml")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "career server URL, e.g. http://127.0.0.1:8080")
	rootCmd.Flags().BoolVar(&useRemote, "remote", false, "use client.base_url from config.yaml")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")
	rootCmd.Flags().BoolVar(&skipSplash, "no-splash", false, "skip the splash screen")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigOrDefault(configDir)
	if err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("打开日志文件失败: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	gateway, closeFn, err := buildGateway(cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	app := ui.NewApp(ctx, gateway, logger, ui.Options{
		LeagueName:  cfg.Career.LeagueName,
		CallTimeout: time.Duration(cfg.Client.Timeout) * time.Second,
		SkipSplash:  skipSplash,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("终端界面退出异常: %w", err)
	}
	return nil
}

// buildGateway 远端模式连接服务端；否则打开本地存储，与服务端使用同一套服务
func buildGateway(cfg *config.Config, logger *logrus.Logger) (interfaces.CareerGateway, func(), error) {
	if serverURL != "" || useRemote {
		clientCfg := cfg.Client
		if serverURL != "" {
			clientCfg.BaseURL = serverURL
		}
		logger.Infof("使用远端服务: %s", clientCfg.BaseURL)
		return client.NewRemoteGateway(&clientCfg, logger), func() {}, nil
	}

	db, err := storage.Open(&cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化本地存储失败: %w", err)
	}
	broker := pubsub.NewBroker(16, logger)
	careerService := service.NewCareerService(repository.NewCareerRepository(db), broker, cfg.Career, logger)
	dataManager := service.NewDataManager(db, careerService, broker, logger)

	closeFn := func() {
		broker.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return dataManager, closeFn, nil
}
