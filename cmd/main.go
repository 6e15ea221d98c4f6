package main

import (
	"fmt"
	"log"

	"CareerMode/internal/api"
	"CareerMode/internal/config"
	"CareerMode/internal/pubsub"
	"CareerMode/internal/repository"
	"CareerMode/internal/service"
	"CareerMode/internal/storage"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.InfoLevel)
	logrusLogger.Info("配置文件加载成功")

	// 3. 打开存储（sqlite 本地文件或 postgres，库不存在则先创建），并迁移表结构
	db, err := storage.Open(&cfg.Database, logrusLogger)
	if err != nil {
		logrusLogger.Fatalf("初始化存储失败: %v", err)
	}
	logrusLogger.Infof("存储就绪，驱动: %s", cfg.Database.Driver)

	// 4. 变更广播 + 生涯服务 + 数据管理器
	broker := pubsub.NewBroker(16, logrusLogger)
	defer broker.Close()
	careerService := service.NewCareerService(repository.NewCareerRepository(db), broker, cfg.Career, logrusLogger)
	dataManager := service.NewDataManager(db, careerService, broker, logrusLogger)

	// 5. 配置Gin运行模式（从配置读取：debug/release）
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	// 注册ppof 方便调试和监测性能问题
	pprof.Register(r)
	logrusLogger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 6. 注册API路由
	api.RegisterRoutes(r, dataManager, logrusLogger)

	// 7. 启动服务（从配置读取端口）
	port := cfg.Server.Port
	logrusLogger.Infof("服务启动成功，端口：%d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		logrusLogger.Fatalf("启动服务失败: %v", err)
	}
}
