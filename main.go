package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"burnout/config"
	"burnout/database"
	"burnout/history"
	"burnout/middleware"
	"burnout/router"
	"burnout/service"
)

// @title 倦怠风险评估 API
// @version 1.0
// @description 根据描述文本、屏幕时间和睡眠时间评估倦怠风险，并记录历史趋势
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("倦怠风险评估 v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("历史存储初始化失败: %v", err)
	}
	defer database.Close()

	extractor, err := service.NewExtractor(cfg.Sentiment)
	if err != nil {
		log.Fatalf("情绪提取器初始化失败: %v", err)
	}

	publisher, err := service.NewPublisher(context.Background(), cfg.Redis)
	if err != nil {
		// 发布只是附加功能，连不上不阻止启动
		log.Printf("警告: Redis 不可用，预测事件不会发布: %v", err)
		publisher = &service.Publisher{}
	}
	defer publisher.Close()

	predictor := service.NewPredictor(extractor, store,
		service.WithMailer(service.NewEmailService(&cfg.Email)),
		service.WithPublisher(publisher),
	)

	// 初始化 JWT
	middleware.InitJWT(cfg)

	// 设置路由
	r := router.SetupRouter(cfg, predictor)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  倦怠风险评估已启动")
	log.Printf("==========================================")
	log.Printf("  评估面板: http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("  指标:     http://localhost%s/metrics", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}

// openStore 按配置选择 CSV 文件或数据库作为历史存储
func openStore(cfg *config.Config) (history.Store, error) {
	if cfg.History.Driver != "database" {
		return history.NewCSVStore(cfg.History.Path), nil
	}
	if err := database.Init(cfg); err != nil {
		return nil, err
	}
	return history.NewGormStore(database.GetDB())
}
