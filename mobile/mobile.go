//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.stadium -o build/android/stadium.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Stadium.xcframework -v ./mobile
//
// 移动端没有键盘时场景保持初始位姿静态显示。
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/app"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/logger"
)

func init() {
	log, err := logger.New(true)
	if err != nil {
		panic(err)
	}

	gdataManager, err := game.OpenGdataManager(game.AppName)
	if err != nil {
		log.Warn("Settings will not be persisted", zap.Error(err))
	}
	settings := game.NewSettingsManager(gdataManager, log)

	// 移动端不嵌入 data/，使用内置默认配置
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Scene:   config.DefaultSceneConfig(),
	}, settings, log)
	if err != nil {
		log.Fatal("Failed to create app", zap.Error(err))
	}

	ebiten.SetScreenClearedEveryFrame(false)
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
