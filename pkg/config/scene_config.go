package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/decker502/stadium/pkg/embedded"
)

// DefaultSceneConfigPath 内置配置文件路径（embed.go 中嵌入）
const DefaultSceneConfigPath = "data/scene.yaml"

// SceneConfig 场景调参配置
//
// 配置文件可以是 YAML 或 TOML，未出现的字段保留默认值。
//
// 配置文件位置: data/scene.yaml
type SceneConfig struct {
	Window WindowConfig `yaml:"window" toml:"window"`
	Camera CameraConfig `yaml:"camera" toml:"camera"`
	Kick   KickConfig   `yaml:"kick" toml:"kick"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// CameraConfig 轨道相机配置
type CameraConfig struct {
	// 初始位姿
	InitialYaw      float64 `yaml:"initialYaw" toml:"initial-yaw"`
	InitialPitch    float64 `yaml:"initialPitch" toml:"initial-pitch"`
	InitialDistance float64 `yaml:"initialDistance" toml:"initial-distance"`

	// 限制范围
	PitchMin    float64 `yaml:"pitchMin" toml:"pitch-min"`
	PitchMax    float64 `yaml:"pitchMax" toml:"pitch-max"`
	DistanceMin float64 `yaml:"distanceMin" toml:"distance-min"`
	DistanceMax float64 `yaml:"distanceMax" toml:"distance-max"`

	// AngleRate 方向键按住时每 tick 的角速度（度）
	AngleRate float64 `yaml:"angleRate" toml:"angle-rate"`
	// ZoomRate 缩放键按住时每 tick 的距离变化
	ZoomRate float64 `yaml:"zoomRate" toml:"zoom-rate"`

	// TrackHeldKeys 为 true 时，松开一个键会回退到同轴仍按住的另一个键；
	// 为 false 时（默认），松开同轴任一键都会把该轴速率清零
	TrackHeldKeys bool `yaml:"trackHeldKeys" toml:"track-held-keys"`

	// 投影参数，只影响渲染
	FieldOfView float64 `yaml:"fieldOfView" toml:"field-of-view"`
	Near        float64 `yaml:"near" toml:"near"`
	Far         float64 `yaml:"far" toml:"far"`
}

// KickConfig 任意球动画参数（单位/tick）
type KickConfig struct {
	StrikerStartX float64 `yaml:"strikerStartX" toml:"striker-start-x"`
	RunSpeed      float64 `yaml:"runSpeed" toml:"run-speed"`
	// KickThreshold 主罚球员到达该X坐标时起脚
	KickThreshold float64 `yaml:"kickThreshold" toml:"kick-threshold"`

	KickVelocityX float64 `yaml:"kickVelocityX" toml:"kick-velocity-x"`
	KickVelocityY float64 `yaml:"kickVelocityY" toml:"kick-velocity-y"`
	SpinRate      float64 `yaml:"spinRate" toml:"spin-rate"`

	// KeeperReactX 球越过该X坐标后门将开始移动
	KeeperReactX float64 `yaml:"keeperReactX" toml:"keeper-react-x"`
	KeeperSpeed  float64 `yaml:"keeperSpeed" toml:"keeper-speed"`

	// GoalLineX 球越过球门线后开始按 Friction 衰减
	GoalLineX   float64 `yaml:"goalLineX" toml:"goal-line-x"`
	Friction    float64 `yaml:"friction" toml:"friction"`
	StopEpsilon float64 `yaml:"stopEpsilon" toml:"stop-epsilon"`
}

// DefaultSceneConfig 返回默认配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Window: WindowConfig{
			Width:  1200,
			Height: 800,
			Title:  "Astu Stadium",
		},
		Camera: CameraConfig{
			InitialYaw:      0,
			InitialPitch:    20,
			InitialDistance: 140,
			PitchMin:        5,
			PitchMax:        89,
			DistanceMin:     20,
			DistanceMax:     300,
			AngleRate:       1,
			ZoomRate:        2,
			TrackHeldKeys:   false,
			FieldOfView:     60,
			Near:            1,
			Far:             500,
		},
		Kick: KickConfig{
			StrikerStartX: -6,
			RunSpeed:      0.15,
			KickThreshold: -0.8,
			KickVelocityX: 0.8,
			KickVelocityY: 0.25,
			SpinRate:      20,
			KeeperReactX:  20,
			KeeperSpeed:   0.15,
			GoalLineX:     45,
			Friction:      0.95,
			StopEpsilon:   0.01,
		},
	}
}

// UnknownConfigKeysError TOML 中出现了无法识别的键
type UnknownConfigKeysError []string

func (e UnknownConfigKeysError) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}

// LoadSceneConfig 从磁盘加载场景配置
//
// 根据扩展名选择解析器：.yaml/.yml 使用 YAML，.toml 使用 TOML。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SceneConfig: 合并默认值后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data, filepath.Ext(path))
}

// LoadEmbeddedSceneConfig 从嵌入资源加载场景配置
// embedded 未初始化或文件不存在时返回默认配置
func LoadEmbeddedSceneConfig(path string) (*SceneConfig, error) {
	if !embedded.Exists(path) {
		return DefaultSceneConfig(), nil
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config: %w", err)
	}
	return ParseSceneConfig(data, filepath.Ext(path))
}

// ParseSceneConfig 解析配置内容
//
// 参数:
//   - data: 文件内容
//   - ext: 扩展名（".yaml"、".yml" 或 ".toml"）
func ParseSceneConfig(data []byte, ext string) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse scene config: %w", err)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scene config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			var unknown UnknownConfigKeysError
			for _, key := range undecoded {
				unknown = append(unknown, key.String())
			}
			return nil, unknown
		}
	default:
		return nil, fmt.Errorf("unsupported scene config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 保证相机限制范围可用、初始位姿落在范围内，
// 且任意球动画一定会结束（助跑速度为正、球门线可达、衰减系数小于 1）
func (c *SceneConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	cam := c.Camera
	if cam.PitchMin >= cam.PitchMax {
		return fmt.Errorf("pitch range invalid: min(%.1f) >= max(%.1f)", cam.PitchMin, cam.PitchMax)
	}
	if cam.PitchMin <= -90 || cam.PitchMax >= 90 {
		return fmt.Errorf("pitch range must stay inside (-90, 90), got [%.1f, %.1f]", cam.PitchMin, cam.PitchMax)
	}
	if cam.DistanceMin <= 0 || cam.DistanceMin >= cam.DistanceMax {
		return fmt.Errorf("distance range invalid: min(%.1f) max(%.1f)", cam.DistanceMin, cam.DistanceMax)
	}
	if cam.InitialPitch < cam.PitchMin || cam.InitialPitch > cam.PitchMax {
		return fmt.Errorf("initial pitch %.1f outside [%.1f, %.1f]", cam.InitialPitch, cam.PitchMin, cam.PitchMax)
	}
	if cam.InitialDistance < cam.DistanceMin || cam.InitialDistance > cam.DistanceMax {
		return fmt.Errorf("initial distance %.1f outside [%.1f, %.1f]", cam.InitialDistance, cam.DistanceMin, cam.DistanceMax)
	}
	if cam.AngleRate <= 0 || cam.ZoomRate <= 0 {
		return fmt.Errorf("camera rates must be positive, got angle=%.2f zoom=%.2f", cam.AngleRate, cam.ZoomRate)
	}
	if cam.FieldOfView <= 0 || cam.FieldOfView >= 180 || cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("projection invalid: fov=%.1f near=%.2f far=%.2f", cam.FieldOfView, cam.Near, cam.Far)
	}

	k := c.Kick
	if k.RunSpeed <= 0 {
		return fmt.Errorf("kick runSpeed must be positive, got %.3f", k.RunSpeed)
	}
	if k.KickThreshold <= k.StrikerStartX {
		return fmt.Errorf("kick threshold (%.2f) must be ahead of striker start (%.2f)", k.KickThreshold, k.StrikerStartX)
	}
	if k.KickVelocityX <= k.StopEpsilon {
		return fmt.Errorf("kick velocityX (%.3f) must exceed stopEpsilon (%.3f)", k.KickVelocityX, k.StopEpsilon)
	}
	if k.GoalLineX < 0 {
		return fmt.Errorf("goal line must be ahead of the ball, got %.2f", k.GoalLineX)
	}
	if k.Friction <= 0 || k.Friction >= 1 {
		return fmt.Errorf("kick friction must be in (0, 1), got %.3f", k.Friction)
	}
	if k.StopEpsilon <= 0 {
		return fmt.Errorf("kick stopEpsilon must be positive, got %.4f", k.StopEpsilon)
	}
	if k.KeeperSpeed < 0 {
		return fmt.Errorf("keeper speed must not be negative, got %.3f", k.KeeperSpeed)
	}
	return nil
}
