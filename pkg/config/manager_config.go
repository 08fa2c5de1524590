package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 动画调度器默认值
const (
	DefaultTargetFPS           = 60
	DefaultPoolSize            = 500
	DefaultLowPowerRenderEvery = 2
	DefaultConstrainedScale    = 0.5
)

// ManagerConfig 动画调度器配置
//
// 配置文件位置: data/manager.yaml
type ManagerConfig struct {
	// TargetFPS 帧率上限，早于 1/TargetFPS 到达的帧会被跳过
	TargetFPS int `yaml:"targetFPS"`

	// PoolSize 粒子池最大保留数量
	PoolSize int `yaml:"poolSize"`

	// LowPowerRenderEvery 受限环境下每 N 帧渲染一次（物理仍每帧推进）
	LowPowerRenderEvery int `yaml:"lowPowerRenderEvery"`

	// ConstrainedScale 受限环境下粒子数量的缩放比例
	ConstrainedScale float64 `yaml:"constrainedScale"`
}

// DefaultManagerConfig 返回默认调度器配置
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		TargetFPS:           DefaultTargetFPS,
		PoolSize:            DefaultPoolSize,
		LowPowerRenderEvery: DefaultLowPowerRenderEvery,
		ConstrainedScale:    DefaultConstrainedScale,
	}
}

// LoadManagerConfig 从 YAML 文件加载调度器配置
func LoadManagerConfig(path string) (*ManagerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manager config: %w", err)
	}
	return ParseManagerConfig(data)
}

// ParseManagerConfig 解析 YAML 内容；未出现的字段保持默认值
func ParseManagerConfig(data []byte) (*ManagerConfig, error) {
	cfg := DefaultManagerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manager config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manager config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
func (c *ManagerConfig) Validate() error {
	if c.TargetFPS <= 0 || c.TargetFPS > 240 {
		return fmt.Errorf("targetFPS must be in [1, 240], got %d", c.TargetFPS)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("poolSize must be >= 0, got %d", c.PoolSize)
	}
	if c.LowPowerRenderEvery < 1 {
		return fmt.Errorf("lowPowerRenderEvery must be >= 1, got %d", c.LowPowerRenderEvery)
	}
	if c.ConstrainedScale <= 0 || c.ConstrainedScale > 1 {
		return fmt.Errorf("constrainedScale must be in (0, 1], got %.2f", c.ConstrainedScale)
	}
	return nil
}
