package app

import (
	"fmt"
	"log"

	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/embedded"
)

// 嵌入数据文件路径
const (
	ManagerConfigPath  = "data/manager.yaml"
	RewardProfilesPath = "data/profiles.yaml"
)

// Settings 启动时加载的配置
type Settings struct {
	Manager  config.ManagerConfig
	Profiles *config.RewardProfiles
}

// LoadSettings 从嵌入数据加载调度器配置和奖励预设
//
// 嵌入数据未初始化或文件不存在时使用内置默认值；文件存在但内容无效时返回错误。
func LoadSettings() (Settings, error) {
	s := Settings{
		Manager:  config.DefaultManagerConfig(),
		Profiles: config.DefaultRewardProfiles(),
	}

	if !embedded.IsInitialized() {
		log.Printf("[App] embedded data not initialized, using built-in defaults")
		return s, nil
	}

	if embedded.Exists(ManagerConfigPath) {
		data, err := embedded.ReadFile(ManagerConfigPath)
		if err != nil {
			return s, fmt.Errorf("failed to read %s: %w", ManagerConfigPath, err)
		}
		cfg, err := config.ParseManagerConfig(data)
		if err != nil {
			return s, fmt.Errorf("failed to load %s: %w", ManagerConfigPath, err)
		}
		s.Manager = *cfg
		log.Printf("[Config] 加载调度器配置: %s (targetFPS=%d, poolSize=%d)", ManagerConfigPath, cfg.TargetFPS, cfg.PoolSize)
	} else {
		log.Printf("[Config] %s not found, using default manager config", ManagerConfigPath)
	}

	if embedded.Exists(RewardProfilesPath) {
		data, err := embedded.ReadFile(RewardProfilesPath)
		if err != nil {
			return s, fmt.Errorf("failed to read %s: %w", RewardProfilesPath, err)
		}
		profiles, err := config.ParseRewardProfiles(data)
		if err != nil {
			return s, fmt.Errorf("failed to load %s: %w", RewardProfilesPath, err)
		}
		s.Profiles = profiles
		log.Printf("[Config] 加载奖励预设: %s (%d 个)", RewardProfilesPath, len(profiles.Profiles))
	} else {
		log.Printf("[Config] %s not found, using built-in profiles", RewardProfilesPath)
	}

	return s, nil
}
