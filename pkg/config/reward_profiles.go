package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/rewardfx/pkg/types"
)

// RewardProfile 命名的奖励动画预设
//
// 配置文件位置: data/profiles.yaml
type RewardProfile struct {
	// Name 预设名称（唯一）
	Name string `yaml:"name"`

	// Type 动画类型字符串键（如 "confetti"）
	Type string `yaml:"type"`

	// Controls 为 true 时启用暂停/恢复/重播控制
	Controls bool `yaml:"controls"`

	// Options 覆盖动画类型默认值的可选参数
	Options RewardOptions `yaml:"options"`
}

// RewardProfiles 预设列表（保持文件中的顺序）
type RewardProfiles struct {
	Profiles []RewardProfile `yaml:"profiles"`
}

// AnimationType 返回预设对应的动画类型
func (p RewardProfile) AnimationType() (types.AnimationType, bool) {
	return types.ParseAnimationType(p.Type)
}

// LoadRewardProfiles 从 YAML 文件加载奖励预设
func LoadRewardProfiles(path string) (*RewardProfiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reward profiles: %w", err)
	}
	return ParseRewardProfiles(data)
}

// ParseRewardProfiles 解析 YAML 格式的奖励预设
func ParseRewardProfiles(data []byte) (*RewardProfiles, error) {
	var profiles RewardProfiles
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse reward profiles: %w", err)
	}

	if err := profiles.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reward profiles: %w", err)
	}

	return &profiles, nil
}

// Validate 验证预设有效性
//
// 检查：
//   - 名称非空且唯一
//   - 动画类型存在
//   - 可选参数取值合法
func (r *RewardProfiles) Validate() error {
	seen := make(map[string]bool, len(r.Profiles))
	for i, p := range r.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile #%d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate profile name %q", p.Name)
		}
		seen[p.Name] = true

		if _, ok := p.AnimationType(); !ok {
			return fmt.Errorf("profile %q: unknown animation type %q", p.Name, p.Type)
		}
		if err := p.Options.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return nil
}

// Get 按名称查找预设
func (r *RewardProfiles) Get(name string) (RewardProfile, bool) {
	for _, p := range r.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return RewardProfile{}, false
}

// DefaultRewardProfiles 内置预设：每种动画类型一个，未加载 data/profiles.yaml 时使用
func DefaultRewardProfiles() *RewardProfiles {
	profiles := &RewardProfiles{
		Profiles: make([]RewardProfile, 0, types.NumAnimationTypes),
	}
	for at := types.AnimationType(0); at < types.NumAnimationTypes; at++ {
		profiles.Profiles = append(profiles.Profiles, RewardProfile{
			Name: at.String(),
			Type: at.String(),
			// 多阶段的类型默认开启控制，便于暂停观察
			Controls: at == types.AnimationFireworks || at == types.AnimationGalaxy,
		})
	}
	return profiles
}

// Names 按文件顺序返回所有预设名称
func (r *RewardProfiles) Names() []string {
	names := make([]string, len(r.Profiles))
	for i, p := range r.Profiles {
		names[i] = p.Name
	}
	return names
}
