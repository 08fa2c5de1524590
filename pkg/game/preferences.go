package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/rewardfx/pkg/utils"
)

// Preferences 演示程序的用户偏好
// 与奖励预设不同，偏好由用户在运行时修改并跨启动保留
type Preferences struct {
	SoundEnabled bool    `yaml:"soundEnabled"` // 提示音开关
	SoundVolume  float64 `yaml:"soundVolume"`  // 提示音音量 0.0 ~ 1.0
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏

	// 查看器上次停留的类型和径向模式，空字符串表示默认
	ViewerEffect  string `yaml:"viewerEffect,omitempty"`
	ViewerPattern string `yaml:"viewerPattern,omitempty"`
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() *Preferences {
	return &Preferences{
		SoundEnabled: true,
		SoundVolume:  0.6,
	}
}

// PreferencesAppName gdata 存储使用的应用名
const PreferencesAppName = "rewardfx"

// 存储路径常量
const (
	preferencesObject   = "preferences"
	preferencesProperty = "global"
)

// PreferencesStore 偏好的加载和保存
type PreferencesStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	prefs        *Preferences
}

// OpenPreferencesGdata 打开默认的 gdata 存储；失败时返回 nil 和错误，调用方可据此降级
func OpenPreferencesGdata() (*gdata.Manager, error) {
	if err := utils.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: PreferencesAppName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata: %w", err)
	}
	return m, nil
}

// NewPreferencesStore 创建偏好存储并尝试加载已保存的偏好
//
// 加载失败不是致命错误：记录警告并使用默认偏好。
func NewPreferencesStore(gdataManager *gdata.Manager) *PreferencesStore {
	ps := &PreferencesStore{
		gdataManager: gdataManager,
		prefs:        DefaultPreferences(),
	}
	if err := ps.Load(); err != nil {
		log.Printf("[Preferences] Warning: %v (using defaults)", err)
	}
	return ps
}

// Load 从 gdata 加载偏好；未保存过时使用默认值
func (ps *PreferencesStore) Load() error {
	ps.prefs = DefaultPreferences()
	if ps.gdataManager == nil {
		return nil
	}
	if !ps.gdataManager.ObjectPropExists(preferencesObject, preferencesProperty) {
		return nil
	}

	data, err := ps.gdataManager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	loaded.SoundVolume = utils.Clamp01(loaded.SoundVolume)

	ps.prefs = loaded
	log.Printf("[Preferences] loaded (sound=%v volume=%.2f)", loaded.SoundEnabled, loaded.SoundVolume)
	return nil
}

// Save 保存偏好；降级模式下什么都不做
func (ps *PreferencesStore) Save() error {
	if ps.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(ps.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := ps.gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[Preferences] saved")
	return nil
}

// Persistent 是否能持久化
func (ps *PreferencesStore) Persistent() bool {
	return ps.gdataManager != nil
}

// Get 返回当前偏好（可直接修改，Save 时写回）
func (ps *PreferencesStore) Get() *Preferences {
	return ps.prefs
}

// SetSoundVolume 设置音量，限制在 0.0 ~ 1.0
func (ps *PreferencesStore) SetSoundVolume(volume float64) {
	ps.prefs.SoundVolume = utils.Clamp01(volume)
}

// ToggleSound 切换提示音开关并返回新状态
func (ps *PreferencesStore) ToggleSound() bool {
	ps.prefs.SoundEnabled = !ps.prefs.SoundEnabled
	return ps.prefs.SoundEnabled
}

// SetFullscreen 设置全屏
func (ps *PreferencesStore) SetFullscreen(enabled bool) {
	ps.prefs.Fullscreen = enabled
}

// SetViewer 记录查看器的类型和径向模式
func (ps *PreferencesStore) SetViewer(effect, pattern string) {
	ps.prefs.ViewerEffect = effect
	ps.prefs.ViewerPattern = pattern
}
