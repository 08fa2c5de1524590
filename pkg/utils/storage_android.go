//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDataDir 在打开 gdata 之前确保 Android 上的数据目录存在并可写
//
// gdata 在 Android 上写入 /data/data/{package}/saves，但不会预先创建该目录。
func EnsureDataDir() error {
	dir := DataDir()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", saves, err)
	}

	probe := filepath.Join(saves, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("data directory %s is not writable: %w", saves, err)
	}
	os.Remove(probe)
	return nil
}

// DataDir 返回应用私有数据目录，无法识别包名时返回空字符串
func DataDir() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一个字段是包名
	pkg := strings.TrimSpace(strings.SplitN(string(data), "\x00", 2)[0])
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
