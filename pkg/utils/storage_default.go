//go:build !android

package utils

// EnsureDataDir 非 Android 平台由 gdata 自行创建目录
func EnsureDataDir() error {
	return nil
}

// DataDir 非 Android 平台返回空字符串
func DataDir() string {
	return ""
}
