// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 以 "data/" 开头的路径从嵌入资源读取（使用前必须调用 Init()），
// 其他路径直接读取本地文件系统（测试、命令行工具使用）。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// dataPrefix 嵌入资源的路径前缀
const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init() 之前访问嵌入资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// ReadFile 根据路径前缀选择嵌入资源或本地文件并读取内容
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)

	if !strings.HasPrefix(path, dataPrefix) {
		return os.ReadFile(path)
	}
	if !initialized {
		return nil, fmt.Errorf("read %s: %w", path, ErrNotInitialized)
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	path = normalize(path)

	if !strings.HasPrefix(path, dataPrefix) {
		_, err := os.Stat(path)
		return err == nil
	}
	if !initialized {
		return false
	}
	_, err := fs.Stat(dataFS, path)
	return err == nil
}
