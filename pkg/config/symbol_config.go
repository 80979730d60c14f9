package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// symbolRefPattern 从资源引用中取出符号编号，如 "assets/symbols/03.png" -> "03"
var symbolRefPattern = regexp.MustCompile(`/(\d+)\.(?:png|svg)$`)

// SymbolAssetRef 返回第 index 个符号（1 起）的资源引用
// 编号固定两位补零，如 "assets/symbols/03.png"
func SymbolAssetRef(index int) string {
	return fmt.Sprintf("%s/%02d.png", SymbolAssetDir, index)
}

// ParseSymbolIndex 从资源引用解析符号编号
func ParseSymbolIndex(ref string) (int, error) {
	match := symbolRefPattern.FindStringSubmatch(ref)
	if match == nil {
		return 0, fmt.Errorf("symbol ref %q has no numeric index", ref)
	}

	index, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("symbol ref %q: %w", ref, err)
	}
	if index < 1 {
		return 0, fmt.Errorf("symbol ref %q: index %d out of range", ref, index)
	}
	return index, nil
}
