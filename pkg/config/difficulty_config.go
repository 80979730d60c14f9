package config

import "fmt"

// Difficulty 难度档位
// 固定顺序：easy → mid → hard → expert
type Difficulty string

const (
	// DifficultyEasy 简单（3 个符号，慢速）
	DifficultyEasy Difficulty = "easy"
	// DifficultyMid 普通（8 个符号，较快）
	DifficultyMid Difficulty = "mid"
	// DifficultyHard 困难（10 个符号，快）
	DifficultyHard Difficulty = "hard"
	// DifficultyExpert 专家（10 个符号，最快）
	DifficultyExpert Difficulty = "expert"
)

// DifficultyConfig 单个难度档位的转轮参数
type DifficultyConfig struct {
	SymbolCount int     // 基础符号数量（≥1），符号编号 1..SymbolCount
	ScrollSpeed float64 // 每帧滚动像素数
}

// difficultyOrder 档位升级顺序
var difficultyOrder = []Difficulty{
	DifficultyEasy,
	DifficultyMid,
	DifficultyHard,
	DifficultyExpert,
}

// difficultyTable 难度参数表（不可变）
var difficultyTable = map[Difficulty]DifficultyConfig{
	DifficultyEasy:   {SymbolCount: 3, ScrollSpeed: 4},
	DifficultyMid:    {SymbolCount: 8, ScrollSpeed: 8},
	DifficultyHard:   {SymbolCount: 10, ScrollSpeed: 10},
	DifficultyExpert: {SymbolCount: 10, ScrollSpeed: 14},
}

// difficultyLabels 难度选择器上显示的名称
var difficultyLabels = map[Difficulty]string{
	DifficultyEasy:   "Easy",
	DifficultyMid:    "Mid",
	DifficultyHard:   "Hard",
	DifficultyExpert: "Expert",
}

// AllDifficulties 按升级顺序返回所有档位
func AllDifficulties() []Difficulty {
	out := make([]Difficulty, len(difficultyOrder))
	copy(out, difficultyOrder)
	return out
}

// ParseDifficulty 解析难度名称（用于命令行参数）
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := difficultyTable[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, mid, hard or expert)", s)
	}
	return d, nil
}

// Config 返回档位对应的转轮参数
// 未知档位属于编程错误，直接 panic
func (d Difficulty) Config() DifficultyConfig {
	cfg, ok := difficultyTable[d]
	if !ok {
		panic(fmt.Sprintf("config: unknown difficulty %q", string(d)))
	}
	return cfg
}

// Next 返回下一档位
// 已是 expert 时返回自身和 false
func (d Difficulty) Next() (Difficulty, bool) {
	for i, cur := range difficultyOrder {
		if cur == d && i+1 < len(difficultyOrder) {
			return difficultyOrder[i+1], true
		}
	}
	return d, false
}

// Label 返回显示名称
func (d Difficulty) Label() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}
	return string(d)
}

// LoopHeight 一组基础符号的总高度（像素）
func (c DifficultyConfig) LoopHeight() float64 {
	return float64(c.SymbolCount) * SymbolImageHeight
}
