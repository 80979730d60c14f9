package config

import "testing"

// TestDifficultyTable 验证难度参数表
func TestDifficultyTable(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		count      int
		speed      float64
	}{
		{DifficultyEasy, 3, 4},
		{DifficultyMid, 8, 8},
		{DifficultyHard, 10, 10},
		{DifficultyExpert, 10, 14},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			cfg := tt.difficulty.Config()
			if cfg.SymbolCount != tt.count {
				t.Errorf("SymbolCount: got %d, want %d", cfg.SymbolCount, tt.count)
			}
			if cfg.ScrollSpeed != tt.speed {
				t.Errorf("ScrollSpeed: got %v, want %v", cfg.ScrollSpeed, tt.speed)
			}
			if got, want := cfg.LoopHeight(), float64(tt.count)*SymbolImageHeight; got != want {
				t.Errorf("LoopHeight: got %v, want %v", got, want)
			}
		})
	}
}

// TestDifficultyNext 测试档位升级顺序
func TestDifficultyNext(t *testing.T) {
	tests := []struct {
		from   Difficulty
		want   Difficulty
		wantOK bool
	}{
		{DifficultyEasy, DifficultyMid, true},
		{DifficultyMid, DifficultyHard, true},
		{DifficultyHard, DifficultyExpert, true},
		{DifficultyExpert, DifficultyExpert, false},
	}

	for _, tt := range tests {
		got, ok := tt.from.Next()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%s.Next() = (%s, %v), want (%s, %v)", tt.from, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestParseDifficulty 测试难度名称解析
func TestParseDifficulty(t *testing.T) {
	for _, d := range AllDifficulties() {
		got, err := ParseDifficulty(string(d))
		if err != nil {
			t.Errorf("ParseDifficulty(%q) error: %v", d, err)
		}
		if got != d {
			t.Errorf("ParseDifficulty(%q) = %q", d, got)
		}
	}

	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
}

// TestDifficultyConfigPanicsOnUnknown 未知档位属于编程错误
func TestDifficultyConfigPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown difficulty")
		}
	}()
	Difficulty("nightmare").Config()
}

// TestAllDifficultiesIsCopy 修改返回值不影响内部顺序
func TestAllDifficultiesIsCopy(t *testing.T) {
	all := AllDifficulties()
	all[0] = DifficultyExpert

	if AllDifficulties()[0] != DifficultyEasy {
		t.Error("AllDifficulties() should return a copy")
	}
}

// TestDifficultyLabel 测试显示名称
func TestDifficultyLabel(t *testing.T) {
	want := map[Difficulty]string{
		DifficultyEasy:   "Easy",
		DifficultyMid:    "Mid",
		DifficultyHard:   "Hard",
		DifficultyExpert: "Expert",
	}
	for d, label := range want {
		if d.Label() != label {
			t.Errorf("%s.Label() = %q, want %q", d, d.Label(), label)
		}
	}
}
