package config

import "testing"

// TestSymbolAssetRef 测试符号资源编号两位补零
func TestSymbolAssetRef(t *testing.T) {
	tests := map[int]string{
		1:  "assets/symbols/01.png",
		9:  "assets/symbols/09.png",
		10: "assets/symbols/10.png",
	}
	for index, want := range tests {
		if got := SymbolAssetRef(index); got != want {
			t.Errorf("SymbolAssetRef(%d) = %q, want %q", index, got, want)
		}
	}
}

// TestParseSymbolIndex 测试从资源引用解析编号
func TestParseSymbolIndex(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    int
		wantErr bool
	}{
		{"两位补零", "assets/symbols/03.png", 3, false},
		{"十", "assets/symbols/10.png", 10, false},
		{"svg 引用", "/01.svg", 1, false},
		{"无编号", "assets/symbols/star.png", 0, true},
		{"空引用", "", 0, true},
		{"编号为零", "assets/symbols/00.png", 0, true},
		{"扩展名不支持", "assets/symbols/02.gif", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSymbolIndex(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSymbolIndex(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSymbolIndex(%q) = %d, want %d", tt.ref, got, tt.want)
			}
		})
	}

	// 编号可以来回转换
	for i := 1; i <= 10; i++ {
		got, err := ParseSymbolIndex(SymbolAssetRef(i))
		if err != nil || got != i {
			t.Errorf("round trip %d: got (%d, %v)", i, got, err)
		}
	}
}
