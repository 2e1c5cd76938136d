package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/fireworks/pkg/embedded"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(override, []byte("explosion:\n  particleCount: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		embed     fstest.MapFS
		path      string
		wantCount int
		wantWidth int
		wantErr   bool
	}{
		{"未嵌入使用默认值", nil, "", 80, 1280, false},
		{"嵌入数据缺少配置文件", fstest.MapFS{"data/other.yaml": {Data: []byte("x: 1\n")}}, "", 80, 1280, false},
		{"嵌入配置", fstest.MapFS{"data/fireworks.yaml": {Data: []byte("window:\n  width: 640\n")}}, "", 80, 640, false},
		{"外部文件优先", fstest.MapFS{"data/fireworks.yaml": {Data: []byte("window:\n  width: 640\n")}}, override, 40, 1280, false},
		{"嵌入配置非法", fstest.MapFS{"data/fireworks.yaml": {Data: []byte("window:\n  width: -1\n")}}, "", 0, 0, true},
		{"外部文件不存在", nil, filepath.Join(dir, "missing.yaml"), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.embed != nil {
				embedded.Init(tt.embed)
			} else {
				embedded.Init(nil)
			}
			t.Cleanup(func() { embedded.Init(nil) })

			cfg, err := loadConfig(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Explosion.ParticleCount != tt.wantCount {
				t.Errorf("ParticleCount = %d, want %d", cfg.Explosion.ParticleCount, tt.wantCount)
			}
			if cfg.Window.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", cfg.Window.Width, tt.wantWidth)
			}
		})
	}
}
