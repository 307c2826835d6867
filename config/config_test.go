package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: test-secret-key-for-unit-testing\nlog:\n  level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("期望默认端口 8080，实际=%d", cfg.Server.Port)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Errorf("期望默认存储 memory，实际=%s", cfg.Store.Driver)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("期望日志级别 debug，实际=%s", cfg.Log.Level)
	}
	if cfg.Auth.AccessTokenTTL.Minutes() != 15 {
		t.Errorf("期望 AccessTokenTTL=15m，实际=%v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Timesheet.DefaultPageSize != 10 {
		t.Errorf("期望默认分页 10，实际=%d", cfg.Timesheet.DefaultPageSize)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: test-secret-key-for-unit-testing\n")
	t.Setenv("TS_SERVER_PORT", "9090")
	t.Setenv("TS_STORE_DRIVER", "sqlite")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("环境变量应覆盖端口，实际=%d", cfg.Server.Port)
	}
	if cfg.Store.Driver != StoreSQLite {
		t.Errorf("环境变量应覆盖存储驱动，实际=%s", cfg.Store.Driver)
	}
}

func TestLoad_SecretFromEnv(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	t.Setenv("TS_AUTH_JWT_SECRET", "env-secret-key-for-unit-testing")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret-key-for-unit-testing" {
		t.Errorf("环境变量应提供 jwt_secret，实际=%q", cfg.Auth.JWTSecret)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: short\n")
	if _, err := Load(path); err == nil {
		t.Error("过短的 jwt_secret 应校验失败")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:    ServerConfig{Port: 8080},
			Store:     StoreConfig{Driver: StoreMemory},
			Auth:      AuthConfig{JWTSecret: "test-secret-key-for-unit-testing"},
			Timesheet: TimesheetConfig{Timezone: "UTC", DefaultPageSize: 10, MaxPageSize: 100},
		}
	}

	cfg := base()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("合法配置不应报错: %v", err)
	}

	cfg = base()
	cfg.Store.Driver = "mongo"
	if err := cfg.Validate(); err == nil {
		t.Error("未知存储驱动应报错")
	}

	cfg = base()
	cfg.Timesheet.Timezone = "Mars/Olympus"
	if err := cfg.Validate(); err == nil {
		t.Error("无效时区应报错")
	}

	cfg = base()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("端口越界应报错")
	}
}
