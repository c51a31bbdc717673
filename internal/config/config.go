package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	QuitTimes       int  `toml:"quit-times"`
	MessageTimeout  int  `toml:"message-timeout"`
	AlternateScreen bool `toml:"alternate-screen"`
	RestoreCursor   bool `toml:"restore-cursor"`
}

type LogOptions struct {
	Level string `toml:"level"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Log    LogOptions    `toml:"log"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			QuitTimes:       3,
			MessageTimeout:  5,
			AlternateScreen: true,
			RestoreCursor:   true,
		},
		Log: LogOptions{
			Level: "info",
		},
	}
}

// StatusTimeout is how long a status message stays on screen.
func (c Config) StatusTimeout() time.Duration {
	if c.Editor.MessageTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Editor.MessageTimeout) * time.Second
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	if userCfg.Editor.QuitTimes > 0 {
		cfg.Editor.QuitTimes = userCfg.Editor.QuitTimes
	}
	if userCfg.Editor.MessageTimeout > 0 {
		cfg.Editor.MessageTimeout = userCfg.Editor.MessageTimeout
	}
	if md.IsDefined("editor", "alternate-screen") {
		cfg.Editor.AlternateScreen = userCfg.Editor.AlternateScreen
	}
	if md.IsDefined("editor", "restore-cursor") {
		cfg.Editor.RestoreCursor = userCfg.Editor.RestoreCursor
	}
	if level := strings.TrimSpace(userCfg.Log.Level); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("TTE_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "tte"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tte"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
