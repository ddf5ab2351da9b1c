package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lyrix-tools/lyrix/internal/lyric"
)

//go:embed sample_config.toml
var sampleConfig string

// ASS configures the emitted Dialogue fields and the optional script
// header. Values mirror lyric.ASSOptions.
type ASS struct {
	Layer      int    `toml:"layer"`
	Style      string `toml:"style"`
	MarginL    int    `toml:"margin_l"`
	MarginR    int    `toml:"margin_r"`
	MarginV    int    `toml:"margin_v"`
	ScriptInfo bool   `toml:"script_info"`
	PlayResX   int    `toml:"play_res_x"`
	PlayResY   int    `toml:"play_res_y"`
	Font       string `toml:"font"`
	FontSize   int    `toml:"font_size"`
}

// Config is the on-disk TOML configuration.
type Config struct {
	ASS ASS `toml:"ass"`
}

// Default returns the documented defaults: layer 0, style Default, zero
// margins, bare [Events] header.
func Default() Config {
	opts := lyric.DefaultASSOptions()
	return Config{ASS: ASS{
		Layer:      opts.Layer,
		Style:      opts.Style,
		MarginL:    opts.MarginL,
		MarginR:    opts.MarginR,
		MarginV:    opts.MarginV,
		ScriptInfo: opts.ScriptInfo,
		PlayResX:   opts.PlayResX,
		PlayResY:   opts.PlayResY,
		Font:       opts.Font,
		FontSize:   opts.FontSize,
	}}
}

// Load reads a TOML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteSample writes the annotated sample config to path. It refuses to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0644)
}

// ASSOptions converts the config into emitter options.
func (c Config) ASSOptions() lyric.ASSOptions {
	return lyric.ASSOptions{
		Layer:      c.ASS.Layer,
		Style:      c.ASS.Style,
		MarginL:    c.ASS.MarginL,
		MarginR:    c.ASS.MarginR,
		MarginV:    c.ASS.MarginV,
		ScriptInfo: c.ASS.ScriptInfo,
		PlayResX:   c.ASS.PlayResX,
		PlayResY:   c.ASS.PlayResY,
		Font:       c.ASS.Font,
		FontSize:   c.ASS.FontSize,
	}
}
