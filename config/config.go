// Package config loads run settings from defaults, an optional yaml file,
// RAYMAZE_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "RAYMAZE"
	ConfigName = "raymaze"
)

type Config struct {
	Window  Window  `mapstructure:"window"`
	Maze    Maze    `mapstructure:"maze"`
	Player  Player  `mapstructure:"player"`
	Camera  Camera  `mapstructure:"camera"`
	Raycast Raycast `mapstructure:"raycast"`
	Log     Log     `mapstructure:"log"`
}

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type Maze struct {
	Size     int     `mapstructure:"size"`
	CellSize float64 `mapstructure:"cell_size"`
	// Seed 0 draws a fresh seed from the clock on every run.
	Seed int64 `mapstructure:"seed"`
}

type Player struct {
	TurnAngle float64 `mapstructure:"turn_angle"`
	Step      float64 `mapstructure:"step"`
	Size      float64 `mapstructure:"size"`
}

type Camera struct {
	FOV  float64 `mapstructure:"fov"`
	Rays int     `mapstructure:"rays"`
}

type Raycast struct {
	MaxSteps          int     `mapstructure:"max_steps"`
	HeightCoefficient float64 `mapstructure:"height_coefficient"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

var ErrInvalid = errors.New("invalid config")

// Default returns the reference configuration: a 23x23 maze of 32 unit cells
// viewed through a 60 degree, 1200 ray camera in a 1024x768 window.
func Default() Config {
	return Config{
		Window: Window{Width: 1024, Height: 768, Title: "RayCastingMaze"},
		Maze:   Maze{Size: 23, CellSize: 32, Seed: 0},
		Player: Player{TurnAngle: 0.05, Step: 2.0, Size: 0.5},
		Camera: Camera{FOV: math.Pi / 3, Rays: 1200},
		Raycast: Raycast{
			MaxSteps:          10,
			HeightCoefficient: 16,
		},
		Log: Log{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("maze.size", d.Maze.Size)
	v.SetDefault("maze.cell_size", d.Maze.CellSize)
	v.SetDefault("maze.seed", d.Maze.Seed)
	v.SetDefault("player.turn_angle", d.Player.TurnAngle)
	v.SetDefault("player.step", d.Player.Step)
	v.SetDefault("player.size", d.Player.Size)
	v.SetDefault("camera.fov", d.Camera.FOV)
	v.SetDefault("camera.rays", d.Camera.Rays)
	v.SetDefault("raycast.max_steps", d.Raycast.MaxSteps)
	v.SetDefault("raycast.height_coefficient", d.Raycast.HeightCoefficient)
	v.SetDefault("log.level", d.Log.Level)
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(ConfigName, pflag.ContinueOnError)
	fs.String("config", "", "path to a yaml config file")
	fs.Int64("seed", 0, "maze seed, 0 for a random maze")
	fs.Int("size", 0, "maze side length, must be odd")
	fs.Int("rays", 0, "number of rays cast across the field of view")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	return fs
}

var flagKeys = map[string]string{
	"seed":      "maze.seed",
	"size":      "maze.size",
	"rays":      "camera.rays",
	"log-level": "log.level",
}

// Load parses args and resolves the configuration.
func Load(args []string) (Config, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		f := fs.Lookup(name)
		// only flags given on the command line override lower layers
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	path, _ := fs.GetString("config")
	if err := readFile(v, path); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		logrus.WithField("file", v.ConfigFileUsed()).Debug("config file loaded")
		return nil
	case path == "" && errors.As(err, &notFound):
		return nil
	default:
		return fmt.Errorf("read config %q: %w", path, err)
	}
}

// Validate checks the settings the maze and ray caster depend on.
func (c Config) Validate() error {
	var problems []string
	if c.Maze.Size < 3 || c.Maze.Size%2 == 0 {
		problems = append(problems, fmt.Sprintf("maze.size %d must be odd and >= 3", c.Maze.Size))
	}
	if c.Maze.CellSize <= 0 {
		problems = append(problems, "maze.cell_size must be positive")
	}
	if c.Camera.Rays <= 0 {
		problems = append(problems, "camera.rays must be positive")
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= math.Pi {
		problems = append(problems, "camera.fov must be in (0, pi)")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, "window size must be positive")
	}
	if c.Player.Size <= 0 || c.Player.Step <= 0 {
		problems = append(problems, "player size and step must be positive")
	}
	if c.Raycast.MaxSteps <= 0 {
		problems = append(problems, "raycast.max_steps must be positive")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q unknown", c.Log.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// LogLevel returns the configured logrus level, falling back to info.
func (c Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
