// Package config loads controller tuning from a YAML file. All fields have
// defaults matching the control package constants, so a partial file only
// overrides what it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/puppet/control"
)

type Config struct {
	Movement MovementConfig `yaml:"movement"`
	Bindings BindingsConfig `yaml:"bindings"`
	Queue    QueueConfig    `yaml:"queue"`
}

type MovementConfig struct {
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
	EyeHeight   float32 `yaml:"eye_height"`
}

type BindingsConfig struct {
	Forward    []string `yaml:"forward"`
	Back       []string `yaml:"back"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	ToggleGrab []string `yaml:"toggle_grab"`
	Jump       []string `yaml:"jump"`
	Run        []string `yaml:"run"`
}

type QueueConfig struct {
	Capacity int `yaml:"capacity"`
}

// Default returns the configuration equivalent to control.DefaultOptions.
func Default() *Config {
	return &Config{
		Movement: MovementConfig{
			Speed:       control.MoveSpeed,
			Sensitivity: control.MouseSensitivity,
			EyeHeight:   control.DefaultEyeHeight,
		},
		Bindings: BindingsConfig{
			Forward:    []string{"w", "up"},
			Back:       []string{"s", "down"},
			Left:       []string{"a", "left"},
			Right:      []string{"d", "right"},
			ToggleGrab: []string{"g"},
			Jump:       []string{"space"},
			Run:        []string{"lshift"},
		},
		Queue: QueueConfig{
			Capacity: control.DefaultQueueCapacity,
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options resolves the configuration into controller options, parsing key
// binding names.
func (c *Config) Options() (control.Options, error) {
	bindings, err := c.Bindings.resolve()
	if err != nil {
		return control.Options{}, err
	}

	return control.Options{
		Speed:         c.Movement.Speed,
		Sensitivity:   c.Movement.Sensitivity,
		EyeHeight:     c.Movement.EyeHeight,
		QueueCapacity: c.Queue.Capacity,
		Bindings:      bindings,
	}, nil
}

func (b BindingsConfig) resolve() (control.Bindings, error) {
	var bindings control.Bindings
	var err error

	if bindings.Forward, err = parseKeys("forward", b.Forward); err != nil {
		return bindings, err
	}
	if bindings.Back, err = parseKeys("back", b.Back); err != nil {
		return bindings, err
	}
	if bindings.Left, err = parseKeys("left", b.Left); err != nil {
		return bindings, err
	}
	if bindings.Right, err = parseKeys("right", b.Right); err != nil {
		return bindings, err
	}
	if bindings.ToggleGrab, err = parseKeys("toggle_grab", b.ToggleGrab); err != nil {
		return bindings, err
	}
	if bindings.Jump, err = parseKeys("jump", b.Jump); err != nil {
		return bindings, err
	}
	if bindings.Run, err = parseKeys("run", b.Run); err != nil {
		return bindings, err
	}

	return bindings, nil
}

func parseKeys(action string, names []string) ([]control.Key, error) {
	keys := make([]control.Key, 0, len(names))
	for _, name := range names {
		key, err := control.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", action, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
