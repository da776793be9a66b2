package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/sticky/engine"
)

// Scene describes the demo document: the auto-hiding header, a sidebar
// pinned under it, and an oversized panel running the flow policy. Values
// come from an optional YAML file with STICKY_-prefixed env overrides
type Scene struct {
	Header struct {
		Title  string  `mapstructure:"title"`
		Height float64 `mapstructure:"height"`
	} `mapstructure:"header"`

	Intro struct {
		Height float64 `mapstructure:"height"`
	} `mapstructure:"intro"`

	Sidebar struct {
		Title           string  `mapstructure:"title"`
		Height          float64 `mapstructure:"height"`
		ContainerHeight float64 `mapstructure:"container_height"`
		OffsetTop       float64 `mapstructure:"offset_top"`
		Native          bool    `mapstructure:"native"`
	} `mapstructure:"sidebar"`

	Panel struct {
		Title           string  `mapstructure:"title"`
		Height          float64 `mapstructure:"height"`
		ContainerHeight float64 `mapstructure:"container_height"`
		Overflow        string  `mapstructure:"overflow"`
	} `mapstructure:"panel"`

	Spacer struct {
		Height float64 `mapstructure:"height"`
	} `mapstructure:"spacer"`

	Outro struct {
		Height float64 `mapstructure:"height"`
	} `mapstructure:"outro"`
}

// PanelOverflow resolves the configured overflow policy string
func (s Scene) PanelOverflow() (engine.OverflowPolicy, error) {
	var p engine.OverflowPolicy
	if err := p.UnmarshalText([]byte(s.Panel.Overflow)); err != nil {
		return p, fmt.Errorf("panel overflow: %w", err)
	}
	return p, nil
}

// LoadScene reads the scene from path (optional) and the environment
func LoadScene(path string) (Scene, error) {
	v := viper.New()

	v.SetDefault("header.title", "sticky demo")
	v.SetDefault("header.height", 3.0)
	v.SetDefault("intro.height", 12.0)
	v.SetDefault("sidebar.title", "sidebar (end)")
	v.SetDefault("sidebar.height", 6.0)
	v.SetDefault("sidebar.container_height", 48.0)
	v.SetDefault("sidebar.offset_top", 0.0)
	v.SetDefault("sidebar.native", false)
	v.SetDefault("panel.title", "panel (flow)")
	v.SetDefault("panel.height", 64.0)
	v.SetDefault("panel.container_height", 140.0)
	v.SetDefault("panel.overflow", "flow")
	v.SetDefault("spacer.height", 20.0)
	v.SetDefault("outro.height", 40.0)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("STICKY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Scene{}, fmt.Errorf("read scene: %w", err)
		}
	}

	var sc Scene
	if err := v.Unmarshal(&sc); err != nil {
		return Scene{}, fmt.Errorf("unmarshal scene: %w", err)
	}
	return sc, nil
}
