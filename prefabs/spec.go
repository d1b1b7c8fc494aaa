package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/furi/voice"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name             string     `yaml:"name"`
	TutorialSpeed    float64    `yaml:"tutorial_speed"`
	NormalSpeed      float64    `yaml:"normal_speed"`
	YawSensitivity   float64    `yaml:"yaw_sensitivity"`
	PitchSensitivity float64    `yaml:"pitch_sensitivity"`
	PitchLimit       float64    `yaml:"pitch_limit"`
	PointerScale     float64    `yaml:"pointer_scale"`
	InteractRadius   float64    `yaml:"interact_radius"`
	Marker           MarkerSpec `yaml:"marker"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name          string  `yaml:"name"`
	Target        string  `yaml:"target"`
	Radius        float64 `yaml:"radius"`
	Height        float64 `yaml:"height"`
	LookHeight    float64 `yaml:"look_height"`
	SwayFrequency float64 `yaml:"sway_frequency"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`
	Smoothness    float64 `yaml:"smoothness"`
	SmoothingRate float64 `yaml:"smoothing_rate"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// NPCSpec holds what every NPC shares; identity and placement come from the
// village layout.
type NPCSpec struct {
	Marker          MarkerSpec `yaml:"marker"`
	LoadDelayFrames int        `yaml:"load_delay_frames"`
}

func LoadNPCSpec() (*NPCSpec, error) {
	spec, err := LoadSpec[NPCSpec]("npc.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type LineSpec struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
	Profile string `yaml:"profile"`
}

type DialogueSpec struct {
	Script    string              `yaml:"script"`
	Responses map[string]LineSpec `yaml:"responses"`
	Greetings map[string]LineSpec `yaml:"greetings"`
	Menu      map[string]LineSpec `yaml:"menu"`
}

func LoadDialogueSpec() (*DialogueSpec, error) {
	spec, err := LoadSpec[DialogueSpec]("dialogue.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type VoicesSpec struct {
	Profiles map[string]voice.Profile `yaml:"profiles"`
}

func LoadVoicesSpec() (*VoicesSpec, error) {
	spec, err := LoadSpec[VoicesSpec]("voices.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type MarkerSpec struct {
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

// RGBAOr returns the parsed color, or def when c is nil.
func (c *YAMLColor) RGBAOr(def color.RGBA) color.RGBA {
	if c == nil {
		return def
	}
	return c.RGBA
}

// ParseColor reads #rrggbb or #rrggbbaa.
func ParseColor(value string) (color.RGBA, error) {
	s := strings.TrimPrefix(value, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	out := color.RGBA{A: 0xff}
	var err error
	if out.R, err = parse(0); err != nil {
		return color.RGBA{}, err
	}
	if out.G, err = parse(2); err != nil {
		return color.RGBA{}, err
	}
	if out.B, err = parse(4); err != nil {
		return color.RGBA{}, err
	}
	if len(s) == 8 {
		if out.A, err = parse(6); err != nil {
			return color.RGBA{}, err
		}
	}
	return out, nil
}
