package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Layout struct {
	WrapRows    int `yaml:"wrap_rows,omitempty"`    // entries stacked per display column
	ColumnWidth int `yaml:"column_width,omitempty"` // cell width per field
	ColumnPad   int `yaml:"column_pad,omitempty"`   // extra spaces per two fields
	MarkEvery   int `yaml:"mark_every,omitempty"`   // mark every n-th row index
	IndexWidth  int `yaml:"index_width,omitempty"`
	ValueWidth  int `yaml:"value_width,omitempty"`
	InputAlign  int `yaml:"input_align,omitempty"` // prompt label width before the hint
}

// Colors holds tcell color names, e.g. "green", "gray", "#ff8800".
type Colors struct {
	IndexNormal string `yaml:"index_normal,omitempty"`
	IndexMarked string `yaml:"index_marked,omitempty"`
	Changed     string `yaml:"changed,omitempty"`
	Separator   string `yaml:"separator,omitempty"`
	Input       string `yaml:"input,omitempty"`
	Tip         string `yaml:"tip,omitempty"`
	Confirm     string `yaml:"confirm,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Error       string `yaml:"error,omitempty"`
}

type Config struct {
	Layout   Layout `yaml:"layout"`
	Colors   Colors `yaml:"colors"`
	ShowDiff bool   `yaml:"show_diff"`
	History  string `yaml:"history"` // prompt history file, empty disables it
}

var DefaultLayout = Layout{
	WrapRows:    60,
	ColumnWidth: 15,
	ColumnPad:   3,
	MarkEvery:   10,
	IndexWidth:  3,
	ValueWidth:  6,
	InputAlign:  20,
}

var DefaultColors = Colors{
	IndexNormal: "gray",
	IndexMarked: "green",
	Changed:     "green",
	Separator:   "gray",
	Input:       "teal",
	Tip:         "white",
	Confirm:     "green",
	Title:       "white",
	Error:       "red",
}

func Default() Config {
	return Config{Layout: DefaultLayout, Colors: DefaultColors}
}

// GetConfig reads TABEDIT_CONF (or tabedit.yaml) over the defaults.
func GetConfig() Config {
	conffilename, exists := os.LookupEnv("TABEDIT_CONF")
	if !exists { conffilename = "tabedit.yaml" }
	return Load(conffilename)
}

// Load reads filename over the defaults. Keys the file names replace the
// default, so "column_pad: 0" turns padding off. Empty color names keep the
// default color. Missing or broken files yield the defaults.
func Load(filename string) Config {
	data, err := os.ReadFile(filename)
	if err != nil { return Default() }

	config := Default()
	err = yaml.Unmarshal(data, &config)
	if err != nil { return Default() }

	config.Colors = mergeColors(DefaultColors, config.Colors)
	return config
}

func mergeColors(base, override Colors) Colors {
	pick := func(def, value string) string {
		if value != "" { return value }
		return def
	}
	return Colors{
		IndexNormal: pick(base.IndexNormal, override.IndexNormal),
		IndexMarked: pick(base.IndexMarked, override.IndexMarked),
		Changed:     pick(base.Changed, override.Changed),
		Separator:   pick(base.Separator, override.Separator),
		Input:       pick(base.Input, override.Input),
		Tip:         pick(base.Tip, override.Tip),
		Confirm:     pick(base.Confirm, override.Confirm),
		Title:       pick(base.Title, override.Title),
		Error:       pick(base.Error, override.Error),
	}
}
