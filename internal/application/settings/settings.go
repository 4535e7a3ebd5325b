// Package settings defines application-level configuration data.
package settings

import "time"

// DefaultBaseURL is the static JSON API the client reads from.
const DefaultBaseURL = "https://raw.githubusercontent.com/anton-natife/jsons/master/api"

// APIConfig defines how the post API is reached.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" kong:"help='Post API base URL',default='https://raw.githubusercontent.com/anton-natife/jsons/master/api'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds (0 uses the platform default)',default='0'"`
	UserAgent      string `yaml:"user_agent" kong:"help='User-Agent header',default='Postfeed/1.0'"`
}

// Timeout returns the request timeout, zero meaning none.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up        string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down      string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Top       string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom    string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open      string `yaml:"open" kong:"help='Open post key',default='enter,l'"`
	Back      string `yaml:"back" kong:"help='Back key',default='esc,h'"`
	Expand    string `yaml:"expand" kong:"help='Expand/collapse preview key',default='e,space'"`
	Refresh   string `yaml:"refresh" kong:"help='Reload key',default='r'"`
	OpenImage string `yaml:"open_image" kong:"help='Open post image in browser key',default='o'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='q,ctrl+c'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color (titles, likes, buttons)',default='63'"`
	Muted  string `yaml:"muted" kong:"help='Muted color (dates, hints)',default='244'"`
}

// LayoutConfig defines text layout parameters.
type LayoutConfig struct {
	FallbackWidth int `yaml:"fallback_width" kong:"help='Width used before the terminal size is known',default='80'"`
	PreviewLines  int `yaml:"preview_lines" kong:"help='Collapsed preview line cap',default='2'"`
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	API    APIConfig    `yaml:"api" kong:"embed,prefix='api.'"`
	KeyMap KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme  ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Layout LayoutConfig `yaml:"layout" kong:"embed,prefix='layout.'"`
	Log    LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
}

// PreviewLineCap returns the collapsed preview cap, never below one line.
func (s Settings) PreviewLineCap() int {
	if s.Layout.PreviewLines < 1 {
		return 2
	}
	return s.Layout.PreviewLines
}

// FallbackWidth returns the width used before the terminal reports its size.
func (s Settings) FallbackWidth() int {
	if s.Layout.FallbackWidth < 1 {
		return 80
	}
	return s.Layout.FallbackWidth
}
