package config

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName  = "config.toml"
	DefaultCardsFileName   = "flashcards.json"
	DefaultHistoryFileName = "flashcards.db"
)

// Keymap holds the rebindable key for each action. Arrow-key equivalents
// stay hardwired in the UI next to the configured keys.
type Keymap struct {
	Quit        string `toml:"quit"`
	NewTopic    string `toml:"new_topic"`
	AddCard     string `toml:"add_card"`
	Confirm     string `toml:"confirm"`
	Cancel      string `toml:"cancel"`
	Up          string `toml:"up"`
	Down        string `toml:"down"`
	NextCard    string `toml:"next_card"`
	PrevCard    string `toml:"prev_card"`
	Flip        string `toml:"flip"`
	SwitchField string `toml:"switch_field"`
	SaveCard    string `toml:"save_card"`
}

type Config struct {
	CardsPath   string `toml:"cards_path"`
	HistoryPath string `toml:"history_path"`
	Keys        Keymap `toml:"keys"`
}

// LoadOrCreate reads the config at path, writing one with defaults first if
// none exists. Missing paths fall back to the default file names.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.CardsPath == "" {
		cfg.CardsPath = DefaultCardsFileName
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = DefaultHistoryFileName
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		CardsPath:   DefaultCardsFileName,
		HistoryPath: DefaultHistoryFileName,
		Keys: Keymap{
			Quit:        "q",
			NewTopic:    "n",
			AddCard:     "a",
			Confirm:     "enter",
			Cancel:      "esc",
			Up:          "k",
			Down:        "j",
			NextCard:    "n",
			PrevCard:    "p",
			Flip:        " ",
			SwitchField: "tab",
			SaveCard:    "ctrl+s",
		},
	}
}
