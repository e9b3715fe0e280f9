package tui

import (
	"log/slog"

	"github.com/vrylskyj/abook/internal/assistant"
)

type Deps struct {
	Assistant *assistant.Assistant

	Logger *slog.Logger
	Debug  bool
}
