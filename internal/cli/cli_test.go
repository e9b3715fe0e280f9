package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vrylskyj/abook/internal/assistant"
	"github.com/vrylskyj/abook/internal/domain"
	"github.com/vrylskyj/abook/internal/infra/yamlbook"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestAssistant() *assistant.Assistant {
	return assistant.New(domain.NewBook(), fixedClock{t: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)}, nil)
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	if !names["version"] {
		t.Error("expected subcommand \"version\" to be registered")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected --debug flag on root command")
	}
	for _, flag := range []string{"seed", "plain"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on root command", flag)
		}
	}
}

func TestVersionCmd_PrintsBuildInfo(t *testing.T) {
	cmd := versionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)
	if !strings.Contains(buf.String(), "abook") {
		t.Errorf("expected binary name in version output, got %q", buf.String())
	}
}

// --- buildBook ---

func TestBuildBook_NoSeed(t *testing.T) {
	book, err := buildBook(yamlbook.NewLoader(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("expected empty book, got %d records", book.Len())
	}
}

func TestBuildBook_MissingSeedFile(t *testing.T) {
	_, err := buildBook(yamlbook.NewLoader(), "/does/not/exist.yaml")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected not_found, got %v", err)
	}
}

// --- runPlain ---

func TestRunPlain_Session(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"hello",
		"add John 1234567890",
		"phone John",
		"exit",
	}, "\n"))
	var out bytes.Buffer

	if err := runPlain(in, &out, newTestAssistant()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		assistant.Banner,
		assistant.Greeting,
		"Contact added",
		"1234567890",
		assistant.Farewell,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRunPlain_EOFEndsSession(t *testing.T) {
	var out bytes.Buffer
	if err := runPlain(strings.NewReader("hello\n"), &out, newTestAssistant()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), assistant.Farewell) {
		t.Errorf("expected farewell on EOF, got:\n%s", out.String())
	}
}

func TestRunPlain_InvalidCommand(t *testing.T) {
	var out bytes.Buffer
	if err := runPlain(strings.NewReader("frobnicate\nexit\n"), &out, newTestAssistant()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid command.") {
		t.Errorf("expected invalid command message, got:\n%s", out.String())
	}
}
