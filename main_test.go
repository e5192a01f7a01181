package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/ludo-race-game/api"
	"github.com/wricardo/ludo-race-game/game/config"
	"github.com/wricardo/ludo-race-game/game/dice"
	"github.com/wricardo/ludo-race-game/game/engine"
	"github.com/wricardo/ludo-race-game/transport/mcp"
	"github.com/wricardo/ludo-race-game/transport/websocket"
)

func testSettings() *config.Settings {
	return &config.Settings{
		Host:            "localhost",
		Port:            8080,
		ConfigDir:       "configs",
		LogLevel:        "info",
		SessionTTL:      24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	expectedAppName := "Ludo Race Game Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestInitializeServices(t *testing.T) {
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	svc, err := initializeServices("configs")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if svc.Game == nil || svc.Sessions == nil || svc.Configs == nil {
		t.Fatal("Expected every service to be initialized")
	}
	if svc.Configs.GetDefault() == nil {
		t.Error("Expected a default rule set")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	if _, err := initializeServices("/non/existent/path"); err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

func TestNewAppCommands(t *testing.T) {
	app := newApp(testSettings())

	if app.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, app.Version)
	}

	tests := []struct {
		name    string
		aliases []string
	}{
		{"serve", []string{"server", "http"}},
		{"mcp", []string{"stdio-mcp", "mcp-stdio"}},
		{"play", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := app.Command(tt.name)
			if sub == nil {
				t.Fatalf("Expected command %s", tt.name)
			}
			for _, alias := range tt.aliases {
				if app.Command(alias) != sub {
					t.Errorf("Expected alias %s for %s", alias, tt.name)
				}
			}
		})
	}
}

func TestNewAppFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantAddr string
		wantDir  string
		wantTTL  time.Duration
	}{
		{
			name:     "defaults from settings",
			args:     []string{"ludo"},
			wantAddr: "localhost:8080",
			wantDir:  "configs",
			wantTTL:  24 * time.Hour,
		},
		{
			name:     "flags override settings",
			args:     []string{"ludo", "--host", "0.0.0.0", "--port", "9090", "--config-dir", "rules", "--session-ttl", "30m"},
			wantAddr: "0.0.0.0:9090",
			wantDir:  "rules",
			wantTTL:  30 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(testSettings())

			var got *config.Settings
			app.Action = func(ctx context.Context, cmd *cli.Command) error {
				got = settingsFromCommand(cmd)
				return nil
			}

			if err := app.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if got.Addr() != tt.wantAddr {
				t.Errorf("Expected addr %s, got %s", tt.wantAddr, got.Addr())
			}
			if got.ConfigDir != tt.wantDir {
				t.Errorf("Expected config dir %s, got %s", tt.wantDir, got.ConfigDir)
			}
			if got.SessionTTL != tt.wantTTL {
				t.Errorf("Expected session TTL %v, got %v", tt.wantTTL, got.SessionTTL)
			}
		})
	}
}

func TestNewAppLogLevel(t *testing.T) {
	previous := log.GetLevel()
	t.Cleanup(func() {
		log.SetLevel(previous)
		log.SetReportCaller(false)
	})

	tests := []struct {
		args []string
		want log.Level
	}{
		{[]string{"ludo"}, log.InfoLevel},
		{[]string{"ludo", "--log-level", "warn"}, log.WarnLevel},
		{[]string{"ludo", "--log-level", "error", "--debug"}, log.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			app := newApp(testSettings())
			app.Action = func(ctx context.Context, cmd *cli.Command) error { return nil }

			if err := app.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if got := log.GetLevel(); got != tt.want {
				t.Errorf("Expected log level %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewAppInvalidLogLevel(t *testing.T) {
	app := newApp(testSettings())
	app.Action = func(ctx context.Context, cmd *cli.Command) error { return nil }

	if err := app.Run(context.Background(), []string{"ludo", "--log-level", "loud"}); err == nil {
		t.Error("Expected error for invalid log level")
	}
}

func TestMCPHandler(t *testing.T) {
	svc, err := initializeServices("configs")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	hub := websocket.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	apiServer := api.NewServer(svc.Game, hub)
	backend := httptest.NewServer(apiServer)
	defer backend.Close()

	router := newRouter(apiServer, mcp.NewClient(backend.URL))

	t.Run("rejects GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("Expected status 405, got %d", rec.Code)
		}
	})

	t.Run("lists tools", func(t *testing.T) {
		initMsg := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(initMsg)))
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)))
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %s", ct)
		}
		if !strings.Contains(rec.Body.String(), `"name":"roll_die"`) {
			t.Errorf("Expected roll_die in tools/list, got %s", rec.Body.String())
		}
	})

	t.Run("api mounted at root", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})
}

func TestExternalAPIAvailable(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	if !externalAPIAvailable(context.Background(), healthy.URL) {
		t.Error("Expected healthy server to be detected")
	}

	down := httptest.NewServer(http.NotFoundHandler())
	url := down.URL
	down.Close()

	if externalAPIAvailable(context.Background(), url) {
		t.Error("Expected closed server to be unavailable")
	}
}

func TestStartInternalServer(t *testing.T) {
	svc, err := initializeServices("configs")
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	baseURL, shutdown, err := startInternalServer(svc)
	if err != nil {
		t.Fatalf("Failed to start internal server: %v", err)
	}
	defer shutdown()

	if !strings.HasPrefix(baseURL, "http://127.0.0.1:") {
		t.Errorf("Expected loopback URL, got %s", baseURL)
	}
	if !externalAPIAvailable(context.Background(), baseURL) {
		t.Error("Expected internal server to answer /health")
	}
}

func scriptedGame(t *testing.T, faces ...int) *terminalGame {
	t.Helper()
	roller, err := dice.NewSequence(faces...)
	if err != nil {
		t.Fatalf("Failed to create dice: %v", err)
	}
	game, err := newTerminalGameWithRoller(engine.DefaultGameConfig(), roller)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return game
}

func TestTerminalGamePlay(t *testing.T) {
	game := scriptedGame(t, 6, 3, 2)

	input := strings.Join([]string{"r", "0", "", "roll", "b", "q"}, "\n")
	var out bytes.Buffer
	if err := game.Play(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Red rolled 6",
		"red [rolled 6, tokens 0,1,2,3]> ",
		"Red moved token 0 to r1",
		"Red rolled a 6 and plays again",
		"Red moved token 0 to r4",
		"Green to roll",
		"Green cannot move with a 2, turn passes",
		"0:r4",
		"yellow> ",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q\n%s", want, output)
		}
	}

	state := game.engine.GetState()
	if state.Active != engine.Yellow {
		t.Errorf("Expected yellow to be active, got %s", state.Active)
	}
	if state.Tokens[engine.Red][0] != 4 {
		t.Errorf("Expected red token 0 at 4, got %d", state.Tokens[engine.Red][0])
	}
}

func TestTerminalGameRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown command", "jump\nq", `unknown command "jump"`},
		{"move before roll", "2\nq", "error: no roll is pending"},
		{"token not movable", "r\n7\nq", "error: invalid move"},
		{"help", "h\nq", "Commands:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := scriptedGame(t, 6)
			var out bytes.Buffer
			if err := game.Play(context.Background(), strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("Play failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("Expected output to contain %q\n%s", tt.want, out.String())
			}
		})
	}
}

func TestTerminalGameEndOfInput(t *testing.T) {
	game := scriptedGame(t, 1)
	if err := game.Play(context.Background(), strings.NewReader(""), io.Discard); err != nil {
		t.Errorf("Expected nil error at end of input, got %v", err)
	}
}

func TestTerminalGameCancelled(t *testing.T) {
	game := scriptedGame(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := game.Play(ctx, strings.NewReader("r\n"), io.Discard); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestPositionLabel(t *testing.T) {
	board, err := engine.NewBoard(engine.DefaultSafeCellOffset)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	tests := []struct {
		color engine.Color
		pos   int
		want  string
	}{
		{engine.Red, engine.BasePosition, "base"},
		{engine.Red, engine.HomePosition, "HOME"},
		{engine.Red, 1, "r1"},
		{engine.Green, 1, "g1"},
		{engine.Red, 52, "b13"},
		{engine.Red, 53, "rh1"},
	}
	for _, tt := range tests {
		if got := positionLabel(board, tt.color, tt.pos); got != tt.want {
			t.Errorf("positionLabel(%s, %d) = %s, want %s", tt.color, tt.pos, got, tt.want)
		}
	}
}
