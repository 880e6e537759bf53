package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/Arnthorny/SimlCalc/internal/calc"
	"github.com/Arnthorny/SimlCalc/internal/calculator"
	"github.com/Arnthorny/SimlCalc/internal/config"
	"github.com/Arnthorny/SimlCalc/internal/remote"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeKeys sends each character of keys as its own key press and feeds the
// preview back the way the program would.
func typeKeys(m model, keys string) model {
	for _, r := range keys {
		next, cmd := m.Update(runes(string(r)))
		m = next.(model)
		if cmd != nil {
			next, _ = m.Update(cmd())
			m = next.(model)
		}
	}
	return m
}

func send(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		path    string
		help    bool
		wantErr bool
	}{
		{"none", nil, "", false, false},
		{"help short", []string{"-h"}, "", true, false},
		{"help long", []string{"--config", "a.yaml", "--help"}, "", true, false},
		{"config", []string{"--config", "a.yaml"}, "a.yaml", false, false},
		{"config equals", []string{"--config=b.toml"}, "b.toml", false, false},
		{"config missing path", []string{"--config"}, "", false, true},
		{"unknown flag", []string{"--verbose"}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, help, err := parseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if path != tt.path || help != tt.help {
				t.Fatalf("parseArgs(%q) = %q, %v, want %q, %v", tt.args, path, help, tt.path, tt.help)
			}
		})
	}
}

func TestModelTyping(t *testing.T) {
	m := typeKeys(initialModel(calculator.New(), nil), "12+3")
	if m.calc.Text() != "12+3" {
		t.Fatalf("expected '12+3', got %q", m.calc.Text())
	}
	if m.calc.Preview() != "15" {
		t.Fatalf("expected '15', got %q", m.calc.Preview())
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.calc.Text() != "12+" {
		t.Fatalf("expected '12+', got %q", m.calc.Text())
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.calc.Text() != "" {
		t.Fatalf("expected empty buffer, got %q", m.calc.Text())
	}
}

func TestModelIgnoresUnmappedKeys(t *testing.T) {
	m := typeKeys(initialModel(calculator.New(), nil), "5xyz!")
	if m.calc.Text() != "5" {
		t.Fatalf("expected '5', got %q", m.calc.Text())
	}
}

func TestModelShortcuts(t *testing.T) {
	m := typeKeys(initialModel(calculator.New(), nil), "~5(*2")
	if m.calc.Text() != "(-5)*2" {
		t.Fatalf("expected '(-5)*2', got %q", m.calc.Text())
	}
	if m.calc.Preview() != "-10" {
		t.Fatalf("expected '-10', got %q", m.calc.Preview())
	}
}

func TestModelCommit(t *testing.T) {
	m := typeKeys(initialModel(calculator.New(), nil), "5*5")

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.committing {
		t.Fatal("expected commit evaluation to start")
	}

	// Input is ignored while the commit is in flight.
	m = typeKeys(m, "9")
	if m.calc.Text() != "5*5" {
		t.Fatalf("expected input ignored, got %q", m.calc.Text())
	}

	m, cmd = send(m, cmd())
	if cmd == nil || !m.moving {
		t.Fatal("expected the result to start moving")
	}
	if m.calc.Text() != "5*5" {
		t.Fatalf("expected buffer unchanged until the swap, got %q", m.calc.Text())
	}

	msg := cmd()
	if diff := cmp.Diff(commitMsg{result: "25"}, msg, cmp.AllowUnexported(commitMsg{})); diff != "" {
		t.Fatalf("commit message (-want +got):\n%s", diff)
	}
	m, _ = send(m, msg)
	if m.moving || m.committing {
		t.Fatal("expected commit finished")
	}
	if diff := cmp.Diff([]string{"25"}, m.calc.Segments()); diff != "" {
		t.Fatalf("segments (-want +got):\n%s", diff)
	}
	if m.calc.Preview() != "" {
		t.Fatalf("expected preview cleared, got %q", m.calc.Preview())
	}
}

func TestModelCommitEmptyDoesNothing(t *testing.T) {
	m, cmd := send(initialModel(calculator.New(), nil), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.committing || m.board.Text() != "" {
		t.Fatalf("expected no-op, got committing=%v notice=%q", m.committing, m.board.Text())
	}
}

func TestModelEvaluatesOutsideUpdate(t *testing.T) {
	calls := 0
	c := calculator.New(calculator.WithEvaluator(calc.EvaluatorFunc(func(ctx context.Context, expression string) (float64, error) {
		calls++
		return 7, nil
	})))
	m, cmd := send(initialModel(c, nil), runes("7"))
	if calls != 0 {
		t.Fatalf("expected no evaluation inside Update, got %d", calls)
	}
	if m.calc.Text() != "7" || m.calc.Preview() != "" {
		t.Fatalf("expected edit applied with preview pending, got %q / %q", m.calc.Text(), m.calc.Preview())
	}

	m, _ = send(m, cmd())
	if calls != 1 || m.calc.Preview() != "7" {
		t.Fatalf("expected one evaluation and preview '7', got %d / %q", calls, m.calc.Preview())
	}
}

func TestModelDropsStalePreview(t *testing.T) {
	m := initialModel(calculator.New(), nil)
	m, first := send(m, runes("1"))
	m, second := send(m, runes("2"))

	m, _ = send(m, second())
	m, _ = send(m, first())
	if m.calc.Preview() != "12" {
		t.Fatalf("expected '12', got %q", m.calc.Preview())
	}
}

func TestModelNoticeLifecycle(t *testing.T) {
	m := typeKeys(initialModel(calculator.New(), nil), "5/0")

	m, cmd := send(m, runes("="))
	m, cmd = send(m, cmd())
	if cmd == nil {
		t.Fatal("expected hide command")
	}
	if m.committing {
		t.Fatal("expected failed commit to release input")
	}
	if m.calc.Text() != "5/0" {
		t.Fatalf("expected buffer unchanged, got %q", m.calc.Text())
	}
	if !m.board.Visible() || m.board.Text() != "Can't divide by zero." {
		t.Fatalf("expected divide-by-zero notice, got %q", m.board.Text())
	}
	if !strings.Contains(m.View(), "Can't divide by zero.") {
		t.Fatal("expected notice in view")
	}

	// A second error while the first is up is dropped.
	m, again := send(m, runes("="))
	m, again = send(m, again())
	if again != nil {
		t.Fatal("expected no second hide command")
	}

	m, cmd = send(m, noticeHideMsg{})
	if m.board.Visible() {
		t.Fatal("expected notice hidden")
	}
	if strings.Contains(m.View(), "Can't divide by zero.") {
		t.Fatal("expected notice gone from view")
	}
	if cmd == nil {
		t.Fatal("expected clear command")
	}
	m, _ = send(m, noticeClearMsg{})
	if m.board.Text() != "" {
		t.Fatalf("expected notice cleared, got %q", m.board.Text())
	}
}

func TestModelKeypadCursor(t *testing.T) {
	m := initialModel(calculator.New(), nil)
	for _, k := range []tea.KeyType{tea.KeyDown, tea.KeyRight, tea.KeyRight} {
		m, _ = send(m, tea.KeyMsg{Type: k})
	}
	if m.row != 1 || m.col != 2 {
		t.Fatalf("expected cursor at 1,2, got %d,%d", m.row, m.col)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.calc.Text() != "9" {
		t.Fatalf("expected '9', got %q", m.calc.Text())
	}

	// hjkl move too, and the cursor stays on the grid.
	m = typeKeys(m, "jjjjjjj")
	if m.row != 5 || m.col != 0 {
		t.Fatalf("expected cursor clamped to 5,0, got %d,%d", m.row, m.col)
	}
	m = typeKeys(m, "kkkkkkkhhh")
	if m.row != 0 || m.col != 0 {
		t.Fatalf("expected cursor at 0,0, got %d,%d", m.row, m.col)
	}
}

func TestModelQuit(t *testing.T) {
	m, cmd := send(initialModel(calculator.New(), nil), tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Fatal("expected quitting")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Fatalf("expected empty view, got %q", m.View())
	}
}

func TestModelWindowSize(t *testing.T) {
	m := typeKeys(initialModel(calculator.New(), nil), "123456789")
	m, _ = send(m, tea.WindowSizeMsg{Width: 7, Height: 20})
	if !strings.Contains(m.View(), "…6789") {
		t.Fatalf("expected tail-truncated buffer, got:\n%s", m.View())
	}
}

func TestModelConfigReload(t *testing.T) {
	m, cmd := send(initialModel(calculator.New(), nil), configMsg{cfg: config.Default()})
	if cmd != nil {
		t.Fatal("expected no watch command without a watcher")
	}
	if m.Init() != nil {
		t.Fatal("expected nil Init without a watcher")
	}
}

func TestRunLine(t *testing.T) {
	in := strings.NewReader("12+30%\nc5/0=\nc6*7=\n")
	var out, errOut bytes.Buffer
	if err := runLine(context.Background(), calculator.New(), in, &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "12+30% = 12.3\n5/0 = \n42 = \n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
	if !strings.Contains(errOut.String(), "error: Can't divide by zero.") {
		t.Fatalf("expected divide-by-zero error, got %q", errOut.String())
	}
}

func TestRunLineReportsOverflow(t *testing.T) {
	in := strings.NewReader(strings.Repeat("1", 21) + "\n")
	var out, errOut bytes.Buffer
	if err := runLine(context.Background(), calculator.New(), in, &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut.String(), "Maximum limit reached") {
		t.Fatalf("expected overflow error, got %q", errOut.String())
	}
}

func TestNewCalculator(t *testing.T) {
	cfg := config.Default()
	cfg.Store = config.Store{Driver: "bolt", Path: filepath.Join(t.TempDir(), "calc.bolt")}
	cfg.MaxLength = 3

	c, st, err := newCalculator(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer st.Close()

	if c.MaxLength() != 3 {
		t.Fatalf("expected max length 3, got %d", c.MaxLength())
	}
	if _, err := c.Commit(context.Background()); err == nil {
		t.Fatal("expected empty commit to fail")
	}
}

func TestNewCalculatorErrors(t *testing.T) {
	bad := config.Default()
	bad.Locale = "!!"
	if _, _, err := newCalculator(bad); err == nil {
		t.Error("expected locale error, got nil")
	}

	bad = config.Default()
	bad.Store.Driver = "redis"
	if _, _, err := newCalculator(bad); err == nil {
		t.Error("expected store error, got nil")
	}
}

func TestNewCalculatorRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req remote.EvaluateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Expression != "2+2" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(remote.APIError{Message: "bad", Code: "SyntaxError"})
			return
		}
		json.NewEncoder(w).Encode(remote.EvaluateResponse{Value: 4})
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Evaluator.URL = srv.URL
	c, st, err := newCalculator(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer st.Close()

	m := typeKeys(initialModel(c, nil), "2+2")
	if m.calc.Preview() != "4" {
		t.Fatalf("expected '4', got %q", m.calc.Preview())
	}
}
