package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolveMessage(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		terminal bool
		args     []string
		want     string
		wantErr  bool
	}{
		{"piped stdin", "from pipe", false, nil, "from pipe", false},
		{"stdin wins over args", "from pipe", false, []string{"from", "args"}, "from pipe", false},
		{"empty pipe falls back to args", "", false, []string{"from", "args"}, "from args", false},
		{"terminal uses args", "ignored", true, []string{"hello", "world"}, "hello world", false},
		{"terminal single arg", "", true, []string{"hello"}, "hello", false},
		{"terminal no args", "", true, nil, "", true},
		{"empty pipe no args", "", false, nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveMessage(strings.NewReader(tt.stdin), tt.terminal, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveMessage error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunSendDelivers(t *testing.T) {
	resetFlags()
	defer resetFlags()
	useTempConfig(t)

	var gotPath, gotBody, gotPriority string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotPriority = r.Header.Get("X-Priority")
		w.WriteHeader(200)
	}))
	defer server.Close()

	t.Setenv("NTFY_URL", server.URL)
	flagTopic = "deploys"
	flagPriority = "high"

	if err := runSend(rootCmd, []string{"release", "v1.2.3"}); err != nil {
		t.Fatalf("runSend error: %v", err)
	}
	if gotPath != "/deploys" {
		t.Errorf("server saw path %q, want %q", gotPath, "/deploys")
	}
	if gotBody != "release v1.2.3" {
		t.Errorf("server saw body %q, want joined args", gotBody)
	}
	if gotPriority != "high" {
		t.Errorf("server saw X-Priority %q, want %q", gotPriority, "high")
	}
}

func TestRunSendInvalidMethodSendsNothing(t *testing.T) {
	resetFlags()
	defer resetFlags()
	useTempConfig(t)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	t.Setenv("NTFY_URL", server.URL)
	flagMethod = "PUT"

	err := runSend(rootCmd, []string{"hello"})
	if err == nil {
		t.Fatal("runSend with method PUT should error")
	}
	if !strings.Contains(err.Error(), "GET or POST") {
		t.Errorf("error %q should explain the valid methods", err.Error())
	}
	if requests != 0 {
		t.Errorf("server received %d requests, want 0", requests)
	}
}

func TestRunExitCodes(t *testing.T) {
	resetFlags()
	defer resetFlags()
	useTempConfig(t)

	status := 200
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer server.Close()
	t.Setenv("NTFY_URL", server.URL)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"all good"})
	if code := Run(); code != ExitSuccess {
		t.Errorf("Run with 200 response = %d, want %d", code, ExitSuccess)
	}

	status = 404
	rootCmd.SetArgs([]string{"still there?"})
	if code := Run(); code != ExitDelivery {
		t.Errorf("Run with 404 response = %d, want %d", code, ExitDelivery)
	}

	resetFlags()
	rootCmd.SetArgs([]string{"--method", "PUT", "nope"})
	if code := Run(); code != ExitUsage {
		t.Errorf("Run with invalid method = %d, want %d", code, ExitUsage)
	}
}

func TestRunSendExplicitURLOverride(t *testing.T) {
	resetFlags()
	defer resetFlags()
	useTempConfig(t)

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(200)
	}))
	defer server.Close()

	// Override URL has no path: the effective topic is appended.
	flagURL = server.URL
	flagTopic = "ops"

	if err := runSend(rootCmd, []string{"ping"}); err != nil {
		t.Fatalf("runSend error: %v", err)
	}
	if gotPath != "/ops" {
		t.Errorf("server saw path %q, want %q", gotPath, "/ops")
	}
}
