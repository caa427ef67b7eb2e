package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	s := New(Config{})
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.cfg.JPEGQuality != 95 {
		t.Errorf("default JPEG quality: got %d, want 95", s.cfg.JPEGQuality)
	}
	if s.cfg.Version != "dev" {
		t.Errorf("default version: got %q, want dev", s.cfg.Version)
	}
}

func TestHandleRequest_Routing(t *testing.T) {
	tests := []struct {
		method    string
		id        interface{}
		wantNil   bool
		wantError int
	}{
		{method: "initialize", id: 1},
		{method: "ping", id: "ping-1"},
		{method: "tools/list", id: float64(7)},
		{method: "notifications/initialized", wantNil: true},
		{method: "resources/list", id: 2, wantError: -32601},
		{method: "", id: 3, wantError: -32601},
	}

	s := New(Config{})
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: tt.id, Method: tt.method})

			if tt.wantNil {
				if resp != nil {
					t.Errorf("expected no response, got %+v", resp)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.ID != tt.id || resp.JSONRPC != "2.0" {
				t.Errorf("envelope: got id %v jsonrpc %q", resp.ID, resp.JSONRPC)
			}

			switch {
			case tt.wantError != 0 && resp.Error == nil:
				t.Errorf("expected error %d", tt.wantError)
			case tt.wantError != 0 && resp.Error.Code != tt.wantError:
				t.Errorf("Error code: got %d, want %d", resp.Error.Code, tt.wantError)
			case tt.wantError == 0 && resp.Error != nil:
				t.Errorf("Unexpected error: %+v", resp.Error)
			}
		})
	}
}

func TestErrorResponse_OmitsResult(t *testing.T) {
	s := New(Config{})
	resp := s.errorResponse(9, -32000, "Tool execution failed", "boom")

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if strings.Contains(string(data), `"result"`) {
		t.Errorf("error response should omit result: %s", data)
	}

	var decoded MCPResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if decoded.Error == nil || decoded.Error.Code != -32000 || decoded.Error.Data != "boom" {
		t.Errorf("decoded error: got %+v", decoded.Error)
	}
}

func TestHandleInitialize(t *testing.T) {
	s := New(Config{Version: "1.2.3"})
	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != ServerName {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != "1.2.3" {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestServe(t *testing.T) {
	s := New(Config{})
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"session_apply"}}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	var responses []MCPResponse
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp MCPResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("bad response line %q: %v", scanner.Text(), err)
		}
		responses = append(responses, resp)
	}

	// The notification, the blank line and the malformed line get no reply.
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d: %s", len(responses), out.String())
	}
	for i, want := range []float64{1, 2, 3} {
		if responses[i].ID != want {
			t.Errorf("response %d: ID got %v, want %v", i, responses[i].ID, want)
		}
	}
	if responses[2].Error == nil || responses[2].Error.Data != "no open session" {
		t.Errorf("expected 'no open session' error, got %+v", responses[2].Error)
	}
}
