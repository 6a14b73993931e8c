package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests.
// Without QA_ADDR the whole suite is skipped: these tests need a live
// instance with its feed and generation backend reachable.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.Addr == "" {
		s.T().Skip("QA_ADDR not set, skipping end-to-end suite")
	}
	s.client = &http.Client{Timeout: 60 * time.Second}
}

// Step prints a colorized header so scenario phases stand out in logs
func (s *BaseHTTPSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// PostJSON sends a JSON body and decodes the JSON response into out,
// logging full bodies when E2E_DEBUG_JSON is enabled
func (s *BaseHTTPSuite) PostJSON(t *testing.T, path string, body any, out any) int {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	start := time.Now()
	resp, err := s.client.Post(s.Config.Addr+path, "application/json", bytes.NewReader(payload))
	s.Require().NoError(err, "Failed to reach instance at "+s.Config.Addr)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "POST %s [%d] in %v", path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintln(&logBuilder, "\nREQUEST:")
		fmt.Fprintln(&logBuilder, string(payload))
		fmt.Fprintln(&logBuilder, "RESPONSE:")
		fmt.Fprintln(&logBuilder, string(raw))
	}
	t.Log(logBuilder.String())

	if out != nil && len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return resp.StatusCode
}

// GetJSON fetches a path and decodes the JSON response into out
func (s *BaseHTTPSuite) GetJSON(t *testing.T, path string, out any) int {
	start := time.Now()
	resp, err := s.client.Get(s.Config.Addr + path)
	s.Require().NoError(err, "Failed to reach instance at "+s.Config.Addr)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "GET %s [%d] in %v", path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintln(&logBuilder, "\nRESPONSE:")
		fmt.Fprintln(&logBuilder, string(raw))
	}
	t.Log(logBuilder.String())

	if out != nil && len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return resp.StatusCode
}
