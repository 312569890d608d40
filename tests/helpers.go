//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var baseURL string

func init() {
	host := getEnv("TEST_API_HOST", "localhost")
	port := getEnv("TEST_API_PORT", "8080")
	baseURL = fmt.Sprintf("http://%s:%s", host, port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// testDomain is the short domain used for links created by the suite
func testDomain() string {
	return getEnv("TEST_SHORT_DOMAIN", "dub.test")
}

// makeRequest performs an HTTP request against the running server without following redirects
func makeRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	client := &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range headers {
		// net/http ignores a Host entry in the header map
		if strings.EqualFold(key, "Host") {
			req.Host = value
			continue
		}
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, respBody
}

func parseJSONResponse(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v), "response body: %s", string(body))
}

func assertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// workspaceHeaders returns the headers for acting on a fresh workspace
func workspaceHeaders(workspaceID uuid.UUID) map[string]string {
	return map[string]string{"X-Workspace-ID": workspaceID.String()}
}

func generateTestKey() string {
	return "it-" + uuid.New().String()[:8]
}

// createTestLink creates a link through the API and returns the decoded response
func createTestLink(t *testing.T, workspaceID uuid.UUID, key, url string) map[string]interface{} {
	t.Helper()
	resp, body := makeRequest(t, http.MethodPost, "/api/links", map[string]interface{}{
		"domain": testDomain(),
		"key":    key,
		"url":    url,
	}, workspaceHeaders(workspaceID))
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", string(body))

	var link map[string]interface{}
	parseJSONResponse(t, body, &link)
	return link
}

// waitForCondition polls condition until it holds or the timeout passes
func waitForCondition(t *testing.T, timeout time.Duration, condition func() bool, errorMsg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	t.Fatal(errorMsg)
}
