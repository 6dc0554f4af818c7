// Package powerbi lists workspace reports and issues embed tokens for the
// admin analytics page.
package powerbi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/chrisdamba/foodadmin/internal/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	resource        = "https://analysis.windows.net/powerbi/api"
	defaultAPIBase  = "https://api.powerbi.com/v1.0/myorg"
	defaultAuthBase = "https://login.microsoftonline.com"
	embedBase       = "https://app.powerbi.com/reportEmbed"

	placeholderTenant = "your-tenant-id"
	mockWorkspace     = "mock-workspace-id"
	mockEmbedToken    = "mock-embed-token-for-testing-purposes-only"
)

type Report struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	WebURL    string `json:"webUrl"`
	EmbedURL  string `json:"embedUrl"`
	DatasetID string `json:"datasetId"`
}

type EmbedToken struct {
	Token    string `json:"embedToken"`
	EmbedURL string `json:"embedUrl"`
	ReportID string `json:"reportId"`
}

type Client struct {
	cfg      models.PowerBIConfig
	apiBase  string
	authBase string
	http     *http.Client
}

type Option func(*Client)

// WithEndpoints overrides the Power BI API and Azure AD login hosts.
func WithEndpoints(apiBase, authBase string) Option {
	return func(c *Client) {
		c.apiBase = apiBase
		c.authBase = authBase
	}
}

func NewClient(cfg models.PowerBIConfig, opts ...Option) *Client {
	c := &Client{cfg: cfg, apiBase: defaultAPIBase, authBase: defaultAuthBase}
	for _, opt := range opts {
		opt(c)
	}
	if !c.Mock() {
		creds := clientcredentials.Config{
			ClientID:       cfg.ClientID,
			ClientSecret:   cfg.ClientSecret,
			TokenURL:       fmt.Sprintf("%s/%s/oauth2/token", c.authBase, cfg.TenantID),
			EndpointParams: url.Values{"resource": {resource}},
		}
		c.http = creds.Client(context.Background())
	}
	return c
}

// Mock reports whether credentials are missing, in which case fixture data is served.
func (c *Client) Mock() bool {
	return c.cfg.TenantID == "" || c.cfg.TenantID == placeholderTenant
}

func embedURL(reportID, groupID string) string {
	v := url.Values{"reportId": {reportID}}
	if groupID != "" {
		v.Set("groupId", groupID)
	}
	return embedBase + "?" + v.Encode()
}

func mockReports() []Report {
	fixtures := []struct{ n, name string }{
		{"1", "Food Sales Analysis"},
		{"2", "Customer Insights Dashboard"},
		{"3", "Delivery Performance Metrics"},
	}
	reports := make([]Report, len(fixtures))
	for i, f := range fixtures {
		id := "mock-report-" + f.n
		reports[i] = Report{
			ID:        id,
			Name:      f.name,
			WebURL:    "https://app.powerbi.com/reports/" + id,
			EmbedURL:  embedURL(id, ""),
			DatasetID: "mock-dataset-" + f.n,
		}
	}
	return reports
}

func (c *Client) Reports(ctx context.Context) ([]Report, error) {
	if c.Mock() {
		log.Debug("serving mock Power BI reports")
		return mockReports(), nil
	}

	endpoint := fmt.Sprintf("%s/groups/%s/reports", c.apiBase, url.PathEscape(c.cfg.WorkspaceID))
	var body struct {
		Value []Report `json:"value"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &body); err != nil {
		return nil, fmt.Errorf("fetch reports: %w", err)
	}
	return body.Value, nil
}

func (c *Client) EmbedToken(ctx context.Context, reportID string) (*EmbedToken, error) {
	if c.Mock() {
		return &EmbedToken{
			Token:    mockEmbedToken,
			EmbedURL: embedURL(reportID, mockWorkspace),
			ReportID: reportID,
		}, nil
	}

	endpoint := fmt.Sprintf("%s/groups/%s/reports/%s/GenerateToken",
		c.apiBase, url.PathEscape(c.cfg.WorkspaceID), url.PathEscape(reportID))
	var body struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, endpoint, map[string]string{"accessLevel": "View"}, &body); err != nil {
		return nil, fmt.Errorf("generate embed token: %w", err)
	}
	return &EmbedToken{
		Token:    body.Token,
		EmbedURL: embedURL(reportID, c.cfg.WorkspaceID),
		ReportID: reportID,
	}, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, in, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.WithFields(log.Fields{"status": resp.StatusCode, "endpoint": endpoint}).Error(string(detail))
		return fmt.Errorf("power bi responded %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
