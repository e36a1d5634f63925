package timing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"t2c/internal/domain"
	"t2c/internal/errors"
)

// queryTimeLayout is the window parameter format the source API expects.
const queryTimeLayout = "2006-01-02 15:04:05"

// client is an authenticated source API client implementing Service.
type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new source API client authenticated with a bearer
// token and a bounded request timeout.
func NewClient(baseURL, token string, timeout time.Duration) Service {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = timeout

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// timeEntry is the wire shape of one source record
type timeEntry struct {
	Title     string       `json:"title"`
	Notes     string       `json:"notes"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	IsRunning bool         `json:"is_running"`
	Project   *projectData `json:"project"`
}

// projectData is the wire shape of the project attached to a record
type projectData struct {
	Title      string   `json:"title"`
	Color      string   `json:"color"`
	TitleChain []string `json:"title_chain"`
}

// entriesResponse is the source API list envelope
type entriesResponse struct {
	Data []timeEntry `json:"data"`
}

// CompletedBetween fetches the completed records whose start instant falls
// within [min, max].
func (c *client) CompletedBetween(ctx context.Context, min, max time.Time) ([]domain.SourceRecord, error) {
	params := baseQuery()
	params.Set("start_date_min", min.Format(queryTimeLayout))
	params.Set("start_date_max", max.Format(queryTimeLayout))
	return c.fetch(ctx, params)
}

// CompletedSince fetches the completed records whose start instant is at or
// after min.
func (c *client) CompletedSince(ctx context.Context, min time.Time) ([]domain.SourceRecord, error) {
	params := baseQuery()
	params.Set("start_date_min", min.Format(queryTimeLayout))
	return c.fetch(ctx, params)
}

// baseQuery returns the query parameters common to every listing call
func baseQuery() url.Values {
	params := url.Values{}
	params.Set("is_running", "false")
	params.Set("include_project_data", "true")
	params.Set("include_child_projects", "true")
	return params
}

// fetch performs one listing request and maps the response to domain records
func (c *client) fetch(ctx context.Context, params url.Values) ([]domain.SourceRecord, error) {
	endpoint := c.baseURL + "/time-entries?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewRequestError("timing", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewRequestError("timing", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, errors.NewRequestError("timing", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.NewAuthError("timing", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewTransportError("timing", resp.StatusCode, string(body))
	}

	var page entriesResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.NewDecodeError("timing time-entries response", err)
	}

	records := make([]domain.SourceRecord, 0, len(page.Data))
	for _, entry := range page.Data {
		record, err := entry.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// toDomain converts a wire entry to a domain record, parsing both instants.
// A running entry may legitimately carry no end date yet.
func (e timeEntry) toDomain() (domain.SourceRecord, error) {
	start, err := parseSourceTime(e.StartDate)
	if err != nil {
		return domain.SourceRecord{}, errors.NewDecodeError("source record start_date", err)
	}

	var end time.Time
	if e.EndDate != "" {
		end, err = parseSourceTime(e.EndDate)
		if err != nil {
			return domain.SourceRecord{}, errors.NewDecodeError("source record end_date", err)
		}
	} else if !e.IsRunning {
		return domain.SourceRecord{}, errors.NewMissingFieldError("end_date")
	}

	record := domain.SourceRecord{
		Title:     e.Title,
		Notes:     e.Notes,
		Start:     start,
		End:       end,
		IsRunning: e.IsRunning,
	}
	if e.Project != nil {
		record.Project = domain.SourceProject{
			Title:      e.Project.Title,
			Color:      e.Project.Color,
			TitleChain: e.Project.TitleChain,
		}
	}
	return record, nil
}

// parseSourceTime parses a source API timestamp. The API emits RFC 3339 with
// fractional seconds and an explicit offset; plain date-time strings show up
// in older payloads.
func parseSourceTime(value string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		queryTimeLayout,
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
