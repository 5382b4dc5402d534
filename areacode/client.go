// Package areacode implements the outbound client for the allareacodes.com
// lookup API, used to derive a US state from a phone number's NPA.
package areacode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"contacts/errs"
)

const (
	DefaultBaseURL = "http://www.allareacodes.com"

	// The API requires a tracking identity on every request.
	DefaultTrackingEmail = "h.firth@ncl.ac.uk"
	DefaultTrackingURL   = "http://www.ncl.ac.uk/undergraduate/modules/module/CSC8104"

	DefaultTimeout = 10 * time.Second
)

type Options struct {
	BaseURL       string
	TrackingEmail string
	TrackingURL   string
	Timeout       time.Duration
}

// Client issues synchronous lookups against the area-code API. It holds a
// single http.Client configured with an explicit timeout and is safe for
// concurrent use; construct one per process and share it.
type Client struct {
	http          *http.Client
	baseURL       string
	trackingEmail string
	trackingURL   string
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.TrackingEmail == "" {
		opts.TrackingEmail = DefaultTrackingEmail
	}
	if opts.TrackingURL == "" {
		opts.TrackingURL = DefaultTrackingURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Client{
		http:          &http.Client{Timeout: opts.Timeout},
		baseURL:       opts.BaseURL,
		trackingEmail: opts.TrackingEmail,
		trackingURL:   opts.TrackingURL,
	}
}

type lookupResponse struct {
	AreaCodes []struct {
		State string `json:"state"`
	} `json:"area_codes"`
}

// StateForAreaCode resolves npa to a state name using the first entry of the
// response's area_codes array. Transport failures, non-2xx statuses and
// malformed bodies surface as EUNAVAILABLE; an empty result set surfaces as
// ENOTFOUND. There is no retry.
func (c *Client) StateForAreaCode(ctx context.Context, npa string) (string, error) {
	query := url.Values{}
	query.Set("npa", npa)
	query.Set("tracking_email", c.trackingEmail)
	query.Set("tracking_url", c.trackingURL)

	endpoint := c.baseURL + "/api/1.0/api.json?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errs.Errorf(errs.EINTERNAL, "areacode: build request: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Errorf(errs.EUNAVAILABLE, "areacode: lookup request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Errorf(errs.EUNAVAILABLE, "areacode: lookup returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Errorf(errs.EUNAVAILABLE, "areacode: malformed lookup response: %v", err)
	}

	if len(body.AreaCodes) == 0 {
		return "", errs.Errorf(errs.ENOTFOUND, "areacode: no match for npa %s", npa)
	}

	return body.AreaCodes[0].State, nil
}
