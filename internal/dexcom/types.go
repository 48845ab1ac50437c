package dexcom

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/five82/bgcheck/internal/glucose"
	"github.com/five82/bgcheck/internal/source"
)

type region struct {
	baseURL       string
	applicationID string
}

var regions = map[string]region{
	"us": {
		baseURL:       "https://share2.dexcom.com/ShareWebServices/Services",
		applicationID: "d89443d2-327c-4a6f-89e5-496bbb0317db",
	},
	"ous": {
		baseURL:       "https://shareous1.dexcom.com/ShareWebServices/Services",
		applicationID: "d89443d2-327c-4a6f-89e5-496bbb0317db",
	},
	"jp": {
		baseURL:       "https://share.dexcom.jp/ShareWebServices/Services",
		applicationID: "d8665ade-9673-4e27-9ff6-92db4ce13d13",
	},
}

// DefaultRegion is used when no region is configured.
const DefaultRegion = "ous"

func lookupRegion(name string) (region, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultRegion
	}
	r, ok := regions[key]
	if !ok {
		return region{}, fmt.Errorf("unknown dexcom region %q (want us, ous or jp)", name)
	}
	return r, nil
}

type authenticateRequest struct {
	AccountName   string `json:"accountName"`
	Password      string `json:"password"`
	ApplicationID string `json:"applicationId"`
}

type loginRequest struct {
	AccountID     string `json:"accountId"`
	Password      string `json:"password"`
	ApplicationID string `json:"applicationId"`
}

// glucoseValue mirrors one entry of ReadPublisherLatestGlucoseValues.
type glucoseValue struct {
	WT    string          `json:"WT"`
	ST    string          `json:"ST"`
	DT    string          `json:"DT"`
	Value float64         `json:"Value"`
	Trend json.RawMessage `json:"Trend"`
}

// Older deployments report the trend as an index into this table.
var trendNames = []string{
	"None",
	"DoubleUp",
	"SingleUp",
	"FortyFiveUp",
	"Flat",
	"FortyFiveDown",
	"SingleDown",
	"DoubleDown",
	"NotComputable",
	"RateOutOfRange",
}

func (v glucoseValue) reading() glucose.Reading {
	r := glucose.Numeric(mgdlToMmol(v.Value))
	r.Time = parseDexcomTime(v.WT)
	r.Trend = v.trendName()
	return r
}

func (v glucoseValue) trendName() string {
	if len(v.Trend) == 0 {
		return ""
	}
	var name string
	if err := json.Unmarshal(v.Trend, &name); err == nil {
		return name
	}
	var idx int
	if err := json.Unmarshal(v.Trend, &idx); err == nil && idx >= 0 && idx < len(trendNames) {
		return trendNames[idx]
	}
	return ""
}

var dexcomTimeRe = regexp.MustCompile(`Date\((\d+)(?:[+-]\d{4})?\)`)

// parseDexcomTime parses "Date(1691455258000)" and "Date(1691455258000-0400)".
// The millisecond count is always UTC; the offset is informational.
func parseDexcomTime(value string) time.Time {
	m := dexcomTimeRe.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// apiError mirrors the service's error payload.
type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

var sessionErrorCodes = map[string]bool{
	"SessionIdNotFound": true,
	"SessionNotValid":   true,
}

var accountErrorCodes = map[string]bool{
	"AccountPasswordInvalid":             true,
	"SSO_AuthenticateAccountNotFound":    true,
	"SSO_AuthenticatePasswordInvalid":    true,
	"SSO_AuthenticateMaxAttemptsExceeed": true,
}

func responseError(path string, status int, body []byte) error {
	var payload apiError
	if err := json.Unmarshal(body, &payload); err != nil || payload.Code == "" {
		return fmt.Errorf("api %s returned status %d", path, status)
	}
	switch {
	case sessionErrorCodes[payload.Code]:
		return fmt.Errorf("%w: %s", ErrSessionExpired, payload.Code)
	case accountErrorCodes[payload.Code]:
		return fmt.Errorf("%w: %s", source.ErrCredentials, payload.Code)
	}
	return fmt.Errorf("api %s returned status %d: %s %s", path, status, payload.Code, payload.Message)
}
