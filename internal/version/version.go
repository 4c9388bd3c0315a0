// Package version reports the running version of chronicle and looks up the
// latest published release, remembering the answer for a day.
package version

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/singleflight"

	"github.com/agenthands/chronicle/internal/errors"
	"github.com/agenthands/chronicle/internal/logger"
)

// Checker fetches the latest release tag from a GitHub-style releases API.
type Checker struct {
	Current   string
	LatestURL string
	Client    *http.Client
	TTL       time.Duration
	Now       func() time.Time

	mu        sync.Mutex
	latest    string
	fetchedAt time.Time
	group     singleflight.Group
}

func NewChecker(current, latestURL string, timeout, ttl time.Duration) *Checker {
	return &Checker{
		Current:   current,
		LatestURL: latestURL,
		Client:    &http.Client{Timeout: timeout},
		TTL:       ttl,
		Now:       time.Now,
	}
}

type release struct {
	TagName string `json:"tag_name"`
}

// Latest returns the newest released version. Any failure yields the running
// version, which is then cached like a successful answer. The lookup ignores
// cancellation of ctx and is bounded by the client timeout only.
func (c *Checker) Latest(ctx context.Context) string {
	if c.LatestURL == "" {
		return c.Current
	}

	c.mu.Lock()
	if c.latest != "" && c.Now().Sub(c.fetchedAt) < c.TTL {
		v := c.latest
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do("latest", func() (any, error) {
		latest, err := c.fetch(context.WithoutCancel(ctx))
		if err != nil {
			logger.FromContext(ctx).Debugw("Latest version lookup failed", logger.FieldError, err)
			latest = c.Current
		}

		c.mu.Lock()
		c.latest = latest
		c.fetchedAt = c.Now()
		c.mu.Unlock()
		return latest, nil
	})
	return v.(string)
}

// UpdateAvailable reports whether the latest release is newer than Current.
func (c *Checker) UpdateAvailable(ctx context.Context) bool {
	current, err := semver.NewVersion(c.Current)
	if err != nil {
		return false
	}
	latest, err := semver.NewVersion(c.Latest(ctx))
	if err != nil {
		return false
	}
	return latest.GreaterThan(current)
}

func (c *Checker) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LatestURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to reach release API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("release API returned status %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&rel); err != nil {
		return "", errors.Wrap(err, "failed to decode release")
	}

	v, err := semver.NewVersion(strings.TrimPrefix(rel.TagName, "v"))
	if err != nil {
		return "", errors.Wrapf(err, "release tag %q is not a version", rel.TagName)
	}
	return v.String(), nil
}
