// Package http provides HTTP-based implementations of rtfm.InventoryService
// and rtfm.PageFetcher for talking to Sphinx documentation sites.
package http

import (
	"bufio"
	"compress/zlib"
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/rtfm"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the default per-host rate limit. Documentation
// hosts are shared infrastructure; one symbol lookup should never hammer one.
const DefaultRequestsPerSecond = 2.0

// Ensure InventoryService implements rtfm.InventoryService at compile time.
var _ rtfm.InventoryService = (*InventoryService)(nil)

// entryRegex matches one line of a decompressed Sphinx object inventory:
// name, domain:subdirective directive, priority, location, display name.
var entryRegex = regexp.MustCompile(`^(.+?)\s+(\S*:\S*)\s+(-?\d+)\s+(\S+)\s+(.*)$`)

// InventoryService fetches and parses v2 Sphinx object inventories
// (objects.inv). Concurrent fetches for the same source are deduplicated;
// requests to the same host are rate limited.
type InventoryService struct {
	client  *http.Client
	timeout time.Duration
	rps     float64

	group singleflight.Group

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// InventoryOption configures an InventoryService.
type InventoryOption func(*InventoryService)

// WithInventoryTimeout sets the timeout for inventory requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithInventoryTimeout(d time.Duration) InventoryOption {
	return func(s *InventoryService) {
		s.timeout = d
	}
}

// WithRequestsPerSecond sets the per-host rate limit.
func WithRequestsPerSecond(rps float64) InventoryOption {
	return func(s *InventoryService) {
		s.rps = rps
	}
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(opts ...InventoryOption) *InventoryService {
	s := &InventoryService{
		timeout:  DefaultFetchTimeout,
		rps:      DefaultRequestsPerSecond,
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{Timeout: s.timeout}

	return s
}

// FetchInventory retrieves and parses source's object inventory. Concurrent
// calls for the same source key share a single fetch.
func (s *InventoryService) FetchInventory(ctx context.Context, source rtfm.Source) (*rtfm.Inventory, error) {
	v, err, _ := s.group.Do(source.Key, func() (any, error) {
		return s.fetchInventory(ctx, source)
	})
	if err != nil {
		return nil, err
	}
	return v.(*rtfm.Inventory), nil
}

func (s *InventoryService) fetchInventory(ctx context.Context, source rtfm.Source) (*rtfm.Inventory, error) {
	inventoryURL := source.URL + "/objects.inv"

	if err := s.wait(ctx, inventoryURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, inventoryURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, rtfm.Errorf(rtfm.EUNAVAILABLE, "failed to fetch inventory from %s: %v", inventoryURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, rtfm.Errorf(rtfm.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, inventoryURL)
	}

	return parseInventory(resp.Body, source)
}

// wait blocks until the host's rate limiter allows another request.
func (s *InventoryService) wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rtfm.Errorf(rtfm.EINVALID, "invalid source URL: %v", err)
	}

	s.mu.Lock()
	limiter, ok := s.limiters[u.Host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(s.rps), 1)
		s.limiters[u.Host] = limiter
	}
	s.mu.Unlock()

	return limiter.Wait(ctx)
}

// parseInventory reads a v2 object inventory: four plain-text header lines
// followed by zlib-compressed entry lines.
func parseInventory(r io.Reader, source rtfm.Source) (*rtfm.Inventory, error) {
	br := bufio.NewReader(r)

	header, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(header, "# Sphinx inventory version") {
		return nil, rtfm.Errorf(rtfm.EINVALID, "unrecognized inventory header %q", header)
	}
	if !strings.HasSuffix(header, "2") {
		return nil, rtfm.Errorf(rtfm.EINVALID, "unsupported inventory version in %q", header)
	}

	projectLine, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	versionLine, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(projectLine, "# Project") || !strings.HasPrefix(versionLine, "# Version") {
		return nil, rtfm.Errorf(rtfm.EINVALID, "malformed inventory project/version header")
	}

	compression, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(compression, "zlib") {
		return nil, rtfm.Errorf(rtfm.EINVALID, "incompatible inventory compression %q", compression)
	}

	zr, err := zlib.NewReader(br)
	if err != nil {
		return nil, rtfm.Errorf(rtfm.EINVALID, "failed to decompress inventory: %v", err)
	}
	defer zr.Close()

	inv := &rtfm.Inventory{
		Project: strings.TrimSpace(strings.TrimPrefix(projectLine, "# Project:")),
		Version: strings.TrimSpace(strings.TrimPrefix(versionLine, "# Version:")),
	}

	seenModules := make(map[string]bool)
	scanner := bufio.NewScanner(zr)
	for scanner.Scan() {
		if entry, ok := parseEntry(scanner.Text(), source, seenModules); ok {
			inv.Entries = append(inv.Entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, rtfm.Errorf(rtfm.EINVALID, "failed to read inventory entries: %v", err)
	}

	return inv, nil
}

func readHeaderLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", rtfm.Errorf(rtfm.EINVALID, "truncated inventory header")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseEntry converts one inventory line into an Entry. Lines that don't
// match the entry format are skipped, as are duplicate module entries.
func parseEntry(line string, source rtfm.Source, seenModules map[string]bool) (rtfm.Entry, bool) {
	m := entryRegex.FindStringSubmatch(line)
	if m == nil {
		return rtfm.Entry{}, false
	}
	name, directive, location, dispname := m[1], m[2], m[4], m[5]

	domain, subdirective, _ := strings.Cut(directive, ":")

	if directive == "py:module" {
		if seenModules[name] {
			return rtfm.Entry{}, false
		}
		seenModules[name] = true
	}

	if directive == "std:doc" {
		subdirective = "label"
	}

	// A "$" location suffix abbreviates "anchor equals the object name".
	if strings.HasSuffix(location, "$") {
		location = strings.TrimSuffix(location, "$") + name
	}

	key := name
	if dispname != "-" {
		key = dispname
	}

	prefix := ""
	if domain == "std" {
		prefix = subdirective + ":"
	}

	if source.Key == "discord.py" {
		key = shortenDiscordKey(key)
	}

	return rtfm.Entry{
		Name: prefix + key,
		Key:  name,
		URL:  source.URL + "/" + location,
	}, true
}

// shortenDiscordKey rewrites discord.py extension prefixes to the short
// forms users actually type.
func shortenDiscordKey(key string) string {
	key = strings.ReplaceAll(key, "discord.ext.commands.", "commands.")
	key = strings.ReplaceAll(key, "discord.commands.", "commands.")
	key = strings.ReplaceAll(key, "discord.ext.tasks.", "tasks.")
	return key
}
