package http_test

import (
	"bytes"
	"compress/zlib"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/rtfm"
	rtfmhttp "github.com/fwojciec/rtfm/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildInventory assembles a v2 objects.inv payload from entry lines.
func buildInventory(t *testing.T, lines ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("# Sphinx inventory version 2\n")
	buf.WriteString("# Project: testproj\n")
	buf.WriteString("# Version: 1.0\n")
	buf.WriteString("# The remainder of this file is compressed using zlib.\n")

	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func serveInventory(t *testing.T, payload []byte) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/objects.inv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(payload)
	}))
	t.Cleanup(server.Close)
	return server
}

func newService() *rtfmhttp.InventoryService {
	// High rate limit keeps tests fast.
	return rtfmhttp.NewInventoryService(rtfmhttp.WithRequestsPerSecond(1000))
}

func TestInventoryService_FetchInventory(t *testing.T) {
	t.Parallel()

	t.Run("parses entries and expands anchor abbreviations", func(t *testing.T) {
		t.Parallel()

		payload := buildInventory(t,
			"discord.Client py:class 1 api.html#$ -",
			"intro std:doc -1 intro.html Introduction",
		)
		server := serveInventory(t, payload)
		source := rtfm.Source{Key: "test", URL: server.URL}

		inv, err := newService().FetchInventory(context.Background(), source)
		require.NoError(t, err)

		assert.Equal(t, "testproj", inv.Project)
		assert.Equal(t, "1.0", inv.Version)
		require.Len(t, inv.Entries, 2)

		assert.Equal(t, rtfm.Entry{
			Name: "discord.Client",
			Key:  "discord.Client",
			URL:  server.URL + "/api.html#discord.Client",
		}, inv.Entries[0])

		// std-domain entries are prefixed and use their display name.
		assert.Equal(t, rtfm.Entry{
			Name: "label:Introduction",
			Key:  "intro",
			URL:  server.URL + "/intro.html",
		}, inv.Entries[1])
	})

	t.Run("skips duplicate module entries", func(t *testing.T) {
		t.Parallel()

		payload := buildInventory(t,
			"foo py:module 0 foo.html#module-foo -",
			"foo py:module 0 foo.html#module-foo -",
		)
		server := serveInventory(t, payload)

		inv, err := newService().FetchInventory(context.Background(), rtfm.Source{Key: "test", URL: server.URL})
		require.NoError(t, err)

		assert.Len(t, inv.Entries, 1)
	})

	t.Run("shortens discord.py extension prefixes", func(t *testing.T) {
		t.Parallel()

		payload := buildInventory(t,
			"discord.ext.commands.Bot py:class 1 ext/commands/api.html#$ -",
		)
		server := serveInventory(t, payload)
		source := rtfm.Source{Key: "discord.py", URL: server.URL}

		inv, err := newService().FetchInventory(context.Background(), source)
		require.NoError(t, err)

		require.Len(t, inv.Entries, 1)
		assert.Equal(t, "commands.Bot", inv.Entries[0].Name)
		// The scrape target keeps the full name.
		assert.Equal(t, "discord.ext.commands.Bot", inv.Entries[0].Key)
	})

	t.Run("skips lines that do not match the entry format", func(t *testing.T) {
		t.Parallel()

		payload := buildInventory(t,
			"not an entry",
			"discord.Client py:class 1 api.html#$ -",
		)
		server := serveInventory(t, payload)

		inv, err := newService().FetchInventory(context.Background(), rtfm.Source{Key: "test", URL: server.URL})
		require.NoError(t, err)

		assert.Len(t, inv.Entries, 1)
	})

	t.Run("returns EUNAVAILABLE when the inventory is missing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		t.Cleanup(server.Close)

		_, err := newService().FetchInventory(context.Background(), rtfm.Source{Key: "test", URL: server.URL})
		require.Error(t, err)

		assert.Equal(t, rtfm.EUNAVAILABLE, rtfm.ErrorCode(err))
	})

	t.Run("returns EINVALID for an unrecognized header", func(t *testing.T) {
		t.Parallel()

		server := serveInventory(t, []byte("<html>not an inventory</html>\n\n\n\n"))

		_, err := newService().FetchInventory(context.Background(), rtfm.Source{Key: "test", URL: server.URL})
		require.Error(t, err)

		assert.Equal(t, rtfm.EINVALID, rtfm.ErrorCode(err))
	})

	t.Run("returns EINVALID for unsupported inventory versions", func(t *testing.T) {
		t.Parallel()

		payload := []byte("# Sphinx inventory version 1\n# Project: p\n# Version: 1\n# zlib\n")
		server := serveInventory(t, payload)

		_, err := newService().FetchInventory(context.Background(), rtfm.Source{Key: "test", URL: server.URL})
		require.Error(t, err)

		assert.Equal(t, rtfm.EINVALID, rtfm.ErrorCode(err))
	})
}
