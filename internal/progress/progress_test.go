// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	testCases := []struct {
		name      string
		source    string
		total     int
		converted int
	}{
		{
			name:   "empty file",
			source: "",
		},
		{
			name:   "single sync route",
			source: "app.get('/x', (req, res) => { db.prepare('SELECT 1').get() })",
			total:  1,
		},
		{
			name:      "single async route",
			source:    "app.get('/x', async (req, res) => { await db.getOne('SELECT 1', []) })",
			total:     1,
			converted: 1,
		},
		{
			name: "mixed verbs and middleware",
			source: "app.get('/a', (req, res) => {});\n" +
				"app.post('/b', async (req, res) => {});\n" +
				"app.put('/c', auth, (req, res, next) => {});\n" +
				"app.delete('/d', function (req, res) {});\n" +
				"app.use((req, res, next) => {});\n" +
				"app.patch('/e', (req, res) => {});\n",
			total:     4,
			converted: 1,
		},
		{
			name:   "handler passed by name",
			source: "app.get('/health', healthCheck);\n",
		},
		{
			name:   "handler signature on another line",
			source: "app.get('/a',\n  (req, res) => {});\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Count(tc.source)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.converted, p.Converted)
			assert.Equal(t, tc.total-tc.converted, p.Remaining())
		})
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		progress Progress
		percent  int
		ok       bool
		text     string
	}{
		{Progress{Total: 0, Converted: 0}, 0, false, "N/A"},
		{Progress{Total: 1, Converted: 0}, 0, true, "0%"},
		{Progress{Total: 1, Converted: 1}, 100, true, "100%"},
		{Progress{Total: 3, Converted: 1}, 33, true, "33%"},
		{Progress{Total: 3, Converted: 2}, 66, true, "66%"},
		{Progress{Total: 4, Converted: 1}, 25, true, "25%"},
	}

	for _, tc := range testCases {
		percent, ok := tc.progress.Percent()
		assert.Equal(t, tc.percent, percent)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.text, tc.progress.PercentString())
	}
}

func TestDone(t *testing.T) {
	assert.False(t, Progress{}.Done())
	assert.False(t, Progress{Total: 2, Converted: 1}.Done())
	assert.True(t, Progress{Total: 2, Converted: 2}.Done())
}

func TestWriteReport(t *testing.T) {
	testCases := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:   "unconverted route",
			source: "app.get('/x', (req, res) => { db.prepare('SELECT 1').get() })",
			expected: "Total routes: 1\n" +
				"Async routes: 0\n" +
				"Remaining: 1\n" +
				"\n" +
				"Progress: 0/1 (0%)\n",
		},
		{
			name:   "converted route",
			source: "app.get('/x', async (req, res) => { db.prepare('SELECT 1').get() })",
			expected: "Total routes: 1\n" +
				"Async routes: 1\n" +
				"Remaining: 0\n" +
				"\n" +
				"Progress: 1/1 (100%)\n",
		},
		{
			name:   "no routes",
			source: "",
			expected: "Total routes: 0\n" +
				"Async routes: 0\n" +
				"Remaining: 0\n" +
				"\n" +
				"Progress: 0/0 (N/A)\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteReport(&buf, Count(tc.source)))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}
