// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package testsupport provides shared test utilities that don't depend on other packages
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SQLiteRoutes is a small Express route file still using the synchronous SQLite API
const SQLiteRoutes = `const express = require('express');
const db = require('./db');

const app = express();

app.get('/users/:id', (req, res) => {
  const user = db.prepare('SELECT * FROM users WHERE id = ?').get(req.params.id);
  res.json(user);
});

app.get('/users', async (req, res) => {
  const users = await db.getAll('SELECT * FROM users', []);
  res.json(users);
});

app.post('/users', (req, res) => {
  const stmt = db.prepare('INSERT INTO users VALUES ?');
  stmt.run(req.body.name);
  res.sendStatus(201);
});

app.delete('/users/:id', (req, res) => {
  const result = db.prepare('DELETE FROM users WHERE id = ?').run(req.params.id);
  res.json({ deleted: result.changes });
});

module.exports = app;
`

// RouteFixture is a temporary project directory holding one route file
type RouteFixture struct {
	// Dir is the temporary project directory
	Dir string
	// Path is the route file inside Dir
	Path string
	// T is the testing.T instance used for failures
	T *testing.T
}

// NewRouteFixture writes content to server.js inside a fresh temp directory.
// The directory is removed when the test ends.
func NewRouteFixture(t *testing.T, content string) *RouteFixture {
	t.Helper()

	dir := t.TempDir()
	fixture := &RouteFixture{
		Dir:  dir,
		Path: filepath.Join(dir, "server.js"),
		T:    t,
	}
	fixture.Write(content)
	return fixture
}

// Read returns the current route file contents
func (f *RouteFixture) Read() string {
	f.T.Helper()

	data, err := os.ReadFile(f.Path)
	if err != nil {
		f.T.Fatalf("failed to read fixture file: %v", err)
	}
	return string(data)
}

// Write replaces the route file contents
func (f *RouteFixture) Write(content string) {
	f.T.Helper()

	if err := os.WriteFile(f.Path, []byte(content), 0o644); err != nil {
		f.T.Fatalf("failed to write fixture file: %v", err)
	}
}

// MissingPath returns a path inside the fixture directory that does not exist
func (f *RouteFixture) MissingPath() string {
	return filepath.Join(f.Dir, "missing", "server.js")
}
