// Package cli implements the hackhub command-line interface.
//
// # Overview
//
// The CLI drives the hackathon API through the shared client: auth and
// session management (login, logout, whoami), feature resources (themes,
// problems, results, team, accommodations, subadmins), the capability-gated
// dashboard, and a mock-server command that serves the in-memory API fake
// for local development.
//
// Configuration comes from HACKHUB_* environment variables, or from a YAML
// file named by HACKHUB_CONFIG. With the redis session backend a login
// carries across invocations; the default memory backend lasts one process.
//
// # Usage
//
//	hackhub login -email admin@example.com -password ... -admin
//	hackhub dashboard -once
//	hackhub themes -action create -name FinTech -subadmin
package cli
