// Package portsift discovers candidate URLs from a web-archive index
// by keyword pattern, then concurrently probes each candidate to
// classify it as dead, live, or a login portal.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, sqlite/); pipeline orchestration lives in scan/.
package portsift
