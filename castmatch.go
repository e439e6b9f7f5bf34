// Package castmatch matches arbitrary web pages to episodes in the
// Overcast podcast directory. It extracts structured hints (titles, links,
// identifiers) from uncontrolled page markup, turns them into ranked
// directory search queries, and resolves either a direct episode link or a
// best-matching episode via fuzzy title scoring across candidate shows.
//
// This package contains domain types, pure scoring logic, and collaborator
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, gemini/), with orchestration in
// resolve/.
package castmatch
