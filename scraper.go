// Package scraper downloads articles from a paginated news listing and saves
// their bodies as plain text files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package scraper
