// Package linkx submits page URLs to a remote link-extraction service and
// presents the returned links with visit and copy affordances.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, survey/).
package linkx
