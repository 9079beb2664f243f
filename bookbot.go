// Package bookbot turns plain-text literary works from public text
// archives into clean reading documents with display metadata. It strips
// archive boilerplate around the actual work, normalizes whitespace,
// recovers a title and author when no structured metadata exists, and
// plans a placeholder cover layout.
//
// This package contains domain types, interfaces, and the pure
// text-processing core, following Ben Johnson's Standard Package Layout.
// I/O implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, http/, fs/, svg/).
package bookbot
