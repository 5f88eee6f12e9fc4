// Package diarymap builds a single interactive page from a personal diary.
// It renders the diary markdown, cross-references place names mentioned in
// the text against a place registry, and embeds the places, timeline and
// unit history as client-side data next to a map and timeline widget.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, goquery/, etree/).
package diarymap
