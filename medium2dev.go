// Package medium2dev converts a published Medium article into a DEV.to
// markdown draft. It fetches the article page, extracts the readable
// content, downloads embedded images to local storage, renders markdown
// with a DEV.to frontmatter header, and optionally submits the result to
// the DEV.to articles API as an unpublished draft.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, htmltomarkdown/).
package medium2dev
