// Package regcheck provides a document-compliance review pipeline.
// An uploaded corporate/legal document (DOCX or PDF) is classified,
// checked against the applicable checklist, compared with regulatory
// rules retrieved via semantic search, and reviewed by a language model
// for compliance red flags. The pipeline produces an annotated copy of
// the document plus JSON and TSV reports.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/, goquery/).
package regcheck
