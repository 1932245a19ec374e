// Package slidelens derives a visual inventory of a slide-based document
// (shape text, position, formatting) and produces paginated thumbnail
// contact sheets of its slides, including synthetic placeholders for
// hidden slides.
//
// The core is the geometric/layout engine shared by both outputs:
// resolving absolute shape positions through arbitrarily nested groups,
// a visual row-clustering sort that orders shapes the way a human reads a
// slide, and a grid pagination and composition algorithm that lays out
// variable numbers of thumbnails into bounded, labeled pages.
//
// Document-to-PDF and PDF-to-raster conversion are delegated to external
// tools (LibreOffice and poppler's pdftoppm) invoked as blocking
// subprocesses; see Config for overriding their locations.
package slidelens
