// Package naming builds deterministic local filenames from job metadata.
//
// Image filenames join the configured segments, the optional year and
// vol_<volume> markers, the optional part label, and a zero-padded index:
//
//	Sanborn-LOC-Springfield-IL-1925-0007.jpg
//
// The run log filename is the same stem without index or part:
//
//	Sanborn-LOC-Springfield-IL-1925.log
package naming
