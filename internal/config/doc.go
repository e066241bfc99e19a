// Package config defines the job model for the locfetch CLI and loads it
// from YAML.
//
// Two document shapes are supported and unified into the same Job model:
//
//	host: https://tile.loc.gov
//	maps:
//	  <key>:
//	    filename_segments:
//	      name: [LOC, ghost-towns]
//	      year: 1925
//	      vol: "2"
//	      extension: jpg
//	    paths:
//	      - prefix: "_1925-"
//	        default_path: /storage-services/.../_1925-0001.jpg
//	        regex: "_1925-[0-9]*"
//	        index: {start: 1, stop: 42, zfill_width: 4}
//
// and the Sanborn variant:
//
//	host: https://tile.loc.gov
//	municipalities:
//	  <key>:
//	    name: Springfield
//	    state: IL
//	    year: 1925
//	    vol: ""
//	    extension: jpg
//	    paths:
//	      - prefix: "_1925-"
//	        pad_num: true
//	        default_path: ...
//	        regex: "_1925-[0-9]*"
//	        index_start: 1
//	        index_stop: 42
//
// Regex patterns are compiled during Load so malformed configuration fails
// before any fetch is attempted. HTTP settings can be overridden with
// LOCFETCH_* environment variables.
package config
