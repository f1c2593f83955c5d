package sources

// YouTube support is split across three files by responsibility:
//   videoid.go    — video ID extraction from user-supplied links
//   innertube.go  — Innertube API types, constants, and the caption service
//   transcript.go — transcript fetching with the two-attempt fallback chain
