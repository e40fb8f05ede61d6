package config

// DefaultConfigTOML is the commented configuration template written by
// `frameprof init`.
const DefaultConfigTOML = `# frameprof configuration file
# Project-level defaults for report generation. Values set in
# .frameprof.yaml or on the command line take precedence.

[report]
# CSV input paths or glob patterns ("data/**/*.csv").
# input = ["data.csv"]

# Path of the generated HTML report.
output = "report.html"

# Report title.
title = "Data report"

# Declarative report schema (YAML). Empty uses the built-in report.
# schema = "report.yaml"

# Depth of the report table of contents.
max_toc_depth = 2

# Number of most frequent values shown per column in the summary.
top = 5
`
