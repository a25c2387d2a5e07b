// Package schemas embeds the JSON Schema documents for the artifacts this
// service produces, so validators do not depend on the working directory.
package schemas

import _ "embed"

// ATSAnalysis is the schema for the analysis returned by the scoring layer.
//
//go:embed ats_analysis.schema.json
var ATSAnalysis string

// ParsedResume is the schema for the extraction layer's output.
//
//go:embed parsed_resume.schema.json
var ParsedResume string
