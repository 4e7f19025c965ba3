package extractor

import "regexp"

// Antigen names: A/TEXAS/50/2012, B/Washington/02/2019,
// A(H3N2)/Hong Kong/4801/2014, A/swine/Ohio/A02524915/2020. Anything may
// follow the year (reassortant names, subtype in parentheses).
var antigenNameRe = regexp.MustCompile(`(?i)^\s*([AB](?:\(H\d+(?:N\d+)?\))?/[^/]+(?:/[^/]+){0,2}/\d{1,4})`)

// One passage step such as MDCK1, SIAT2, E3, HCK?, or a bare OR/CS marker.
const passageToken = `(?:MDCK|SIAT|HCK|HEK|QMC|SPFCK|SPF|CELL|EGG|OR|CS|E|C|X|S)\??\d*`

// Passage annotations: one or more steps joined by '/', ',' or '+'.
var passageRe = regexp.MustCompile(`(?i)^\s*(` + passageToken + `(?:\s*[/,+]\s*` + passageToken + `)*)\s*$`)

// Report title recognised by the factory, e.g.
// "Table 3. Antigenic analysis of influenza A(H3N2) viruses - Plaque Reduction Neutralisation (MDCK-SIAT) (2020-05-01)".
// Groups: subtype, assay phrase (optional), ISO date.
var titleRe = regexp.MustCompile(`(?i)^\s*Table\s+\d+\.\s*Antigenic analysis of influenza\s+(\S+)\s+viruses\s*(?:[-–]\s*(.+?))?\s*\((\d{4}-\d{2}-\d{2})\)\s*$`)

var plaqueRe = regexp.MustCompile(`(?i)^plaque`)

var rbcRe = regexp.MustCompile(`(?i)\b(turkey|guinea[- ]?pig|chicken|human|horse)\s+(?:RBC|red blood cells|erythrocytes)`)

var lineageRe = regexp.MustCompile(`(?i)\b(victoria|yamagata)\b`)

// Ferret serum identifiers such as F12/20 or SH1234/19.
var serumIDRe = regexp.MustCompile(`(?i)^\s*([A-Z]{1,3}\d+/\d{2,4})\s*$`)
