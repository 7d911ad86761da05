package evaluation

import (
	"fmt"
	"regexp"
	"strings"
)

// commonTypos maps frequent misspellings seen in submitted messaging copy
// to their correction. Style findings are informational only and never
// factor into a verdict.
var commonTypos = map[string]string{
	"mesage":      "message",
	"messsage":    "message",
	"repply":      "reply",
	"recieve":     "receive",
	"seperate":    "separate",
	"unsubscibe":  "unsubscribe",
	"unsuscribe":  "unsubscribe",
	"frequecy":    "frequency",
	"complaince":  "compliance",
	"privcy":      "privacy",
	"polcy":       "policy",
	"concent":     "consent",
	"aplly":       "apply",
	"cancle":      "cancel",
	"oppt":        "opt",
	"promtional":  "promotional",
	"marekting":   "marketing",
	"thrid party": "third party",
}

var (
	typoPatterns        = buildTypoPatterns()
	repeatedPunctuation = regexp.MustCompile(`[!?]{2,}`)
)

func buildTypoPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(commonTypos))
	for typo := range commonTypos {
		patterns[typo] = regexp.MustCompile(`(^|\W)` + regexp.QuoteMeta(typo) + `($|\W)`)
	}
	return patterns
}

// CheckStyle scans the submitted text for common typos and punctuation
// slips. It works on the lower-cased raw text and returns human-readable
// warnings in no particular order.
func CheckStyle(text string) []string {
	lowered := strings.ToLower(text)

	var warnings []string
	for typo, pattern := range typoPatterns {
		if pattern.MatchString(lowered) {
			warnings = append(warnings, fmt.Sprintf("possible typo %q (did you mean %q?)", typo, commonTypos[typo]))
		}
	}
	if repeatedPunctuation.MatchString(lowered) {
		warnings = append(warnings, "repeated punctuation (e.g. \"!!\" or \"??\") looks unprofessional in customer-facing copy")
	}
	return warnings
}
