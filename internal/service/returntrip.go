package service

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/i18n"
)

// PrepareReturn builds the homeward variant of a trip: the waypoints are
// reversed (ids and values preserved, roles flip with position) and the name
// gains a localized " - <Return>" suffix.
//
// Any existing trailing suffix in any supported language is stripped before
// the current language's suffix is appended, so names created under a
// different active language un-suffix correctly. Stripping first makes
// repeated applications idempotent on the name: two calls in a row restore
// the original waypoint order and leave exactly one suffix.
//
// A name that organically ends with another language's return word is
// stripped all the same; that is a known limitation carried over on purpose.
//
// TransportMode and CurrentLocation are never touched.
func PrepareReturn(req domain.TripRequest, tr i18n.Translator) domain.TripRequest {
	out := req.Clone()
	out.Waypoints = out.Waypoints.Reversed()
	out.Name = resuffix(req.Name, i18n.ReturnSuffixes(), tr.ReturnSuffix())
	return out
}

// resuffix strips one trailing " - <suffix>" matching any entry of strip,
// then appends " - <active>". The alternation is built fresh from the live
// suffix set rather than hardcoded.
func resuffix(name string, strip []string, active string) string {
	quoted := lo.Map(strip, func(s string, _ int) string { return regexp.QuoteMeta(s) })
	re := regexp.MustCompile(" - (" + strings.Join(quoted, "|") + ")$")
	return re.ReplaceAllString(name, "") + " - " + active
}
