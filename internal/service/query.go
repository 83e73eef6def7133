package service

import (
	"fmt"
	"strings"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/i18n"
)

// BuildQuery renders the localized natural-language query sent to the AI
// collaborator. The fragment order is fixed: intro+name, from+start,
// to+destination, transport mode (label lower-cased), then a via-clause
// listing the intermediate values in list order, joined with " ; ". The
// via-clause is omitted when no intermediate has non-empty trimmed text.
//
// The function is pure: no network, deterministic for a given
// (request, translator) pair.
func BuildQuery(req domain.TripRequest, tr i18n.Translator) string {
	via := ""
	if steps := req.Waypoints.Steps(); len(steps) > 0 {
		via = fmt.Sprintf(" %s %s", tr.T("query.via"), strings.Join(steps, " ; "))
	}

	return fmt.Sprintf(`%s "%s" %s "%s" %s "%s" %s %s%s.`,
		tr.T("query.intro"), req.Name,
		tr.T("query.from"), req.Waypoints.Start(),
		tr.T("query.to"), req.Waypoints.Destination(),
		tr.T("query.mode"), strings.ToLower(tr.TransportLabel(req.TransportMode)),
		via,
	)
}
