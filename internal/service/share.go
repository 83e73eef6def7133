package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jyvais/backend/internal/domain"
	"github.com/jyvais/backend/internal/i18n"
)

const (
	mapBaseURL = "https://www.google.com/maps/dir/"
	qrBaseURL  = "https://api.qrserver.com/v1/create-qr-code/"
)

// travelModeTokens maps transport modes to map deep-link travelmode tokens.
// The table is closed: an unmapped mode is an error, never a silent default.
var travelModeTokens = map[domain.TransportMode]string{
	domain.ModeCar:        "driving",
	domain.ModePedestrian: "walking",
	domain.ModeTransit:    "transit",
}

// ShareLinks are the shareable artifacts derived from a trip request.
// None of them depend on the AI response text.
type ShareLinks struct {
	MapURL    string `json:"mapUrl"`
	QRCodeURL string `json:"qrCodeUrl"`
	MailtoURL string `json:"mailtoUrl"`
}

// BuildShareLinks derives all three share artifacts for a request. routeName
// is the confirmed trip name used in the e-mail subject and body. The output
// is byte-identical across invocations with the same inputs.
func BuildShareLinks(req domain.TripRequest, routeName string, tr i18n.Translator) (ShareLinks, error) {
	mapURL, err := MapURL(req)
	if err != nil {
		return ShareLinks{}, err
	}
	return ShareLinks{
		MapURL:    mapURL,
		QRCodeURL: QRCodeURL(mapURL),
		MailtoURL: MailtoURL(routeName, mapURL, tr),
	}, nil
}

// MapURL builds the canonical map deep link for a request.
//
// The parameter order (api, origin, destination, waypoints, travelmode) is
// part of the published link format, so the query string is assembled by
// hand; url.Values would reorder the keys alphabetically. The waypoints
// parameter is omitted
// entirely when no intermediate has non-empty text. Values containing the
// "|" separator receive no escaping beyond standard query encoding.
func MapURL(req domain.TripRequest) (string, error) {
	token, ok := travelModeTokens[req.TransportMode]
	if !ok {
		return "", fmt.Errorf("service.MapURL: %w: unknown transport mode %q", domain.ErrValidation, req.TransportMode)
	}

	var b strings.Builder
	b.WriteString(mapBaseURL)
	b.WriteString("?api=1")
	b.WriteString("&origin=" + url.QueryEscape(req.Waypoints.Start()))
	b.WriteString("&destination=" + url.QueryEscape(req.Waypoints.Destination()))
	if steps := req.Waypoints.Steps(); len(steps) > 0 {
		b.WriteString("&waypoints=" + url.QueryEscape(strings.Join(steps, "|")))
	}
	b.WriteString("&travelmode=" + token)
	return b.String(), nil
}

// QRCodeURL wraps a map link in the external QR image service URL with fixed
// size and color parameters. The service consumes the URL and returns an
// image; failures show up as a broken image and are not handled specially.
func QRCodeURL(mapURL string) string {
	return qrBaseURL + "?data=" + escapeComponent(mapURL) + "&size=150x150&bgcolor=ffffff&color=1e293b&qzone=1"
}

// MailtoURL builds a mailto: link whose subject and body come from localized
// templates parameterized by the route name and the map link.
func MailtoURL(routeName, mapURL string, tr i18n.Translator) string {
	subject := tr.T("mailto.subject") + " " + routeName
	return "mailto:?subject=" + escapeComponent(subject) + "&body=" + escapeComponent(tr.MailtoBody(routeName, mapURL))
}

// escapeComponent percent-encodes s for use inside a query component,
// with spaces as %20 rather than "+" so mail clients decode bodies correctly.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
