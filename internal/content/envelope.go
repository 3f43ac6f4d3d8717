package content

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/push-notifier/internal/model"
)

// MaxBodyRunes is the longest body kept in a notification before an ellipsis.
const MaxBodyRunes = 178

var subtitles = map[string]string{
	"topic":   "New topic",
	"reply":   "New reply",
	"comment": "New comment",
	"post":    "New post",
	"message": "New message",
}

// Subtitle returns the envelope label for an object type.
func Subtitle(objectType string) string {
	if s, ok := subtitles[objectType]; ok {
		return s
	}

	if objectType == "" {
		return "New activity"
	}

	return "New " + strings.ReplaceAll(objectType, "_", " ")
}

// Targets lists the subscription scopes that should hear about c.
func Targets(c *model.Content) []model.Target {
	if c == nil || c.ID <= 0 {
		return nil
	}

	targets := []model.Target{{ObjectType: c.Type, ObjectID: c.ID, Scope: model.ScopeObject}}

	if c.HasParent() {
		targets = append(targets, model.Target{ObjectType: c.ParentType, ObjectID: c.ParentID, Scope: model.ScopeParent})
	}

	return targets
}

// Envelope builds the message for c. Transports without a subtitle line
// get it folded into the title.
func Envelope(c model.Content, withSubtitle bool) model.Envelope {
	title := c.Title
	if c.HasParent() && c.ParentTitle != "" {
		title = c.ParentTitle
	}

	env := model.Envelope{
		Title:    title,
		Subtitle: Subtitle(c.Type),
		Body:     trimBody(c.Body),
		ImageURL: c.ImageURL,
		URL:      c.URL,
		Data: map[string]string{
			"object_type": c.Type,
			"object_id":   strconv.FormatInt(c.ID, 10),
		},
	}

	if c.URL != "" {
		env.Data["url"] = c.URL
	}

	if !withSubtitle {
		if env.Title == "" {
			env.Title = env.Subtitle
		} else {
			env.Title = env.Subtitle + ": " + env.Title
		}

		env.Subtitle = ""
	}

	return env
}

func trimBody(body string) string {
	body = strings.Join(strings.Fields(body), " ")

	if utf8.RuneCountInString(body) <= MaxBodyRunes {
		return body
	}

	runes := []rune(body)

	return strings.TrimRight(string(runes[:MaxBodyRunes]), " ") + "…"
}
