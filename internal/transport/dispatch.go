package transport

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
)

// ActionView is the permission checked before delivering content to a token owner.
const ActionView = "view"

// Viewer answers permission questions about content.
type Viewer interface {
	UserCan(ctx context.Context, userID int64, action, objectType string, objectID int64) (bool, error)
}

// CanView reports whether the owners of t may view the object.
//
// A bound user is checked as that user and a bound guest as the anonymous
// user 0. A token bound to both must pass both checks. Unbound tokens pass.
func CanView(ctx context.Context, v Viewer, t model.Token, objectType string, objectID int64) (bool, error) {
	if v == nil {
		return true, nil
	}

	if t.HasUser() {
		ok, err := v.UserCan(ctx, t.UserID, ActionView, objectType, objectID)
		if err != nil || !ok {
			return false, err
		}
	}

	if t.HasGuest() {
		return v.UserCan(ctx, 0, ActionView, objectType, objectID)
	}

	return true, nil
}

// Dispatch implements HandleScheduledEvent on top of a transport's Send.
//
// Tokens whose owner may not view the object are dropped. Each distinct
// raw token is sent once; its outcome is applied to every row that holds it.
// When Send fails the partial outcome is still mapped and returned with the error.
func Dispatch(
	ctx context.Context,
	t Transport,
	v Viewer,
	tokens []model.Token,
	env model.Envelope,
	objectType string,
	objectID int64,
) (Result, error) {
	var result Result

	rows := make(map[string][]int64, len(tokens))
	raws := make([]string, 0, len(tokens))

	for _, token := range tokens {
		ok, err := CanView(ctx, v, token, objectType, objectID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Int64("token_id", token.ID).Str("service", t.ID()).
				Msg("failed to check view permission, skipping token")
			continue
		}

		if !ok {
			continue
		}

		raw := t.DecodeToken(token.Value)
		if _, seen := rows[raw]; !seen {
			raws = append(raws, raw)
		}

		rows[raw] = append(rows[raw], token.ID)
	}

	if len(raws) == 0 {
		return result, nil
	}

	outcome, sendErr := t.Send(ctx, raws, MessageFromEnvelope(env))

	for _, raw := range outcome.Delivered {
		result.SuccessIDs = append(result.SuccessIDs, rows[raw]...)
	}

	for _, raw := range outcome.Invalid {
		result.InvalidIDs = append(result.InvalidIDs, rows[raw]...)
	}

	if sendErr != nil {
		return result, fmt.Errorf("send via %s: %w", t.ID(), sendErr)
	}

	return result, nil
}
