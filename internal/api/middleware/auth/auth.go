package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medshare/internal/auth"
	"medshare/internal/domain/account"
)

// Guard authenticates owners: it verifies the bearer token and then
// re-resolves the account, so a deactivated account loses access immediately
// even while its token is still unexpired.
type Guard struct {
	tokens   *auth.TokenManager
	accounts account.Repository
	log      *slog.Logger
}

func New(tokens *auth.TokenManager, accounts account.Repository, log *slog.Logger) *Guard {
	return &Guard{
		tokens:   tokens,
		accounts: accounts,
		log:      log.With("component", "auth_middleware"),
	}
}

type contextKey string

const accountIDKey contextKey = "accountID"

func (g *Guard) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if len(header) < 7 || header[:7] != "Bearer " {
			writeError(ctx, http.StatusUnauthorized, "authorization required")
			return
		}

		accountID, err := g.tokens.Verify(header[7:])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				g.log.Info("expired token rejected")
				writeError(ctx, http.StatusUnauthorized, "token expired")
			} else {
				g.log.Info("invalid token rejected")
				writeError(ctx, http.StatusUnauthorized, "invalid token")
			}
			return
		}

		acc, err := g.accounts.FindByID(ctx.Context(), accountID)
		if err != nil {
			g.log.Info("token for unknown account", "account_id", accountID)
			writeError(ctx, http.StatusUnauthorized, "invalid token")
			return
		}
		if !acc.Active {
			g.log.Info("token for inactive account", "account_id", accountID)
			writeError(ctx, http.StatusForbidden, "account is inactive")
			return
		}

		newCtx := context.WithValue(ctx.Context(), accountIDKey, accountID)
		next(huma.WithContext(ctx, newCtx))
	}
}

func writeError(ctx huma.Context, status int, msg string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": msg})
}

// AccountID extracts the authenticated account from a request context.
func AccountID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(accountIDKey).(int)
	return id, ok
}
