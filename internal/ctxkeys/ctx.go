package ctxkeys

import (
	"context"

	"github.com/pilgrimlabs/pilgrim/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserKey      contextKey = "user"
	CharacterKey contextKey = "character"
)

func User(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey).(*model.User)
	return user
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// Character is the caller's selected character, when one exists. It rides on
// the request context so every service call sees an explicit user/character
// pair instead of process-wide state.
func Character(ctx context.Context) *model.Character {
	character, _ := ctx.Value(CharacterKey).(*model.Character)
	return character
}

func WithCharacter(ctx context.Context, character *model.Character) context.Context {
	return context.WithValue(ctx, CharacterKey, character)
}
